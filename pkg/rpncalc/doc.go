/*
Package rpncalc evaluates infix arithmetic by converting it to postfix and
reducing the postfix with a value stack.

# Quick Start

	out := rpncalc.EvaluateExpression("12+34")
	if !out.Success {
	    fmt.Println(out.Message)
	    return
	}
	fmt.Println(rpncalc.FormatValue(out.Value)) // 46

EvaluateExpression never returns an error and never panics. Failures come
back as an Outcome with Success false and a display message:

	Unknown token: a                 character outside 0-9 + - * / ( ) and whitespace
	Parentheses mismatched           unbalanced "(" or ")"
	Invalid Expression               missing operands, empty input, or 0/0
	ParseError: _ 2 _ 3, stack: 2,3  operands left over after reduction

# Precedence

All four operators share one precedence level and associate left, so
"2+3*4" is 20. Use WithPrecedence(expr.StandardTable) for conventional
precedence (14).

# Calculator

A Calculator carries options and is safe for concurrent use:

	calc := rpncalc.New(
	    rpncalc.WithLogger(logger),
	    rpncalc.WithMetrics(true),
	    rpncalc.WithTracing(true),
	    rpncalc.WithHistory(store),
	)
	out := calc.Evaluate(ctx, "(1+2)*3")

Metrics and tracing use the global OpenTelemetry providers. History writes
are best effort: a failing store is logged and does not change the Outcome.

# Division

Division follows IEEE-754: "1/0" succeeds with +Inf; "0/0" yields NaN and is
reported as "Invalid Expression".
*/
package rpncalc
