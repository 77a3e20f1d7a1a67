/*
Package expr converts infix arithmetic to postfix and reduces postfix to a number.

# Overview

expr implements the two stages of the calculator pipeline:

  - Conversion: a shunting-yard pass turns infix text into a postfix token
    sequence (Convert, ConvertInfixToPostfix).
  - Evaluation: a stack machine reduces a postfix sequence to a single
    float64 (EvaluatePostfix, Evaluate).

# Expression Syntax

	<expr>     := <operand> | <expr> <op> <expr> | '(' <expr> ')'
	<operand>  := digit { digit }
	<op>       := '+' | '-' | '*' | '/'

Whitespace between tokens is ignored. Any other character fails with a
*SyntaxError whose message is "Unknown token: <char>". There is no unary
minus and no decimal point.

# Precedence

The default table, UniformTable, gives all four operators the same
precedence and left associativity, so expressions evaluate strictly left to
right:

	2+3*4      // (2+3)*4 = 20
	2*(3+4)    // 14

StandardTable ranks * and / above + and - for callers that want
conventional arithmetic:

	p, _ := expr.Convert("2+3*4", expr.WithTable(expr.StandardTable))
	v, _ := expr.EvaluatePostfix(p) // 14

# Postfix Encodings

A Postfix renders two ways. String writes whole numbers:

	12 34 +

Marked writes the marker-run encoding, where every number is the marker
'_' followed by its digits as separate characters:

	_ 1 2 _ 3 4 +

ConvertInfixToPostfix returns the marked form and Evaluate reads it back,
regrouping each marked run into one operand.

# Errors

Conversion fails with *SyntaxError (unknown token, mismatched parentheses).
Evaluation fails with *EvaluationError (too few operands, leftover operands,
empty result). Both unwrap to the sentinel errors declared in errors.go.
*/
package expr
