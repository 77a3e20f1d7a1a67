package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/randalmurphal/rpncalc/pkg/rpncalc/stack"
)

// EvaluatePostfix reduces p to a single value.
//
// Each operator pops b then a and pushes a op b, so subtraction and division
// keep their left-to-right meaning.
func EvaluatePostfix(p Postfix) (float64, error) {
	vals := stack.New[float64]()

	for _, tok := range p {
		switch tok.Kind {
		case Number:
			vals.Push(tok.Value)
		case Operator:
			b, okB := vals.Pop()
			a, okA := vals.Pop()
			if !okA || !okB {
				return 0, invalidExpression(ErrInsufficientOperands)
			}
			vals.Push(apply(tok.Text, a, b))
		default:
			return 0, &EvaluationError{Msg: msgUnknownToken + tok.Text, Err: ErrUnknownToken}
		}
	}

	switch vals.Len() {
	case 0:
		return 0, invalidExpression(ErrEmptyResult)
	case 1:
		v, _ := vals.Pop()
		return v, nil
	default:
		left := vals.Drain()
		parts := make([]string, len(left))
		for i, v := range left {
			parts[i] = FormatNumber(v)
		}
		return 0, &EvaluationError{
			Msg: fmt.Sprintf("ParseError: %s, stack: %s", p.Marked(), strings.Join(parts, ",")),
			Err: ErrLeftoverOperands,
		}
	}
}

// ParsePostfix reads a marker-run encoded postfix stream back into tokens.
//
// A Marker starts a run: the following non-operator characters are
// collected into one operand until an operator, another Marker, or the end
// of input. Outside a run each digit is a one-digit operand. Whitespace is
// skipped everywhere.
func ParsePostfix(postfix string) (Postfix, error) {
	var (
		out          Postfix
		run          strings.Builder
		runStart     int
		accumulating bool
	)

	flush := func() error {
		if run.Len() == 0 {
			return nil
		}
		text := run.String()
		run.Reset()
		if !allDigits(text) {
			return invalidExpression(fmt.Errorf("%w: %q", ErrInvalidNumber, text))
		}
		out = append(out, Token{Kind: Number, Text: text, Value: digitsValue(text), Pos: runStart})
		return nil
	}

	for i, r := range postfix {
		if unicode.IsSpace(r) {
			continue
		}

		if r == Marker {
			if err := flush(); err != nil {
				return nil, err
			}
			accumulating = true
			runStart = i
			continue
		}

		if accumulating {
			if !isOperator(r) {
				run.WriteRune(r)
				continue
			}
			if err := flush(); err != nil {
				return nil, err
			}
			accumulating = false
		}

		switch {
		case isDigit(r):
			out = append(out, Token{Kind: Number, Text: string(r), Value: float64(r - '0'), Pos: i})
		case isOperator(r):
			out = append(out, Token{Kind: Operator, Text: string(r), Pos: i})
		default:
			return nil, &EvaluationError{Msg: msgUnknownToken + string(r), Err: ErrUnknownToken}
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

// Evaluate parses a marker-run encoded postfix stream and reduces it.
func Evaluate(postfix string) (float64, error) {
	p, err := ParsePostfix(postfix)
	if err != nil {
		return 0, err
	}
	return EvaluatePostfix(p)
}

// digitsValue parses a run of ASCII digits. Runs beyond float64 range
// become +Inf.
func digitsValue(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func allDigits(s string) bool {
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return s != ""
}
