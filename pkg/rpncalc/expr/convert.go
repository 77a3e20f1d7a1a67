package expr

import "github.com/randalmurphal/rpncalc/pkg/rpncalc/stack"

// Converter turns infix expressions into postfix using a precedence table.
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	table Table
}

// Option configures a Converter.
type Option func(*Converter)

// WithTable selects the operator precedence table.
// Default: UniformTable
func WithTable(t Table) Option {
	return func(c *Converter) {
		if !t.IsZero() {
			c.table = t
		}
	}
}

// New creates a Converter with the given options.
func New(opts ...Option) *Converter {
	c := &Converter{table: UniformTable}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Table returns the precedence table in use.
func (c *Converter) Table() Table {
	return c.table
}

// Convert runs the shunting-yard algorithm over expression.
//
// Numbers go straight to the output. An operator first pops every stacked
// operator that outranks it, then is pushed. "(" is pushed; ")" pops to the
// output until the matching "(" is discarded. Remaining operators are popped
// at the end of input.
func (c *Converter) Convert(expression string) (Postfix, error) {
	lx := newLexer(expression)
	ops := stack.New[Token]()
	var out Postfix

	for {
		tok, ok, err := lx.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		switch tok.Kind {
		case Number:
			out = append(out, tok)

		case Operator:
			for {
				top, ok := ops.Peek()
				if !ok || top.Kind != Operator || !c.table.outranks(top.Text, tok.Text) {
					break
				}
				ops.Pop()
				out = append(out, top)
			}
			ops.Push(tok)

		case LeftParen:
			ops.Push(tok)

		case RightParen:
			matched := false
			for {
				top, ok := ops.Pop()
				if !ok {
					break
				}
				if top.Kind == LeftParen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, mismatchedParens(tok.Pos)
			}
		}
	}

	for {
		top, ok := ops.Pop()
		if !ok {
			break
		}
		if top.Kind == LeftParen || top.Kind == RightParen {
			return nil, mismatchedParens(top.Pos)
		}
		out = append(out, top)
	}

	return out, nil
}

// Convert converts expression using a Converter built from opts.
func Convert(expression string, opts ...Option) (Postfix, error) {
	return New(opts...).Convert(expression)
}

// ConvertInfixToPostfix converts expression with UniformTable and returns the
// marker-run encoded postfix stream, e.g. "12+34" becomes "_ 1 2 _ 3 4 +".
func ConvertInfixToPostfix(expression string) (string, error) {
	p, err := New().Convert(expression)
	if err != nil {
		return "", err
	}
	return p.Marked(), nil
}
