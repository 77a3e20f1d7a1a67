package expr

import (
	"math"
	"strconv"
	"strings"
)

// Marker prefixes every digit run in the marked postfix encoding.
const Marker = '_'

// Kind identifies the type of a Token.
type Kind int

const (
	// Number is an operand; Token.Value holds its numeric value.
	Number Kind = iota
	// Operator is one of + - * /.
	Operator
	// LeftParen is "(".
	LeftParen
	// RightParen is ")".
	RightParen
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Operator:
		return "operator"
	case LeftParen:
		return "left_paren"
	case RightParen:
		return "right_paren"
	default:
		return "unknown"
	}
}

// Token is a single lexical element of an expression.
type Token struct {
	Kind  Kind
	Text  string
	Value float64
	// Pos is the byte offset of the token in its source string.
	Pos int
}

// String returns the token text.
func (t Token) String() string {
	return t.Text
}

// Postfix is a token sequence in reverse Polish order.
// It never contains parentheses.
type Postfix []Token

// String joins the tokens with single spaces, writing numbers whole.
func (p Postfix) String() string {
	parts := make([]string, len(p))
	for i, tok := range p {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}

// Marked joins the tokens with single spaces using the marker-run encoding:
// each number becomes the Marker followed by its digits, one per field.
func (p Postfix) Marked() string {
	parts := make([]string, 0, len(p)*2)
	for _, tok := range p {
		if tok.Kind != Number {
			parts = append(parts, tok.Text)
			continue
		}
		parts = append(parts, string(Marker))
		for _, r := range tok.Text {
			parts = append(parts, string(r))
		}
	}
	return strings.Join(parts, " ")
}

// FormatNumber renders v the way calculator output shows it:
// integers without a fraction, infinities as "Infinity" and "-Infinity".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MarkDigitRuns inserts Marker before every maximal run of word characters
// ([0-9A-Za-z_]), so "25*34-(23+1)" becomes "_25*_34-(_23+_1)".
func MarkDigitRuns(expression string) string {
	var b strings.Builder
	b.Grow(len(expression) + len(expression)/2)

	inRun := false
	for i := 0; i < len(expression); i++ {
		c := expression[i]
		word := c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
		if word && !inRun {
			b.WriteByte(Marker)
		}
		inRun = word
		b.WriteByte(c)
	}
	return b.String()
}
