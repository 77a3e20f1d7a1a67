package expr

import (
	"unicode"
	"unicode/utf8"
)

// lexer yields tokens from an infix string one at a time so that errors
// surface in input order.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// next returns the next token. ok is false once the input is exhausted.
func (l *lexer) next() (tok Token, ok bool, err error) {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		start := l.pos

		switch {
		case unicode.IsSpace(r):
			l.pos += size
			continue
		case isDigit(r):
			for l.pos < len(l.input) && isDigit(rune(l.input[l.pos])) {
				l.pos++
			}
			text := l.input[start:l.pos]
			return Token{Kind: Number, Text: text, Value: digitsValue(text), Pos: start}, true, nil
		case isOperator(r):
			l.pos += size
			return Token{Kind: Operator, Text: string(r), Pos: start}, true, nil
		case r == '(':
			l.pos += size
			return Token{Kind: LeftParen, Text: "(", Pos: start}, true, nil
		case r == ')':
			l.pos += size
			return Token{Kind: RightParen, Text: ")", Pos: start}, true, nil
		default:
			return Token{}, false, unknownToken(start, r)
		}
	}
	return Token{}, false, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
