package expr

import "errors"

// Sentinel errors for conversion.
var (
	// ErrUnknownToken indicates a character outside the expression alphabet.
	ErrUnknownToken = errors.New("unknown token")

	// ErrMismatchedParens indicates an unmatched ")" or an unclosed "(".
	ErrMismatchedParens = errors.New("parentheses mismatched")
)

// Sentinel errors for evaluation.
var (
	// ErrInsufficientOperands indicates an operator with fewer than two operands.
	ErrInsufficientOperands = errors.New("insufficient operands")

	// ErrLeftoverOperands indicates more than one value remained after reduction.
	ErrLeftoverOperands = errors.New("leftover operands")

	// ErrEmptyResult indicates reduction finished with no value.
	ErrEmptyResult = errors.New("empty result")

	// ErrInvalidNumber indicates a marked run that is not a digit sequence.
	ErrInvalidNumber = errors.New("invalid number")
)

// Messages surfaced to callers. These are the texts shown to users.
const (
	msgMismatchedParens  = "Parentheses mismatched"
	msgUnknownToken      = "Unknown token: "
	msgInvalidExpression = "Invalid Expression"
)

// SyntaxError reports malformed infix input.
// Error returns Msg unchanged so callers can display it directly.
type SyntaxError struct {
	// Pos is the byte offset of the offending character.
	Pos int
	// Msg is the user-facing message.
	Msg string
	// Err is the sentinel classifying the failure.
	Err error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return e.Msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// EvaluationError reports a postfix sequence that cannot be reduced to one value.
type EvaluationError struct {
	// Msg is the user-facing message.
	Msg string
	// Err is the sentinel classifying the failure.
	Err error
}

// Error implements the error interface.
func (e *EvaluationError) Error() string {
	return e.Msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *EvaluationError) Unwrap() error {
	return e.Err
}

func unknownToken(pos int, r rune) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: msgUnknownToken + string(r), Err: ErrUnknownToken}
}

func mismatchedParens(pos int) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: msgMismatchedParens, Err: ErrMismatchedParens}
}

func invalidExpression(err error) *EvaluationError {
	return &EvaluationError{Msg: msgInvalidExpression, Err: err}
}
