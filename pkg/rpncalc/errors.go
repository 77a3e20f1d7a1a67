package rpncalc

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is reported when reduction produces no usable number.
// Its text is the message shown to users.
var ErrInvalidExpression = errors.New("Invalid Expression")

// PanicError captures a panic raised inside the pipeline.
type PanicError struct {
	// Stage is the pipeline stage that panicked.
	Stage string
	// Value is the value passed to panic().
	Value any
	// Stack is the stack trace at the point of panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("%s stage panicked: %v", e.Stage, e.Value)
}

// OutcomeError is the error form of a failed Outcome.
type OutcomeError struct {
	Message string
}

func (e *OutcomeError) Error() string {
	return e.Message
}

// Is matches ErrInvalidExpression when the message is the same text.
func (e *OutcomeError) Is(target error) bool {
	return target == ErrInvalidExpression && e.Message == ErrInvalidExpression.Error()
}
