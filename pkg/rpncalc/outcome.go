package rpncalc

import (
	"encoding/json"
	"math"

	"github.com/randalmurphal/rpncalc/pkg/rpncalc/expr"
)

// Outcome is the result of one evaluation.
//
// On success Value holds the number and Message is empty. On failure
// Success is false, Value is 0 and Message says why.
type Outcome struct {
	Success bool    `json:"success"`
	Value   float64 `json:"value"`
	Message string  `json:"message,omitempty"`
}

func success(v float64) Outcome {
	return Outcome{Success: true, Value: v}
}

func failure(err error) Outcome {
	return Outcome{Message: err.Error()}
}

// Err returns nil for a successful Outcome and an *OutcomeError otherwise.
func (o Outcome) Err() error {
	if o.Success {
		return nil
	}
	return &OutcomeError{Message: o.Message}
}

// String renders the value, or the message when the evaluation failed.
func (o Outcome) String() string {
	if !o.Success {
		return o.Message
	}
	return FormatValue(o.Value)
}

// MarshalJSON writes infinite values as strings, since JSON has no literal for them.
func (o Outcome) MarshalJSON() ([]byte, error) {
	type plain Outcome
	if !math.IsInf(o.Value, 0) {
		return json.Marshal(plain(o))
	}
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Value   string `json:"value"`
		Message string `json:"message,omitempty"`
	}{o.Success, FormatValue(o.Value), o.Message})
}

// FormatValue renders a number for display: "46", "2.5", "Infinity",
// "-Infinity" or "NaN".
func FormatValue(v float64) string {
	return expr.FormatNumber(v)
}
