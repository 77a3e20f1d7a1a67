// Package observability provides logging, metrics, and tracing for rpncalc.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds the evaluation ID to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "6f1c...")
//	enriched.Info("converted") // includes eval_id
func EnrichLogger(logger *slog.Logger, evalID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("eval_id", evalID))
}

// LogEvaluationStart logs the start of an evaluation.
func LogEvaluationStart(logger *slog.Logger, expression string) {
	if logger == nil {
		return
	}
	logger.Debug("evaluation starting",
		slog.String("expression", expression),
	)
}

// LogEvaluationComplete logs a successful evaluation.
func LogEvaluationComplete(logger *slog.Logger, expression string, value float64, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("evaluation completed",
		slog.String("expression", expression),
		slog.Float64("value", value),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogEvaluationError logs a failed evaluation and the stage that failed.
func LogEvaluationError(logger *slog.Logger, expression, stage string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("evaluation failed",
		slog.String("expression", expression),
		slog.String("stage", stage),
		slog.String("error", err.Error()),
	)
}

// LogStageComplete logs the end of a pipeline stage.
func LogStageComplete(logger *slog.Logger, stage string, durationMs float64, tokens int) {
	if logger == nil {
		return
	}
	logger.Debug("stage completed",
		slog.String("stage", stage),
		slog.Float64("duration_ms", durationMs),
		slog.Int("tokens", tokens),
	)
}

// LogHistoryError logs a history write failure (non-fatal).
func LogHistoryError(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("history write failed",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
