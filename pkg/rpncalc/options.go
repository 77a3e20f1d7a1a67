package rpncalc

import (
	"log/slog"

	"github.com/randalmurphal/rpncalc/pkg/rpncalc/expr"
	"github.com/randalmurphal/rpncalc/pkg/rpncalc/history"
	"github.com/randalmurphal/rpncalc/pkg/rpncalc/observability"
)

// calcConfig holds the settings a Calculator is built from.
type calcConfig struct {
	logger         *slog.Logger
	table          expr.Table
	metricsEnabled bool
	tracingEnabled bool
	history        history.Store
}

func defaultCalcConfig() calcConfig {
	return calcConfig{table: expr.UniformTable}
}

// Option configures a Calculator.
type Option func(*calcConfig)

// WithLogger enables structured logging.
// A nil logger disables logging (the default).
//
// Log levels used:
//   - Debug: evaluation start, stage completion
//   - Info: evaluation completion
//   - Warn: evaluation failure, history write failure
func WithLogger(logger *slog.Logger) Option {
	return func(c *calcConfig) {
		c.logger = logger
	}
}

// WithPrecedence selects the operator table used for conversion.
// A zero expr.Table is ignored.
// Default: expr.UniformTable
func WithPrecedence(t expr.Table) Option {
	return func(c *calcConfig) {
		if !t.IsZero() {
			c.table = t
		}
	}
}

// WithMetrics enables OpenTelemetry metrics via the global meter provider.
//
// Metrics recorded:
//   - rpncalc.evaluations: counter with success attribute
//   - rpncalc.evaluation.latency_ms: histogram of evaluation latency
//   - rpncalc.stage.latency_ms: histogram per stage
//   - rpncalc.stage.errors: counter of failed stages
//   - rpncalc.postfix.tokens: histogram of postfix length
func WithMetrics(enabled bool) Option {
	return func(c *calcConfig) {
		c.metricsEnabled = enabled
	}
}

// WithTracing enables OpenTelemetry tracing via the global tracer provider.
// Each evaluation gets an "rpncalc.evaluate" span with one child per stage.
func WithTracing(enabled bool) Option {
	return func(c *calcConfig) {
		c.tracingEnabled = enabled
	}
}

// WithHistory records every evaluation to store.
// The Calculator does not close the store.
func WithHistory(store history.Store) Option {
	return func(c *calcConfig) {
		c.history = store
	}
}

func (c calcConfig) recorders() (observability.MetricsRecorder, observability.SpanManager) {
	var (
		metrics observability.MetricsRecorder = observability.NoopMetrics{}
		spans   observability.SpanManager     = observability.NoopSpanManager{}
	)
	if c.metricsEnabled {
		metrics = observability.NewMetricsRecorder()
	}
	if c.tracingEnabled {
		spans = observability.NewSpanManager()
	}
	return metrics, spans
}
