package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records calculator metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordEvaluation records a finished evaluation.
	RecordEvaluation(ctx context.Context, success bool, duration time.Duration)

	// RecordStage records one pipeline stage with its duration and error status.
	RecordStage(ctx context.Context, stage string, duration time.Duration, err error)

	// RecordPostfixTokens records the length of a converted postfix sequence.
	RecordPostfixTokens(ctx context.Context, count int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	evaluations   metric.Int64Counter
	evalLatency   metric.Float64Histogram
	stageLatency  metric.Float64Histogram
	stageErrors   metric.Int64Counter
	postfixTokens metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily creates the shared OTel instruments.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("rpncalc")

	evaluations, err := meter.Int64Counter("rpncalc.evaluations",
		metric.WithDescription("Number of expression evaluations"),
	)
	if err != nil {
		return nil, err
	}

	evalLatency, err := meter.Float64Histogram("rpncalc.evaluation.latency_ms",
		metric.WithDescription("Evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	stageLatency, err := meter.Float64Histogram("rpncalc.stage.latency_ms",
		metric.WithDescription("Pipeline stage latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	stageErrors, err := meter.Int64Counter("rpncalc.stage.errors",
		metric.WithDescription("Number of pipeline stage failures"),
	)
	if err != nil {
		return nil, err
	}

	postfixTokens, err := meter.Int64Histogram("rpncalc.postfix.tokens",
		metric.WithDescription("Tokens in converted postfix sequences"),
		metric.WithUnit("{token}"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		evaluations:   evaluations,
		evalLatency:   evalLatency,
		stageLatency:  stageLatency,
		stageErrors:   stageErrors,
		postfixTokens: postfixTokens,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordEvaluation records a finished evaluation.
func (m *otelMetrics) RecordEvaluation(ctx context.Context, success bool, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	m.evaluations.Add(ctx, 1, attrs)
	m.evalLatency.Record(ctx, durationMs(duration), attrs)
}

// RecordStage records one pipeline stage.
func (m *otelMetrics) RecordStage(ctx context.Context, stage string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("stage", stage))
	m.stageLatency.Record(ctx, durationMs(duration), attrs)
	if err != nil {
		m.stageErrors.Add(ctx, 1, attrs)
	}
}

// RecordPostfixTokens records the length of a postfix sequence.
func (m *otelMetrics) RecordPostfixTokens(ctx context.Context, count int) {
	m.postfixTokens.Record(ctx, int64(count))
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
