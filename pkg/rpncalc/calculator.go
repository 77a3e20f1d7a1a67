package rpncalc

import (
	"context"
	"log/slog"
	"math"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/rpncalc/pkg/rpncalc/expr"
	"github.com/randalmurphal/rpncalc/pkg/rpncalc/history"
	"github.com/randalmurphal/rpncalc/pkg/rpncalc/observability"
)

// Pipeline stage names used in logs, metrics and spans.
const (
	StageConvert = "convert"
	StageReduce  = "reduce"
)

// Calculator evaluates infix expressions.
// It is immutable after New and safe for concurrent use.
type Calculator struct {
	converter *expr.Converter
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	spans     observability.SpanManager
	history   history.Store
}

// New creates a Calculator. With no options it uses uniform precedence and
// records nothing.
func New(opts ...Option) *Calculator {
	cfg := defaultCalcConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	metrics, spans := cfg.recorders()
	return &Calculator{
		converter: expr.New(expr.WithTable(cfg.table)),
		logger:    cfg.logger,
		metrics:   metrics,
		spans:     spans,
		history:   cfg.history,
	}
}

// Table returns the precedence table used for conversion.
func (c *Calculator) Table() expr.Table {
	return c.converter.Table()
}

// Postfix converts input without evaluating it.
func (c *Calculator) Postfix(input string) (expr.Postfix, error) {
	return c.converter.Convert(input)
}

// Evaluate converts input to postfix and reduces it.
//
// ctx only parents spans and metric recordings; the pipeline itself does
// not block.
func (c *Calculator) Evaluate(ctx context.Context, input string) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}

	evalID := uuid.NewString()
	logger := observability.EnrichLogger(c.logger, evalID)
	start := time.Now()
	observability.LogEvaluationStart(logger, input)

	ctx, span := c.spans.StartEvaluationSpan(ctx, evalID, len(input))

	var (
		postfix expr.Postfix
		value   float64
	)
	stage := StageConvert
	err := c.runStage(ctx, logger, StageConvert, func(stageCtx context.Context) (int, error) {
		var convErr error
		postfix, convErr = c.converter.Convert(input)
		if convErr == nil {
			c.spans.AddSpanEvent(stageCtx, "postfix.ready", attribute.Int("tokens", len(postfix)))
		}
		return len(postfix), convErr
	})
	if err == nil {
		c.metrics.RecordPostfixTokens(ctx, len(postfix))
		stage = StageReduce
		err = c.runStage(ctx, logger, StageReduce, func(context.Context) (int, error) {
			var evalErr error
			value, evalErr = expr.EvaluatePostfix(postfix)
			if evalErr == nil && math.IsNaN(value) {
				evalErr = ErrInvalidExpression
			}
			return len(postfix), evalErr
		})
	}

	duration := time.Since(start)
	c.metrics.RecordEvaluation(ctx, err == nil, duration)
	c.spans.EndSpanWithError(span, err)

	var out Outcome
	if err != nil {
		out = failure(err)
		observability.LogEvaluationError(logger, input, stage, err)
	} else {
		out = success(value)
		observability.LogEvaluationComplete(logger, input, value, float64(duration.Microseconds())/1000)
	}

	c.record(logger, evalID, input, postfix, out)
	return out
}

// runStage times fn inside a child span; fn receives the span's context. A panic in fn is returned as a
// *PanicError.
func (c *Calculator) runStage(ctx context.Context, logger *slog.Logger, stage string, fn func(context.Context) (int, error)) (err error) {
	stageCtx, span := c.spans.StartStageSpan(ctx, stage)
	done := observability.TimedOperation()
	tokens := 0

	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{
				Stage: stage,
				Value: r,
				Stack: string(debug.Stack()),
			}
		}
		ms := done()
		c.metrics.RecordStage(stageCtx, stage, time.Duration(ms*float64(time.Millisecond)), err)
		c.spans.EndSpanWithError(span, err)
		if err == nil {
			observability.LogStageComplete(logger, stage, ms, tokens)
		}
	}()

	tokens, err = fn(stageCtx)
	return err
}

func (c *Calculator) record(logger *slog.Logger, evalID, input string, postfix expr.Postfix, out Outcome) {
	if c.history == nil {
		return
	}
	rec := history.NewRecord(input)
	rec.ID = evalID
	if postfix != nil {
		rec.Postfix = postfix.Marked()
	}
	rec.Success = out.Success
	rec.Value = out.Value
	rec.Message = out.Message

	if err := c.history.Save(rec); err != nil {
		observability.LogHistoryError(logger, "save", err)
	}
}

var defaultCalculator = New()

// EvaluateExpression evaluates input with a default Calculator.
func EvaluateExpression(input string) Outcome {
	return defaultCalculator.Evaluate(context.Background(), input)
}
