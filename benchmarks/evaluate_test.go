package benchmarks

import (
	"context"
	"strings"
	"testing"

	"github.com/randalmurphal/rpncalc/pkg/rpncalc"
	"github.com/randalmurphal/rpncalc/pkg/rpncalc/expr"
)

// longExpression builds "(12+34)*(12+34)*..." with n groups.
func longExpression(n int) string {
	groups := make([]string, n)
	for i := range groups {
		groups[i] = "(12+34)"
	}
	return strings.Join(groups, "*")
}

// BenchmarkConvert measures shunting-yard conversion alone.
func BenchmarkConvert(b *testing.B) {
	input := longExpression(50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = expr.Convert(input)
	}
}

// BenchmarkEvaluatePostfix measures reduction of pre-converted tokens.
func BenchmarkEvaluatePostfix(b *testing.B) {
	p, err := expr.Convert(longExpression(50))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = expr.EvaluatePostfix(p)
	}
}

// BenchmarkEvaluateMarked measures parsing and reducing the marker-run encoding.
func BenchmarkEvaluateMarked(b *testing.B) {
	marked, err := expr.ConvertInfixToPostfix(longExpression(50))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = expr.Evaluate(marked)
	}
}

// BenchmarkEvaluateExpression measures the full facade path.
func BenchmarkEvaluateExpression(b *testing.B) {
	sizes := []struct {
		name   string
		groups int
	}{
		{"small", 1},
		{"medium", 10},
		{"large", 100},
	}

	for _, sz := range sizes {
		input := longExpression(sz.groups)
		b.Run(sz.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = rpncalc.EvaluateExpression(input)
			}
		})
	}
}

// BenchmarkEvaluateExpression_Parallel measures concurrent facade calls.
func BenchmarkEvaluateExpression_Parallel(b *testing.B) {
	calc := rpncalc.New(rpncalc.WithPrecedence(expr.StandardTable))
	input := longExpression(10)

	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		for pb.Next() {
			_ = calc.Evaluate(ctx, input)
		}
	})
}
