package filtering

import (
	"context"
	"errors"
	"testing"

	"github.com/spigell/resume-relevance/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func result(role string, total float64) scoring.Outcome {
	return scoring.Outcome{Result: &scoring.Result{Role: role, TotalScore: total}}
}

func roles(o scoring.Outcomes) []string {
	out := make([]string, 0, len(o))
	for _, item := range o {
		if item.Result == nil {
			out = append(out, "error")
			continue
		}
		out = append(out, item.Result.Role)
	}
	return out
}

func batch() scoring.Outcomes {
	return scoring.Outcomes{
		result("low", 20),
		{Err: errors.New("malformed")},
		result("high", 90),
		result("mid", 55),
	}
}

func TestRunFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		steps []Filter
		want  []string
		logs  int
	}{
		{name: "no steps", steps: nil, want: []string{"low", "error", "high", "mid"}},
		{name: "disabled steps", steps: []Filter{NewSkipFailed(false), NewMinScore(0), NewTop(0)}, want: []string{"low", "error", "high", "mid"}},
		{name: "skip failed", steps: []Filter{NewSkipFailed(true)}, want: []string{"low", "high", "mid"}, logs: 1},
		{name: "min score keeps failures", steps: []Filter{NewMinScore(50)}, want: []string{"error", "high", "mid"}, logs: 1},
		{name: "min score and skip failed", steps: []Filter{NewSkipFailed(true), NewMinScore(50)}, want: []string{"high", "mid"}, logs: 2},
		{name: "top", steps: []Filter{NewTop(2)}, want: []string{"high", "mid"}, logs: 1},
		{name: "top larger than batch", steps: []Filter{NewTop(10)}, want: []string{"high", "mid", "low"}, logs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			core, observed := observer.New(zapcore.InfoLevel)
			got, err := New(tt.steps, zap.New(core)).RunFilters(context.Background(), batch())
			require.NoError(t, err)

			assert.Equal(t, tt.want, roles(got))
			assert.Equal(t, tt.logs, observed.FilterMessage("filter step").Len())
		})
	}
}

func TestRunFiltersValidates(t *testing.T) {
	t.Parallel()

	_, err := New([]Filter{NewMinScore(150)}, nil).RunFilters(context.Background(), batch())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_score")
}

func TestStepCounts(t *testing.T) {
	t.Parallel()

	_, info, err := NewSkipFailed(true).Apply(context.Background(), batch())
	require.NoError(t, err)
	assert.Equal(t, Step{Initial: 4, Dropped: 1, Left: 3}, info)
}
