package filtering

import (
	"context"
	"fmt"
	"sort"

	"github.com/spigell/resume-relevance/internal/scoring"
)

type failedFilter struct {
	enabled bool
}

// NewSkipFailed drops outcomes whose job description could not be scored.
func NewSkipFailed(enabled bool) Filter {
	return &failedFilter{enabled: enabled}
}

func (f *failedFilter) Name() string { return "skip_failed" }

func (f *failedFilter) IsEnabled() bool { return f.enabled }

func (f *failedFilter) Validate() error { return nil }

func (f *failedFilter) Apply(_ context.Context, o scoring.Outcomes) (scoring.Outcomes, Step, error) {
	kept := make(scoring.Outcomes, 0, len(o))
	for _, out := range o {
		if out.Err == nil {
			kept = append(kept, out)
		}
	}
	return kept, step(len(o), len(kept)), nil
}

type minScoreFilter struct {
	threshold float64
}

// NewMinScore drops results whose total score is below threshold. Failed outcomes
// are kept so they stay visible; combine with NewSkipFailed to drop them.
func NewMinScore(threshold float64) Filter {
	return &minScoreFilter{threshold: threshold}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) IsEnabled() bool { return f.threshold > 0 }

func (f *minScoreFilter) Validate() error {
	if f.threshold > 100 {
		return fmt.Errorf("minimum score %.2f is above 100", f.threshold)
	}
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, o scoring.Outcomes) (scoring.Outcomes, Step, error) {
	kept := make(scoring.Outcomes, 0, len(o))
	for _, out := range o {
		if out.Result != nil && out.Result.TotalScore < f.threshold {
			continue
		}
		kept = append(kept, out)
	}
	return kept, step(len(o), len(kept)), nil
}

type topFilter struct {
	n int
}

// NewTop keeps the n best results, best first. Failed outcomes are dropped.
func NewTop(n int) Filter {
	return &topFilter{n: n}
}

func (f *topFilter) Name() string { return "top" }

func (f *topFilter) IsEnabled() bool { return f.n > 0 }

func (f *topFilter) Validate() error { return nil }

func (f *topFilter) Apply(_ context.Context, o scoring.Outcomes) (scoring.Outcomes, Step, error) {
	kept := make(scoring.Outcomes, 0, len(o))
	for _, out := range o {
		if out.Result != nil {
			kept = append(kept, out)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Result.TotalScore > kept[j].Result.TotalScore
	})
	if len(kept) > f.n {
		kept = kept[:f.n]
	}

	return kept, step(len(o), len(kept)), nil
}

func step(initial, left int) Step {
	return Step{Initial: initial, Dropped: initial - left, Left: left}
}
