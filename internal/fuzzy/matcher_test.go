package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcherScore(t *testing.T) {
	t.Parallel()

	m := NewMatcher(nil)

	tests := []struct {
		name   string
		term   string
		text   string
		expect float64
	}{
		{name: "substring wins", term: "Node.js", text: "Built APIs with node.js and Go", expect: 1},
		{name: "case and punctuation ignored", term: "C++", text: "Languages: c++, python", expect: 1},
		{name: "all words present", term: "machine learning", text: "learning machines", expect: 0.9},
		{name: "partial words then character similarity", term: "deep learning", text: "learning rust", expect: 16.0 / 21.0},
		{name: "character similarity", term: "kubernetes", text: "kubernete expert", expect: 18.0 / 19.0},
		{name: "below similarity threshold", term: "javascript", text: "java developer", expect: 0},
		{name: "r with data context", term: "r", text: "I use R for data analysis", expect: 1},
		{name: "r inside ordinary words", term: "r", text: "regular person", expect: 0},
		{name: "bare r in a list", term: "R", text: "Python, R, SQL", expect: 0},
		{name: "rstudio", term: "r", text: "Comfortable in RStudio", expect: 1},
		{name: "r after programming", term: "r", text: "statistical programming in R", expect: 1},
		{name: "empty term is a substring", term: "", text: "anything", expect: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expect, m.Score(tt.term, tt.text), 1e-9)
		})
	}
}

func TestMatcherScoreSubstringIsAlwaysOne(t *testing.T) {
	t.Parallel()

	m := NewMatcher(nil)
	text := "Senior Go engineer: gRPC, PostgreSQL, Kubernetes, CI/CD pipelines"
	for _, term := range []string{"go", "grpc", "PostgreSQL", "kubernetes", "ci", "pipelines", "engineer: grpc"} {
		assert.Equal(t, 1.0, m.Score(term, text), "term %q", term)
	}
}

func TestMatcherCheckPresence(t *testing.T) {
	t.Parallel()

	m := NewMatcher(nil)

	tests := []struct {
		name   string
		term   string
		text   string
		boost  bool
		expect float64
	}{
		{name: "boost applied with context word", term: "postgresql", text: "postgres database", boost: true, expect: 16.0/18.0 + 0.1},
		{name: "no boost requested", term: "postgresql", text: "postgres database", boost: false, expect: 16.0 / 18.0},
		{name: "no context word", term: "postgresql", text: "postgres admin", boost: true, expect: 16.0 / 18.0},
		{name: "boost is capped", term: "golang", text: "golang software", boost: true, expect: 1},
		{name: "weak score is not boosted", term: "deep learning", text: "deep software", boost: true, expect: 0.35},
		{name: "r is never boosted", term: "r", text: "python r sql software", boost: true, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expect, m.CheckPresence(tt.term, tt.text, tt.boost), 1e-9)
		})
	}
}
