// Package fuzzy scores how strongly a term is present in free text.
package fuzzy

import (
	"math"
	"strings"

	"github.com/spigell/resume-relevance/internal/rules"
)

const (
	// SimilarityThreshold is the minimum character ratio that counts as a match.
	SimilarityThreshold = 0.6

	allWordsScore   = 0.9
	partialWordsCap = 0.7
	contextBonus    = 0.1
	contextMinScore = 0.5
)

// Matcher is safe for concurrent use.
type Matcher struct {
	rules *rules.Rules
}

// NewMatcher returns a matcher backed by r, or by rules.Default when r is nil.
func NewMatcher(r *rules.Rules) *Matcher {
	if r == nil {
		r = rules.Default()
	}
	return &Matcher{rules: r}
}

// Score measures presence of term in text in the range [0,1].
func (m *Matcher) Score(term, text string) float64 {
	return m.score(Normalize(term), Normalize(text))
}

// CheckPresence wraps Score. With contextBoost set, a score above 0.5 earns
// +0.1 (capped at 1) when the text mentions generic technology vocabulary.
func (m *Matcher) CheckPresence(term, text string, contextBoost bool) float64 {
	t, blob := Normalize(term), Normalize(text)
	s := m.score(t, blob)
	if t == "r" {
		return s
	}

	if contextBoost && s > contextMinScore && m.rules.HasContextWord(blob) {
		s = math.Min(1, s+contextBonus)
	}
	return s
}

func (m *Matcher) score(term, blob string) float64 {
	if term == "r" {
		for _, p := range m.rules.RTerm {
			if p.MatchString(blob) {
				return 1
			}
		}
		return 0
	}

	if strings.Contains(blob, term) {
		return 1
	}

	best := 0.0
	if words := strings.Fields(term); len(words) > 1 {
		matched := 0
		for _, w := range words {
			if strings.Contains(blob, w) {
				matched++
			}
		}
		if matched == len(words) {
			return allWordsScore
		}
		if matched > 0 {
			best = float64(matched) / float64(len(words)) * partialWordsCap
		}
	}

	seen := make(map[string]struct{})
	for _, w := range strings.Fields(blob) {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}

		if sim := Ratio(term, w); sim >= SimilarityThreshold && sim > best {
			best = sim
		}
	}
	return best
}
