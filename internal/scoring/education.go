package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/spigell/resume-relevance/internal/fuzzy"
	"github.com/spigell/resume-relevance/internal/jobdesc"
	"github.com/spigell/resume-relevance/internal/resume"
)

const (
	requiredDegreePoints  = 10.0
	degreeLevelPoints     = 7.0
	preferredDegreePoints = 3.0
	fieldPoints           = 5.0
	fieldThreshold        = 0.6
)

// educationScore keeps the best scoring entry. Requirements that are absent
// count as satisfied.
func (e *Engine) educationScore(entries []resume.EducationEntry, eligibility jobdesc.Eligibility) (float64, string) {
	if len(entries) == 0 {
		return 0, "No education information provided"
	}

	required := eligibility.Degrees.Required
	preferred := eligibility.Degrees.Preferred
	fields := eligibility.Fields

	if len(required) == 0 && len(fields) == 0 {
		return educationWeight, "No specific education requirements"
	}

	requiredLevel := 0
	for _, degree := range required {
		requiredLevel = max(requiredLevel, e.rules.DegreeLevel(fuzzy.Normalize(degree)))
	}

	best := 0.0
	bestReason := "Education does not match requirements"

	for _, entry := range entries {
		degree := fuzzy.Normalize(entry.Degree)
		branch := fuzzy.Normalize(entry.Branch)

		score := 0.0
		var reasons []string

		if len(required) > 0 {
			if name, ok := containsAny(degree, required); ok {
				score += requiredDegreePoints
				reasons = append(reasons, "Required degree match: "+name)
			} else if requiredLevel > 0 && e.rules.DegreeLevel(degree) >= requiredLevel {
				score += degreeLevelPoints
				reasons = append(reasons, "Degree level meets/exceeds requirement")
			}
		}

		if name, ok := containsAny(degree, preferred); ok {
			score += preferredDegreePoints
			reasons = append(reasons, "Preferred degree match: "+name)
		}

		if field, match := e.bestField(fields, branch); match > fieldThreshold {
			score += fieldPoints * match
			reasons = append(reasons, fmt.Sprintf("Field match: %s (%.2f)", field, match))
		}

		if score > best {
			best = score
			bestReason = strings.Join(reasons, "; ")
		}
	}

	return math.Min(educationWeight, round(best, 2)), bestReason
}

func (e *Engine) bestField(fields []string, branch string) (string, float64) {
	bestName, bestScore := "", 0.0
	if branch == "" {
		return bestName, bestScore
	}
	for _, field := range fields {
		if s := e.matcher.Score(field, branch); s > bestScore {
			bestName, bestScore = field, s
		}
	}
	return bestName, bestScore
}

// containsAny reports the first name whose normalized form occurs in text.
func containsAny(text string, names []string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, name := range names {
		n := fuzzy.Normalize(name)
		if n != "" && strings.Contains(text, n) {
			return name, true
		}
	}
	return "", false
}
