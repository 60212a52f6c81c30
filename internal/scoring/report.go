package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Outcomes is a scored batch in input order.
type Outcomes []Outcome

// Label is a one-line description of the outcome at index i.
func (o Outcomes) Label(i int) string {
	out := o[i]
	if out.Err != nil {
		return fmt.Sprintf("#%d failed: %s", i+1, ErrorKind(out.Err))
	}
	return fmt.Sprintf("#%d %s: %.1f%%", i+1, out.Result.Role, out.Result.Percentage)
}

// Summary lists the successful results best first, followed by failures.
func (o Outcomes) Summary() []map[string]any {
	order := make([]int, len(o))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := o[order[a]].Result, o[order[b]].Result
		switch {
		case ra == nil:
			return false
		case rb == nil:
			return true
		default:
			return ra.TotalScore > rb.TotalScore
		}
	})

	summary := make([]map[string]any, 0, len(o))
	for _, i := range order {
		out := o[i]
		if out.Err != nil {
			summary = append(summary, map[string]any{
				"index": i + 1,
				"error": out.Err.Error(),
				"kind":  ErrorKind(out.Err),
			})
			continue
		}
		summary = append(summary, map[string]any{
			"index":      i + 1,
			"role":       out.Result.Role,
			"candidate":  out.Result.Candidate,
			"percentage": out.Result.Percentage,
			"skills":     out.Result.SkillsScore,
			"experience": out.Result.ExperienceScore,
			"education":  out.Result.EducationScore,
			"keywords":   out.Result.KeywordsScore,
		})
	}
	return summary
}

// DumpToTmpFile writes the batch as indented json to a new temp file and
// returns its name.
func (o Outcomes) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "relevance_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return "", err
	}
	return file.Name(), nil
}
