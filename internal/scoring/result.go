package scoring

import (
	"encoding/json"
	"errors"
	"math"
)

type SkillMatch struct {
	Skill      string  `json:"skill"`
	MatchScore float64 `json:"match_score"`
	Points     float64 `json:"points"`
}

type SkillCategory struct {
	Score         float64      `json:"score"`
	Matches       []SkillMatch `json:"matches"`
	TotalPossible float64      `json:"total_possible"`
}

type SkillsBreakdown struct {
	Technical SkillCategory `json:"technical"`
	Domain    SkillCategory `json:"domain"`
	Soft      SkillCategory `json:"soft"`
}

type KeywordMatch struct {
	Keyword    string  `json:"keyword"`
	MatchScore float64 `json:"match_score"`
	Points     float64 `json:"points"`
}

type KeywordCategory struct {
	Score   float64        `json:"score"`
	Matches []KeywordMatch `json:"matches"`
}

type KeywordsBreakdown struct {
	Primary   KeywordCategory `json:"primary"`
	Secondary KeywordCategory `json:"secondary"`
}

type Analysis struct {
	SkillsBreakdown   SkillsBreakdown   `json:"skills_breakdown"`
	ExperienceReason  string            `json:"experience_reason"`
	EducationReason   string            `json:"education_reason"`
	KeywordsBreakdown KeywordsBreakdown `json:"keywords_breakdown"`
}

// Result is the explainable score of one resume against one job description.
type Result struct {
	Role      string `json:"role"`
	Candidate string `json:"candidate"`
	// TotalScore is in [0,100]. Percentage carries the same value rounded to
	// one decimal and is kept for consumers that read it.
	TotalScore       float64  `json:"total_score"`
	Percentage       float64  `json:"percentage"`
	SkillsScore      float64  `json:"skills_score"`
	ExperienceScore  float64  `json:"experience_score"`
	EducationScore   float64  `json:"education_score"`
	KeywordsScore    float64  `json:"keywords_score"`
	DetailedAnalysis Analysis `json:"detailed_analysis"`
}

// Outcome is one entry of a batch: either a Result or the error that
// prevented scoring that job description.
type Outcome struct {
	Result *Result
	Err    error
}

type failure struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Err != nil {
		return json.Marshal(failure{Error: o.Err.Error(), Kind: ErrorKind(o.Err)})
	}
	return json.Marshal(o.Result)
}

// ErrorKind names the class of a scoring failure.
func ErrorKind(err error) string {
	var kinded interface{ Kind() string }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	return "ScoringError"
}

// round breaks ties to even.
func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}
