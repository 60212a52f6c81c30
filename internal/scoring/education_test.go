package scoring

import (
	"testing"

	"github.com/spigell/resume-relevance/internal/jobdesc"
	"github.com/spigell/resume-relevance/internal/resume"

	"github.com/stretchr/testify/assert"
)

func TestEducationScore(t *testing.T) {
	t.Parallel()

	btech := resume.EducationEntry{Degree: "B.Tech in Computer Science", Branch: "Computer Science"}
	mtech := resume.EducationEntry{Degree: "M.Tech in Data Science", Branch: "Data Science"}
	be := resume.EducationEntry{Degree: "B.E. in Mechanical", Branch: "Mechanical"}
	bsc := resume.EducationEntry{Degree: "B.Sc Physics"}

	tests := []struct {
		name        string
		entries     []resume.EducationEntry
		eligibility jobdesc.Eligibility
		score       float64
		reason      string
	}{
		{
			name:    "no requirements",
			entries: []resume.EducationEntry{bsc},
			score:   15,
			reason:  "No specific education requirements",
		},
		{
			name:    "required degree and field",
			entries: []resume.EducationEntry{btech},
			eligibility: jobdesc.Eligibility{
				Degrees: jobdesc.Degrees{Required: []string{"B.Tech"}},
				Fields:  []string{"Computer Science"},
			},
			score:  15,
			reason: "Required degree match: B.Tech; Field match: Computer Science (1.00)",
		},
		{
			name:    "degree level through hierarchy",
			entries: []resume.EducationEntry{be},
			eligibility: jobdesc.Eligibility{
				Degrees: jobdesc.Degrees{Required: []string{"Bachelor of Engineering"}},
				Fields:  []string{"Computer Science"},
			},
			score:  7,
			reason: "Degree level meets/exceeds requirement",
		},
		{
			name:    "best entry wins",
			entries: []resume.EducationEntry{mtech, btech},
			eligibility: jobdesc.Eligibility{
				Degrees: jobdesc.Degrees{Required: []string{"B.Tech"}, Preferred: []string{"M.Tech"}},
			},
			score:  10,
			reason: "Degree level meets/exceeds requirement; Preferred degree match: M.Tech",
		},
		{
			name:    "capped at fifteen",
			entries: []resume.EducationEntry{btech},
			eligibility: jobdesc.Eligibility{
				Degrees: jobdesc.Degrees{Required: []string{"B.Tech"}, Preferred: []string{"B.Tech"}},
				Fields:  []string{"Computer Science"},
			},
			score:  15,
			reason: "Required degree match: B.Tech; Preferred degree match: B.Tech; Field match: Computer Science (1.00)",
		},
		{
			name:    "nothing matches",
			entries: []resume.EducationEntry{bsc},
			eligibility: jobdesc.Eligibility{
				Degrees: jobdesc.Degrees{Required: []string{"PhD"}},
			},
			score:  0,
			reason: "Education does not match requirements",
		},
		{
			name:    "fields only",
			entries: []resume.EducationEntry{mtech},
			eligibility: jobdesc.Eligibility{
				Fields: []string{"Data Science"},
			},
			score:  5,
			reason: "Field match: Data Science (1.00)",
		},
	}

	e := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score, reason := e.educationScore(tt.entries, tt.eligibility)
			assert.InDelta(t, tt.score, score, 1e-9)
			assert.Equal(t, tt.reason, reason)
		})
	}
}
