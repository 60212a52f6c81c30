// Package resume turns unstructured resume text into a structured Record.
package resume

import "strings"

// EducationEntry is parsed from one blank-line delimited block of the
// education section. Every field is best effort.
type EducationEntry struct {
	Degree      string   `json:"degree" mapstructure:"degree"`
	Branch      string   `json:"branch" mapstructure:"branch"`
	GPA         *float64 `json:"gpa" mapstructure:"gpa"`
	EndYear     *int     `json:"end_year" mapstructure:"end_year"`
	Institution string   `json:"institution" mapstructure:"institution"`
}

type Record struct {
	About           string           `json:"about" mapstructure:"about"`
	Education       []EducationEntry `json:"education" mapstructure:"education"`
	ExperienceYears float64          `json:"experience_years" mapstructure:"experience_years"`
	Skills          []string         `json:"skills" mapstructure:"skills"`
	Projects        []string         `json:"projects" mapstructure:"projects"`
	Certifications  []string         `json:"certifications" mapstructure:"certifications"`
}

// NewRecord returns a record with every field at its default.
func NewRecord() Record {
	return Record{
		Education:      []EducationEntry{},
		Skills:         []string{},
		Projects:       []string{},
		Certifications: []string{},
	}
}

// Evidence joins about, skills and projects. Skills and keywords are matched
// against it; education and certifications are left out on purpose.
func (r Record) Evidence() string {
	return strings.Join([]string{
		r.About,
		strings.Join(r.Skills, " "),
		strings.Join(r.Projects, " "),
	}, " ")
}

// FullText joins every textual field of the record.
func (r Record) FullText() string {
	parts := []string{r.About}
	for _, e := range r.Education {
		parts = append(parts, e.Degree, e.Branch, e.Institution)
	}
	parts = append(parts, r.Skills...)
	parts = append(parts, r.Projects...)
	parts = append(parts, r.Certifications...)

	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// Candidate is the first line of About, or "Unknown".
func (r Record) Candidate() string {
	about := strings.TrimSpace(r.About)
	if about == "" {
		return "Unknown"
	}
	first, _, _ := strings.Cut(about, "\n")
	return strings.TrimSpace(first)
}
