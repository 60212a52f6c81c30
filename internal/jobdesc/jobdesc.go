// Package jobdesc models structured job descriptions and rejects
// structurally invalid ones at the boundary.
package jobdesc

// Document is a job description as decoded from JSON, before validation.
type Document map[string]any

type Degrees struct {
	Required  []string `mapstructure:"required" json:"required"`
	Preferred []string `mapstructure:"preferred" json:"preferred"`
}

type Eligibility struct {
	Degrees         Degrees  `mapstructure:"degrees" json:"degrees"`
	Fields          []string `mapstructure:"fields" json:"fields"`
	BacklogsAllowed bool     `mapstructure:"backlogs_allowed" json:"backlogs_allowed"`
	GapsAllowed     bool     `mapstructure:"gaps_allowed" json:"gaps_allowed"`
}

type Experience struct {
	Min float64 `mapstructure:"min" json:"min" validate:"gte=0"`
	// Preferred defaults to Min+3 when nil.
	Preferred *float64 `mapstructure:"preferred" json:"preferred,omitempty" validate:"omitempty,gte=0"`
}

// PreferredOrDefault returns Preferred, or Min+3 when it is unset.
func (e Experience) PreferredOrDefault() float64 {
	if e.Preferred != nil {
		return *e.Preferred
	}
	return e.Min + 3
}

type Skills struct {
	Technical []string `mapstructure:"technical" json:"technical"`
	Domain    []string `mapstructure:"domain" json:"domain"`
	Soft      []string `mapstructure:"soft" json:"soft"`
}

type Keywords struct {
	Primary   []string `mapstructure:"primary" json:"primary"`
	Secondary []string `mapstructure:"secondary" json:"secondary"`
}

type JobDescription struct {
	Role           string      `mapstructure:"role" json:"role"`
	Overview       string      `mapstructure:"overview" json:"overview"`
	Eligibility    Eligibility `mapstructure:"eligibility_criteria" json:"eligibility_criteria"`
	Experience     Experience  `mapstructure:"experience_years" json:"experience_years"`
	MustHaveSkills *Skills     `mapstructure:"must_have_skills" json:"must_have_skills" validate:"required"`
	NiceToHave     []string    `mapstructure:"nice_to_have_skills" json:"nice_to_have_skills"`
	Keywords       Keywords    `mapstructure:"keywords" json:"keywords"`
	Location       string      `mapstructure:"location" json:"location"`
	EmploymentType string      `mapstructure:"employment_type" json:"employment_type"`
}

func (jd *JobDescription) clean() {
	jd.Role = trim(jd.Role)
	jd.Overview = trim(jd.Overview)
	jd.Location = trim(jd.Location)
	jd.EmploymentType = trim(jd.EmploymentType)

	jd.Eligibility.Degrees.Required = cleanList(jd.Eligibility.Degrees.Required)
	jd.Eligibility.Degrees.Preferred = cleanList(jd.Eligibility.Degrees.Preferred)
	jd.Eligibility.Fields = cleanList(jd.Eligibility.Fields)
	jd.NiceToHave = cleanList(jd.NiceToHave)
	jd.Keywords.Primary = cleanList(jd.Keywords.Primary)
	jd.Keywords.Secondary = cleanList(jd.Keywords.Secondary)

	if jd.MustHaveSkills != nil {
		jd.MustHaveSkills.Technical = cleanList(jd.MustHaveSkills.Technical)
		jd.MustHaveSkills.Domain = cleanList(jd.MustHaveSkills.Domain)
		jd.MustHaveSkills.Soft = cleanList(jd.MustHaveSkills.Soft)
	}
}
