// Package scoring computes the weighted relevance of a resume to job descriptions.
package scoring

import (
	"github.com/spigell/resume-relevance/internal/fuzzy"
	"github.com/spigell/resume-relevance/internal/jobdesc"
	"github.com/spigell/resume-relevance/internal/resume"
	"github.com/spigell/resume-relevance/internal/rules"

	"go.uber.org/zap"
)

const (
	technicalWeight = 30.0
	domainWeight    = 15.0
	softWeight      = 5.0

	experienceWeight = 25.0
	educationWeight  = 15.0

	primaryWeight   = 6.0
	secondaryWeight = 4.0

	// matchThreshold is the presence score a skill or keyword must exceed.
	matchThreshold = 0.3

	defaultRole    = "N/A"
	defaultWorkers = 4
)

// Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	rules   *rules.Rules
	matcher *fuzzy.Matcher
	logger  *zap.Logger
	workers int
}

func NewEngine(r *rules.Rules, logger *zap.Logger, workers int) *Engine {
	if r == nil {
		r = rules.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &Engine{
		rules:   r,
		matcher: fuzzy.NewMatcher(r),
		logger:  logger,
		workers: workers,
	}
}

// Score is pure: the same record and job description always give the same result.
func (e *Engine) Score(rec resume.Record, jd *jobdesc.JobDescription) *Result {
	if jd == nil {
		jd = &jobdesc.JobDescription{}
	}

	var required jobdesc.Skills
	if jd.MustHaveSkills != nil {
		required = *jd.MustHaveSkills
	}

	evidence := fuzzy.Normalize(rec.Evidence())

	skills, skillsBreakdown := e.skillsScore(evidence, required)
	experience, experienceReason := experienceScore(rec.ExperienceYears, jd.Experience)
	education, educationReason := e.educationScore(rec.Education, jd.Eligibility)
	keywords, keywordsBreakdown := e.keywordsScore(rec.FullText(), jd.Keywords)

	total := skills + experience + education + keywords

	role := jd.Role
	if role == "" {
		role = defaultRole
	}

	return &Result{
		Role:            role,
		Candidate:       rec.Candidate(),
		TotalScore:      round(total, 2),
		Percentage:      round(total, 1),
		SkillsScore:     round(skills, 2),
		ExperienceScore: round(experience, 2),
		EducationScore:  round(education, 2),
		KeywordsScore:   round(keywords, 2),
		DetailedAnalysis: Analysis{
			SkillsBreakdown:   skillsBreakdown,
			ExperienceReason:  experienceReason,
			EducationReason:   educationReason,
			KeywordsBreakdown: keywordsBreakdown,
		},
	}
}
