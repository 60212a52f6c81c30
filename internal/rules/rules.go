// Package rules holds the read-only pattern tables shared by the resume
// segmenter, the fuzzy matcher and the scoring engine.
package rules

import (
	"regexp"
	"strings"
	"sync"
)

// Section identifies a resume section recognised by a header line.
type Section string

const (
	SectionEducation      Section = "education"
	SectionWorkExperience Section = "work_experience"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
)

// Bullets lists the characters treated as list markers in resume sections.
const Bullets = "•-*→▪▫◦‣⁃"

// HeaderRule maps a whole-line header pattern to its section.
type HeaderRule struct {
	Section Section
	Pattern *regexp.Regexp
}

// DegreeRank assigns an ordinal level to a degree keyword.
type DegreeRank struct {
	Keyword string
	Level   int
}

// Rules is built once and shared by reference. Nothing mutates it after New returns.
type Rules struct {
	// Headers are tested in order; the first match wins for a line.
	Headers []HeaderRule

	Degree *regexp.Regexp
	Branch *regexp.Regexp
	GPA    *regexp.Regexp
	// GraduationRange is preferred over GraduationYear when both match.
	GraduationRange *regexp.Regexp
	GraduationYear  *regexp.Regexp
	YearRange       *regexp.Regexp

	SkillSeparators *regexp.Regexp
	SkillHeaderEcho *regexp.Regexp

	InstitutionHints []string

	// RTerm patterns decide presence of the single-letter language "r".
	RTerm []*regexp.Regexp

	ContextWords    []string
	DegreeHierarchy []DegreeRank
}

var shared = sync.OnceValue(New)

// Default returns the process-wide rule set.
func Default() *Rules {
	return shared()
}

// New compiles a fresh rule set.
func New() *Rules {
	return &Rules{
		Headers: []HeaderRule{
			{SectionEducation, header(`education|academics?|academic\s+background|qualifications?|educational?\s+background`)},
			{SectionWorkExperience, header(`experience|employment\s+history|work\s+history|professional\s+experience|career\s+history|work\s+experience|job\s+experience|internships?`)},
			{SectionSkills, header(`skills?|technical\s+skills?|core\s+competencies|competencies|technical\s+competencies|programming\s+skills?|technologies?`)},
			{SectionProjects, header(`projects?|academic\s+projects?|personal\s+projects?|key\s+projects?|major\s+projects?|project\s+work`)},
			{SectionCertifications, header(`certifications?|certificates?|courses?|training|professional\s+development|licenses?`)},
		},

		Degree: regexp.MustCompile(`(?i)\b(?:bachelor|master|doctorate|phd|ph\.\s*d\.?|diploma|[bm]\.?\s*tech|[bm]\.?\s*sc|[bm]\.?\s*e\b\.?|[bm]\.?\s*a\b\.?)[^,\n]*`),
		Branch: regexp.MustCompile(`(?i)\b(?:computer\s+science|information\s+technology|mechanical|electrical|electronics?|civil|production|manufacturing|software|data\s+science|artificial\s+intelligence|machine\s+learning)[^,\n]*`),
		GPA:    regexp.MustCompile(`(?i)(?:c?gpa|grade)?\s*:?\s*(\d+(?:\.\d+)?)\s*(?:/\s*(?:10|4))?`),
		GraduationRange: regexp.MustCompile(`(?:19|20)\d{2}\s*[-–—]\s*((?:19|20)\d{2})`),
		GraduationYear:  regexp.MustCompile(`(?i)(?:graduat(?:ed|ing)\s+(?:in\s+)?)?\b((?:19|20)\d{2})\b`),
		YearRange: regexp.MustCompile(
			`(?i)((?:19|20)\d{2})\s*(?:-|–|—|to)\s*(?:[a-z]{3,9}\.?\s+)?((?:19|20)\d{2}|present|current)`),

		SkillSeparators: regexp.MustCompile(`[,|\n•\-*→▪▫◦‣⁃]`),
		SkillHeaderEcho: regexp.MustCompile(`(?i)^\s*(?:skills?|technical|technologies?)\s*:?\s*$`),

		InstitutionHints: []string{"university", "college", "institute", "school", "academy"},

		RTerm: []*regexp.Regexp{
			regexp.MustCompile(`\br(?:\s+\S+){0,3}\s+(?:programming|language|statistical|statistics|data|analysis|analytics)\b`),
			regexp.MustCompile(`\b(?:programming|languages?|statistical|statistics)(?:\s+\S+){0,2}\s+r\b`),
			regexp.MustCompile(`\br\s*studio\b`),
		},

		ContextWords: []string{
			"programming", "development", "software", "technology",
			"framework", "library", "tool", "platform", "database",
		},

		DegreeHierarchy: []DegreeRank{
			{"phd", 4}, {"doctorate", 4}, {"doctoral", 4},
			{"master", 3}, {"mtech", 3}, {"msc", 3}, {"me", 3}, {"ma", 3},
			{"bachelor", 2}, {"btech", 2}, {"bsc", 2}, {"be", 2}, {"ba", 2},
			{"diploma", 1}, {"certificate", 1},
		},
	}
}

func header(alternatives string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^\s*(?:` + alternatives + `)\s*:?\s*$`)
}

// MatchHeader returns the section a line introduces, if any.
func (r *Rules) MatchHeader(line string) (Section, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	for _, h := range r.Headers {
		if h.Pattern.MatchString(line) {
			return h.Section, true
		}
	}
	return "", false
}

// DegreeLevel returns the highest hierarchy level found in normalized degree
// text, or 0 when nothing matches. Keywords of three letters or fewer must
// equal a whole token once dots are removed, so "me" never matches "mechanical".
func (r *Rules) DegreeLevel(text string) int {
	tokens := strings.Fields(text)
	compact := make([]string, 0, len(tokens))
	for _, t := range tokens {
		compact = append(compact, strings.ReplaceAll(t, ".", ""))
	}

	level := 0
	for _, rank := range r.DegreeHierarchy {
		if rank.Level <= level {
			continue
		}
		if matchesKeyword(rank.Keyword, text, compact) {
			level = rank.Level
		}
	}
	return level
}

func matchesKeyword(keyword, text string, tokens []string) bool {
	short := len(keyword) <= 3
	if !short && strings.Contains(text, keyword) {
		return true
	}
	for _, t := range tokens {
		if t == keyword || (!short && strings.Contains(t, keyword)) {
			return true
		}
	}
	return false
}

// HasContextWord reports whether normalized text mentions any technology context word.
func (r *Rules) HasContextWord(text string) bool {
	for _, w := range r.ContextWords {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
