package resume

import (
	"regexp"
	"strings"
	"time"

	"github.com/spigell/resume-relevance/internal/rules"
)

var (
	blankRuns  = regexp.MustCompile(`\n{3,}`)
	blankLines = regexp.MustCompile(`\n\s*\n`)
)

// Segmenter splits resume text into sections. It holds no mutable state and
// is safe for concurrent use.
type Segmenter struct {
	rules *rules.Rules
	now   func() time.Time
}

type Option func(*Segmenter)

// WithClock overrides the clock used to resolve "present" in date ranges.
func WithClock(now func() time.Time) Option {
	return func(s *Segmenter) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSegmenter(r *rules.Rules, opts ...Option) *Segmenter {
	if r == nil {
		r = rules.Default()
	}
	s := &Segmenter{rules: r, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type headerLine struct {
	index   int
	section rules.Section
}

// Segment never fails: text without recognisable headers yields a record
// whose About holds the whole text.
func (s *Segmenter) Segment(raw string) Record {
	rec := NewRecord()
	if strings.TrimSpace(raw) == "" {
		return rec
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	lines := strings.Split(text, "\n")

	var headers []headerLine
	for i, line := range lines {
		if section, ok := s.rules.MatchHeader(line); ok {
			headers = append(headers, headerLine{index: i, section: section})
		}
	}

	if len(headers) == 0 {
		rec.About = strings.TrimSpace(text)
		return rec
	}

	rec.About = strings.TrimSpace(strings.Join(lines[:headers[0].index], "\n"))

	sections := make(map[rules.Section]string, len(headers))
	for i, h := range headers {
		end := len(lines)
		if i+1 < len(headers) {
			end = headers[i+1].index
		}

		content := strings.TrimSpace(strings.Join(lines[h.index+1:end], "\n"))
		if content == "" {
			continue
		}
		// a section repeated under a second header keeps both bodies
		if prev := sections[h.section]; prev != "" {
			content = prev + "\n\n" + content
		}
		sections[h.section] = content
	}

	if body := sections[rules.SectionEducation]; body != "" {
		rec.Education = s.education(body)
	}
	if body := sections[rules.SectionSkills]; body != "" {
		rec.Skills = s.skills(body)
	}
	if body := sections[rules.SectionProjects]; body != "" {
		rec.Projects = projects(body)
	}
	if body := sections[rules.SectionCertifications]; body != "" {
		rec.Certifications = certifications(body)
	}
	if body := sections[rules.SectionWorkExperience]; body != "" {
		rec.ExperienceYears = s.experienceYears(body)
	}

	return rec
}
