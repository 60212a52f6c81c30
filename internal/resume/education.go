package resume

import (
	"strconv"
	"strings"
)

func (s *Segmenter) education(body string) []EducationEntry {
	entries := []EducationEntry{}
	for _, block := range blankLines.Split(body, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		entries = append(entries, s.educationEntry(block))
	}
	return entries
}

func (s *Segmenter) educationEntry(block string) EducationEntry {
	return EducationEntry{
		Degree:      strings.TrimSpace(s.rules.Degree.FindString(block)),
		Branch:      strings.TrimSpace(s.rules.Branch.FindString(block)),
		GPA:         s.gpa(block),
		EndYear:     s.endYear(block),
		Institution: s.institution(block),
	}
}

// gpa returns the first number in the block that is not a calendar year.
func (s *Segmenter) gpa(block string) *float64 {
	for _, m := range s.rules.GPA.FindAllStringSubmatch(block, -1) {
		if looksLikeYear(m[1]) {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return &v
	}
	return nil
}

func looksLikeYear(num string) bool {
	return len(num) == 4 && (strings.HasPrefix(num, "19") || strings.HasPrefix(num, "20"))
}

func (s *Segmenter) endYear(block string) *int {
	m := s.rules.GraduationRange.FindStringSubmatch(block)
	if m == nil {
		m = s.rules.GraduationYear.FindStringSubmatch(block)
	}
	if m == nil {
		return nil
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &year
}

// institution is the first line naming a school-like word, else the longest line.
func (s *Segmenter) institution(block string) string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, hint := range s.rules.InstitutionHints {
			if strings.Contains(lower, hint) {
				return line
			}
		}
	}

	longest := ""
	for _, line := range lines {
		if len([]rune(line)) > len([]rune(longest)) {
			longest = line
		}
	}
	return longest
}
