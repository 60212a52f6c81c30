package resume

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/resume-relevance/internal/rules"
)

func (s *Segmenter) skills(body string) []string {
	skills := []string{}
	for _, item := range s.rules.SkillSeparators.Split(body, -1) {
		item = strings.TrimSpace(item)
		if utf8.RuneCountInString(item) <= 1 || strings.HasPrefix(item, ":") {
			continue
		}
		if s.rules.SkillHeaderEcho.MatchString(item) {
			continue
		}
		skills = append(skills, item)
	}
	return skills
}

// projects splits on blank lines and on lines opening with a bullet.
func projects(body string) []string {
	var (
		items   []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			items = append(items, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case startsWithBullet(trimmed):
			flush()
			current = append(current, line)
		default:
			current = append(current, line)
		}
	}
	flush()

	return cleanItems(items)
}

// certifications splits on bullet lines and on lines that start directly
// with a word character; indented lines continue the previous entry.
func certifications(body string) []string {
	var (
		items   []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			items = append(items, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(body, "\n") {
		if startsWithBullet(strings.TrimSpace(line)) || startsWithWord(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return cleanItems(items)
}

func cleanItems(items []string) []string {
	cleaned := []string{}
	for _, item := range items {
		item = strings.TrimLeft(strings.TrimSpace(item), rules.Bullets+" ")
		if item = strings.TrimSpace(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}
	return cleaned
}

func startsWithBullet(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && strings.ContainsRune(rules.Bullets, r)
}

func startsWithWord(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
