package scoring

import "github.com/spigell/resume-relevance/internal/jobdesc"

func (e *Engine) skillsScore(evidence string, required jobdesc.Skills) (float64, SkillsBreakdown) {
	technical, t := e.skillCategory(evidence, required.Technical, technicalWeight)
	domain, d := e.skillCategory(evidence, required.Domain, domainWeight)
	soft, s := e.skillCategory(evidence, required.Soft, softWeight)

	return t + d + s, SkillsBreakdown{Technical: technical, Domain: domain, Soft: soft}
}

// skillCategory awards weight/len(skills) per fully present skill, scaled by
// match strength. An empty requirement list earns the full weight.
func (e *Engine) skillCategory(evidence string, skills []string, weight float64) (SkillCategory, float64) {
	category := SkillCategory{Matches: []SkillMatch{}, TotalPossible: weight}
	if len(skills) == 0 {
		category.Score = weight
		return category, weight
	}

	total := 0.0
	for _, skill := range skills {
		match := e.matcher.CheckPresence(skill, evidence, true)
		if match <= matchThreshold {
			continue
		}

		points := match / float64(len(skills)) * weight
		total += points
		category.Matches = append(category.Matches, SkillMatch{
			Skill:      skill,
			MatchScore: round(match, 2),
			Points:     round(points, 2),
		})
	}

	category.Score = round(total, 2)
	return category, total
}
