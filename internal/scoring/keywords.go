package scoring

import "github.com/spigell/resume-relevance/internal/jobdesc"

func (e *Engine) keywordsScore(text string, keywords jobdesc.Keywords) (float64, KeywordsBreakdown) {
	primary, p := e.keywordCategory(text, keywords.Primary, primaryWeight)
	secondary, s := e.keywordCategory(text, keywords.Secondary, secondaryWeight)

	return p + s, KeywordsBreakdown{Primary: primary, Secondary: secondary}
}

func (e *Engine) keywordCategory(text string, keywords []string, weight float64) (KeywordCategory, float64) {
	category := KeywordCategory{Matches: []KeywordMatch{}}
	if len(keywords) == 0 {
		category.Score = weight
		return category, weight
	}

	total := 0.0
	for _, keyword := range keywords {
		match := e.matcher.CheckPresence(keyword, text, false)
		if match <= matchThreshold {
			continue
		}

		points := match / float64(len(keywords)) * weight
		total += points
		category.Matches = append(category.Matches, KeywordMatch{
			Keyword:    keyword,
			MatchScore: round(match, 2),
			Points:     round(points, 2),
		})
	}

	category.Score = round(total, 2)
	return category, total
}
