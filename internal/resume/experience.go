package resume

import "strconv"

// experienceYears sums every start-end year range. Overlapping ranges are
// counted twice; reversed ranges are ignored.
func (s *Segmenter) experienceYears(body string) float64 {
	current := s.now().Year()
	months := 0
	for _, m := range s.rules.YearRange.FindAllStringSubmatch(body, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := current
		if year, err := strconv.Atoi(m[2]); err == nil {
			end = year
		}
		if end < start {
			continue
		}
		months += (end - start) * 12
	}
	return float64(months) / 12
}
