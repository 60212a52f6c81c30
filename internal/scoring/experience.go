package scoring

import (
	"fmt"
	"strconv"

	"github.com/spigell/resume-relevance/internal/jobdesc"
)

func experienceScore(years float64, required jobdesc.Experience) (float64, string) {
	minimum := required.Min
	if minimum <= 0 {
		return experienceWeight, "No minimum experience required"
	}

	// the middle branch is only reached with preferred > years >= minimum
	preferred := required.PreferredOrDefault()

	switch {
	case years >= preferred:
		return experienceWeight, fmt.Sprintf("Exceeds preferred experience (%s >= %s)", years2s(years), years2s(preferred))
	case years >= minimum:
		ratio := (years - minimum) / (preferred - minimum)
		return round(20+5*ratio, 2), fmt.Sprintf("Meets minimum requirement (%s >= %s)", years2s(years), years2s(minimum))
	case years >= 0.7*minimum:
		return round(15*years/minimum, 2), fmt.Sprintf("Close to minimum requirement (%s/%s)", years2s(years), years2s(minimum))
	default:
		return 0, fmt.Sprintf("Below minimum requirement (%s < %s)", years2s(years), years2s(minimum))
	}
}

func years2s(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
