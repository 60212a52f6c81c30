// Package ai holds the contracts for language-model backed helpers.
package ai

import (
	"context"

	"github.com/spigell/resume-relevance/internal/jobdesc"
)

const ProviderGemini = "gemini"

// JDExtractor turns free job description text into raw job description
// documents. It never fails: any problem yields an empty list.
type JDExtractor interface {
	ExtractJD(ctx context.Context, text string) []jobdesc.Document
}
