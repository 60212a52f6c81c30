package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	_ "embed"

	"github.com/spigell/resume-relevance/internal/ai"
	"github.com/spigell/resume-relevance/internal/jobdesc"
	"github.com/spigell/resume-relevance/internal/utils"
	"go.uber.org/zap"
)

const (
	defaultMaxLogLength = 200
	textPlaceholder     = "{{JD_TEXT}}"
)

//go:embed prompt.md
var defaultPrompt string

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

var _ ai.JDExtractor = (*Extractor)(nil)

// Extractor asks Gemini to structure free job description text.
type Extractor struct {
	generator contentGenerator
	template  string
	logger    *zap.Logger
	maxLogLen int
}

// NewExtractor returns an extractor using template as the prompt. An empty
// template selects the built-in one.
func NewExtractor(generator contentGenerator, template string, maxLogLength int, logger *zap.Logger) *Extractor {
	if strings.TrimSpace(template) == "" {
		template = defaultPrompt
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		generator: generator,
		template:  template,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// LoadPromptTemplate reads a prompt override. An empty path or an empty file
// yields "", which NewExtractor treats as the built-in prompt.
func LoadPromptTemplate(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading prompt file %q: %w", path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (e *Extractor) ExtractJD(ctx context.Context, text string) []jobdesc.Document {
	text = strings.TrimSpace(text)
	if text == "" {
		e.logger.Warn("skipping job description extraction", zap.String("reason", "empty text"))
		return []jobdesc.Document{}
	}

	prompt := e.buildPrompt(text)
	e.logger.Debug("sending job description prompt",
		zap.String("model", e.generator.Model()),
		zap.String("prompt", utils.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		e.logger.Warn("extracting job description", zap.Error(err))
		return []jobdesc.Document{}
	}

	e.logger.Debug("got job description response", zap.String("response", utils.TruncateForLog(raw, e.maxLogLen)))

	docs, err := parseDocuments(raw)
	if err != nil {
		e.logger.Warn("parsing job description response",
			zap.Error(err),
			zap.String("response", utils.TruncateForLog(raw, e.maxLogLen)),
		)
		return []jobdesc.Document{}
	}

	e.logger.Info("extracted job descriptions", zap.Int("count", len(docs)))
	return docs
}

func (e *Extractor) buildPrompt(text string) string {
	if strings.Contains(e.template, textPlaceholder) {
		return strings.ReplaceAll(e.template, textPlaceholder, text)
	}
	return fmt.Sprintf("%s\n\"\"\"%s\"\"\"", strings.TrimSpace(e.template), text)
}

// parseDocuments decodes the model output into documents. A single object
// becomes a one-element list and array entries that are not objects are dropped.
func parseDocuments(raw string) ([]jobdesc.Document, error) {
	payload := extractJSON(raw)
	if payload == "" {
		return nil, fmt.Errorf("response contains no json")
	}

	var decoded any
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return nil, fmt.Errorf("decode response json: %w", err)
	}

	switch v := decoded.(type) {
	case map[string]any:
		return []jobdesc.Document{v}, nil
	case []any:
		docs := make([]jobdesc.Document, 0, len(v))
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok {
				docs = append(docs, obj)
			}
		}
		return docs, nil
	default:
		return nil, fmt.Errorf("unexpected json value %T", decoded)
	}
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	raw = strings.TrimSpace(raw)

	// models sometimes put a sentence before the payload
	if start := strings.IndexAny(raw, "[{"); start > 0 {
		raw = raw[start:]
	}

	return raw
}
