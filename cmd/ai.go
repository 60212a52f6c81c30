package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spigell/resume-relevance/internal/ai"
	"github.com/spigell/resume-relevance/internal/ai/gemini"
	"github.com/spigell/resume-relevance/internal/secrets"

	"go.uber.org/zap"
)

const geminiKeyEnv = "GEMINI_API_KEY"

func newJDExtractor(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.JDExtractor, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != ai.ProviderGemini {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
		Env:   geminiKeyEnv,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or %s)", err, geminiKeyEnv)
	}

	template, err := gemini.LoadPromptTemplate(cfg.PromptFile)
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, gemini.Options{
		Model:           cfg.Gemini.Model,
		MaxRetries:      cfg.Gemini.MaxRetries,
		Temperature:     cfg.Gemini.Temperature,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
	}, logger)
	if err != nil {
		return nil, err
	}

	extractorLogger := logger.With(
		zap.String("provider", ai.ProviderGemini),
		zap.String("model", generator.Model()),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	return gemini.NewExtractor(generator, template, cfg.Gemini.MaxLogLength, extractorLogger), nil
}
