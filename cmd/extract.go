package cmd

import (
	"context"

	"github.com/spigell/resume-relevance/internal/ai"
	"github.com/spigell/resume-relevance/internal/extract"
	"github.com/spigell/resume-relevance/internal/jobdesc"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured job descriptions from a document with the language model",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		logger, config := setup()

		extractor, err := newJDExtractor(ctx, config.AI, logger)
		if err != nil {
			logger.Fatal("creating job description extractor", zap.Error(err))
		}

		path, _ := cmd.Flags().GetString("file")
		docs, err := extractJobDescriptions(ctx, extractor, path)
		if err != nil {
			logger.Fatal("extracting job descriptions", zap.String("file", path), zap.Error(err))
		}
		logger.Info("job descriptions ready", zap.String("file", path), zap.Int("count", len(docs)))

		if err := printJSON(cmd.OutOrStdout(), docs); err != nil {
			logger.Fatal("printing job descriptions", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("file", "f", "", "job description file (.pdf, .docx or .txt)")
	extractCmd.MarkFlagRequired("file")
}

func extractJobDescriptions(ctx context.Context, extractor ai.JDExtractor, path string) ([]jobdesc.Document, error) {
	text, err := extract.ExtractText(path)
	if err != nil {
		return nil, err
	}

	// an empty list means no job descriptions, not a failure
	docs := extractor.ExtractJD(ctx, text)
	if docs == nil {
		docs = []jobdesc.Document{}
	}

	return docs, nil
}
