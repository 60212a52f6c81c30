package cmd

import (
	"github.com/spigell/resume-relevance/internal/extract"
	"github.com/spigell/resume-relevance/internal/resume"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume and print its sections as json",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, _ := setup()

		path, _ := cmd.Flags().GetString("resume")
		rec, err := parseResume(path, logger)
		if err != nil {
			logger.Fatal("parsing resume", zap.String("file", path), zap.Error(err))
		}

		if err := printJSON(cmd.OutOrStdout(), rec); err != nil {
			logger.Fatal("printing resume", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("resume", "r", "", "resume file (.pdf, .docx or .txt)")
	parseCmd.MarkFlagRequired("resume")
}

func parseResume(path string, logger *zap.Logger) (resume.Record, error) {
	text, err := extract.ExtractText(path)
	if err != nil {
		return resume.Record{}, err
	}

	rec := resume.NewSegmenter(nil).Segment(text)
	logger.Info("parsed resume",
		zap.String("file", path),
		zap.String("candidate", rec.Candidate()),
		zap.Int("education", len(rec.Education)),
		zap.Int("skills", len(rec.Skills)),
		zap.Float64("experience_years", rec.ExperienceYears),
	)

	return rec, nil
}
