package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spigell/resume-relevance/internal/filtering"
	"github.com/spigell/resume-relevance/internal/jobdesc"
	"github.com/spigell/resume-relevance/internal/scoring"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptSummary   = "Show summary"
	PromptBreakdown = "Show breakdown of a result"
	PromptToFile    = "Dump results to file"
	PromptExit      = "Exit"
	PromptBack      = "back"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptSummary, PromptBreakdown, PromptToFile, PromptExit},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against one or more job descriptions",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("resume", "r", "", "resume file (.pdf, .docx or .txt)")
	scoreCmd.Flags().String("jd", "", "job description json: an object or a list of objects")
	scoreCmd.Flags().String("jd-file", "", "job description document, structured with the language model")
	scoreCmd.Flags().BoolP("interactive", "i", false, "browse the results interactively")
	scoreCmd.Flags().Float64("min-score", 0, "hide results with a total score below this value")
	scoreCmd.Flags().Int("top", 0, "show only the best N results")
	scoreCmd.Flags().Bool("skip-failed", false, "hide job descriptions that could not be scored")

	scoreCmd.MarkFlagRequired("resume")
	scoreCmd.MarkFlagsOneRequired("jd", "jd-file")
	scoreCmd.MarkFlagsMutuallyExclusive("jd", "jd-file")

	viper.BindPFlag("scoring.min-score", scoreCmd.Flags().Lookup("min-score"))
	viper.BindPFlag("scoring.top", scoreCmd.Flags().Lookup("top"))
	viper.BindPFlag("scoring.skip-failed", scoreCmd.Flags().Lookup("skip-failed"))
}

func score(cmd *cobra.Command) {
	ctx := cmd.Context()
	logger, config := setup()

	resumePath, _ := cmd.Flags().GetString("resume")
	rec, err := parseResume(resumePath, logger)
	if err != nil {
		logger.Fatal("parsing resume", zap.String("file", resumePath), zap.Error(err))
	}

	docs, err := loadJobDescriptions(ctx, cmd, config, logger)
	if err != nil {
		logger.Fatal("loading job descriptions", zap.Error(err))
	}

	engine := scoring.NewEngine(nil, logger, config.Scoring.Workers)
	outcomes := engine.ScoreBatch(ctx, rec, docs)

	logger.Info("scored job descriptions", zap.Int("count", len(outcomes)))

	outcomes, err = prepareFilters(config.Scoring, logger).RunFilters(ctx, outcomes)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	if len(outcomes) == 0 {
		logger.Info("exiting", zap.String("reason", "no results to show"), zap.Int("job_descriptions", len(docs)))
		return
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); !interactive {
		if err := printJSON(cmd.OutOrStdout(), outcomes); err != nil {
			logger.Fatal("printing results", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, cmd.OutOrStdout(), logger, outcomes); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func prepareFilters(cfg *ScoringConfig, logger *zap.Logger) *filtering.Filtering {
	steps := []filtering.Filter{
		filtering.NewSkipFailed(cfg.SkipFailed),
		filtering.NewMinScore(cfg.MinScore),
		filtering.NewTop(cfg.Top),
	}

	return filtering.New(steps, logger)
}

func loadJobDescriptions(ctx context.Context, cmd *cobra.Command, config *Config, logger *zap.Logger) ([]jobdesc.Document, error) {
	if raw, _ := cmd.Flags().GetString("jd"); strings.TrimSpace(raw) != "" {
		return parseJobDescriptions(raw)
	}

	path, _ := cmd.Flags().GetString("jd-file")
	extractor, err := newJDExtractor(ctx, config.AI, logger)
	if err != nil {
		return nil, fmt.Errorf("creating job description extractor: %w", err)
	}

	return extractJobDescriptions(ctx, extractor, path)
}

func parseJobDescriptions(raw string) ([]jobdesc.Document, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("decoding --jd: %w", err)
	}

	docs, err := jobdesc.DecodeAll(v)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []jobdesc.Document{}
	}

	return docs, nil
}

func handleAction(action string, out io.Writer, logger *zap.Logger, outcomes scoring.Outcomes) error {
	switch action {
	case PromptSummary:
		return printJSON(out, outcomes.Summary())
	case PromptBreakdown:
		return showBreakdown(out, outcomes)
	case PromptToFile:
		filename, err := outcomes.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func showBreakdown(out io.Writer, outcomes scoring.Outcomes) error {
	items := make([]string, 0, len(outcomes)+1)
	for i := range outcomes {
		items = append(items, outcomes.Label(i))
	}

	resultPrompt := promptui.Select{
		Label: "Choose a result and press ENTER",
		Items: append(items, PromptBack),
	}

	idx, selected, err := resultPrompt.Run()
	if err != nil {
		return err
	}
	if selected == PromptBack {
		return nil
	}

	return printJSON(out, outcomes[idx])
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
