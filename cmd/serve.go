package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spigell/resume-relevance/internal/ai"
	"github.com/spigell/resume-relevance/internal/resume"
	"github.com/spigell/resume-relevance/internal/scoring"
	"github.com/spigell/resume-relevance/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resume relevance http api",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger, config := setup()
		logger.Info("starting the resume-relevance api", zap.String("version", version))

		var extractor ai.JDExtractor
		if e, err := newJDExtractor(ctx, config.AI, logger); err != nil {
			logger.Warn("job description uploads are disabled", zap.Error(err))
		} else {
			extractor = e
		}

		srv := server.New(config.Server, server.Deps{
			Segmenter: resume.NewSegmenter(nil),
			Engine:    scoring.NewEngine(nil, logger, config.Scoring.Workers),
			Extractor: extractor,
		}, logger)

		if err := srv.Run(ctx); err != nil {
			logger.Fatal("serving api", zap.Error(err))
		}

		logger.Info("stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address to listen on (default :9000)")
	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}
