package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizzical/internal/app"
	"github.com/abhisek/quizzical/internal/llm"
	"github.com/abhisek/quizzical/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "quizzical",
	Short: "AI quiz game in your terminal",
	Long:  "Quizzical — pick any topic, get a timed multiple-choice quiz generated by an LLM, and review what you missed with AI hints.",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, hints, err := buildServices(cmd, tuiLogger())
		if err != nil {
			return err
		}
		return app.Run(gen, hints)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// buildServices wires the LLM provider into the generator and hint
// service. Provider selection and API keys come from QUIZZICAL_* env vars.
func buildServices(cmd *cobra.Command, log *logrus.Logger) (quiz.Generator, *quiz.HintService, error) {
	provider, err := llm.NewProviderFromEnv(cmd.Context(), log)
	if err != nil {
		return nil, nil, err
	}

	cfg := quiz.DefaultConfig()
	return quiz.New(provider, cfg), quiz.NewHintService(provider, cfg), nil
}

// tuiLogger keeps structured logs off the alternate screen. Set
// QUIZZICAL_DEBUG_LOG to a path to capture them.
func tuiLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	if path := os.Getenv("QUIZZICAL_DEBUG_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			log.SetOutput(f)
			log.SetLevel(logrus.DebugLevel)
		}
	}
	return log
}

// stderrLogger is for headless commands where logs belong on stderr.
func stderrLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	return log
}
