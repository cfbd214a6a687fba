package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzical/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the configured LLM provider",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify provider configuration with a tiny round trip",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := llm.NewProviderFromEnv(cmd.Context(), stderrLogger())
		if err != nil {
			return err
		}

		fmt.Printf("Provider configured: %s\n", provider.ModelID())

		ctx := llm.WithPurpose(cmd.Context(), "check")
		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			System:    "You are a connectivity check. Answer with a single word.",
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with OK."}},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("round trip failed: %w", err)
		}

		fmt.Printf("Model:     %s\n", resp.Model)
		fmt.Printf("Latency:   %dms\n", time.Since(start).Milliseconds())
		fmt.Printf("Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		fmt.Printf("Response:  %s\n", strings.TrimSpace(resp.Text))
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
}
