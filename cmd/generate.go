package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzical/internal/quiz"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz and print it as JSON",
	Long:  "Runs the full generation path headless and writes the validated quiz to stdout, for scripting and prompt debugging.",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		diff, err := quiz.ParseDifficulty(difficulty)
		if err != nil {
			return err
		}

		gen, _, err := buildServices(cmd, stderrLogger())
		if err != nil {
			return err
		}

		qs, err := gen.Generate(cmd.Context(), quiz.Request{
			Topic:      topic,
			Difficulty: diff,
			Count:      count,
		})
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(quizJSON(qs))
	},
}

// quizOutput mirrors the HTTP API's response shape so generated quizzes
// can be piped straight into other tools.
type quizOutput struct {
	Topic      string           `json:"topic"`
	Difficulty string           `json:"difficulty"`
	Questions  []questionOutput `json:"questions"`
}

type questionOutput struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

func quizJSON(qs *quiz.QuizSet) quizOutput {
	out := quizOutput{
		Topic:      qs.Topic,
		Difficulty: string(qs.Difficulty),
	}
	for _, q := range qs.Questions {
		out.Questions = append(out.Questions, questionOutput{
			ID:            q.ID,
			Question:      q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectIndex,
			Explanation:   q.Explanation,
		})
	}
	return out
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Quiz topic (required)")
	generateCmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium or hard")
	generateCmd.Flags().IntP("count", "n", quiz.DefaultCount, "Number of questions")
	_ = generateCmd.MarkFlagRequired("topic")
}
