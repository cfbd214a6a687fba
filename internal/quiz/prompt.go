package quiz

import (
	"fmt"
	"strings"
)

const quizSystemPrompt = `You are a quiz master writing multiple-choice quizzes for a trivia app.

Rules:
- Every question has exactly 4 options and exactly one correct answer.
- "correctAnswer" is the 0-based index of the correct option. It must be between 0 and 3.
- Questions must be engaging and non-trivial. Avoid ambiguous "trick" questions where two options could reasonably be defended.
- Distractors should be plausible, similar in length and register to the correct option.
- The explanation is one or two sentences on why the correct option is right.
- Respond with JSON only: a single object, no markdown fences, no text before or after it.`

// wireShape documents the exact JSON the normalizer expects. Kept as a
// constant so the prompt and the simplified retry prompt stay in sync.
const wireShape = `{"topic":"...","difficulty":"...","questions":[{"id":0,"question":"...","options":["...","...","...","..."],"correctAnswer":0,"explanation":"..."}]}`

// topicFamily attaches domain-specific guidance to a set of topic keywords.
type topicFamily struct {
	keywords []string
	hard     string
	general  string
}

// topicFamilies is matched in order, first match wins, so the lookup is
// deterministic regardless of how the topic phrases its keywords.
var topicFamilies = []topicFamily{
	{
		keywords: []string{"testing", "qa", "quality assurance"},
		hard:     "Build the analytical questions around software testing metrics: computing throughput under load, test coverage percentages, defect density, and pass/fail rates from given figures.",
		general:  "Ground the questions in realistic test design, bug triage and verification scenarios.",
	},
	{
		keywords: []string{"performance", "benchmark", "latency", "scalability"},
		hard:     "Build the analytical questions around latency percentiles, requests per second, resource utilization and capacity math with concrete numbers.",
		general:  "Ground the questions in profiling, bottleneck hunting and optimization trade-offs.",
	},
	{
		keywords: []string{"javascript", "programming", "coding", "software", "python", "golang"},
		hard:     "Build the analytical questions around algorithmic complexity, memory figures, and working out what short code fragments produce.",
		general:  "Favor questions about how real code behaves over name-the-keyword trivia.",
	},
}

// AnalyticalMinimum is the number of calculation-heavy questions a hard
// quiz must contain: 3, or 4 once the set is large enough to carry them.
func AnalyticalMinimum(count int) int {
	if count >= 8 {
		return 4
	}
	return 3
}

// topicGuidance returns the domain hint for a topic, falling back to a
// generic instruction when no keyword family matches.
func topicGuidance(topic string, difficulty Difficulty) string {
	t := strings.ToLower(topic)
	for _, fam := range topicFamilies {
		for _, kw := range fam.keywords {
			if strings.Contains(t, kw) {
				if difficulty == DifficultyHard {
					return fam.hard
				}
				return fam.general
			}
		}
	}
	if difficulty == DifficultyHard {
		return "Build the analytical questions around quantitative analysis: rates, proportions and comparisons of concrete figures drawn from the topic."
	}
	return "Keep the questions grounded in practical application of the topic."
}

// difficultyCharacter describes what kind of questions each difficulty asks for.
func difficultyCharacter(difficulty Difficulty, count int) string {
	switch difficulty {
	case DifficultyEasy:
		return "Easy difficulty: focus on definitions and core terminology. A player new to the topic should have a fair shot."
	case DifficultyHard:
		return fmt.Sprintf(
			"Hard difficulty: favor calculation-heavy, multi-variable, metric-based questions. At least %d of the %d questions must require working through numbers rather than recalling facts.",
			AnalyticalMinimum(count), count)
	default:
		return "Medium difficulty: focus on applied scenarios and comparative analysis, not bare definitions."
	}
}

// BuildQuizPrompt constructs the user message for quiz generation.
func BuildQuizPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Questions: %d\n", req.Count)

	b.WriteString("\n")
	b.WriteString(difficultyCharacter(req.Difficulty, req.Count))
	b.WriteString("\n")
	b.WriteString(topicGuidance(req.Topic, req.Difficulty))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Respond with a single JSON object in exactly this shape, and nothing else:\n%s\n", wireShape)
	b.WriteString("Every question must have exactly 4 options and a correctAnswer index between 0 and 3.")

	return b.String()
}

// BuildSimplifiedQuizPrompt is the stricter second-attempt variant, used
// after the first response couldn't be normalized. Shorter instruction,
// heavier emphasis on bare JSON output.
func BuildSimplifiedQuizPrompt(req Request) string {
	return fmt.Sprintf(
		"Generate exactly %d multiple-choice questions about %q at %s difficulty.\n"+
			"Return ONLY this JSON, with no markdown, no code fences and no commentary:\n%s\n"+
			"Exactly 4 options per question. correctAnswer is a 0-based index from 0 to 3.",
		req.Count, req.Topic, req.Difficulty, wireShape)
}

const hintSystemPrompt = `You are an encouraging quiz coach. A player missed a question and wants a nudge.
Write a hint of at most 50 words. Guide them toward the right idea, but never name or quote the correct option, and never say which option is correct. Warm tone, no scolding.`

// BuildHintPrompt constructs the user message for a hint on one missed question.
func BuildHintPrompt(q Question, userAnswer string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", q.Prompt)
	b.WriteString("Options:\n")
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "  %d) %s\n", i, opt)
	}
	fmt.Fprintf(&b, "The player answered: %s\n", userAnswer)
	b.WriteString("\nWrite the hint now. Under 50 words, encouraging, and do not reveal the answer.")

	return b.String()
}
