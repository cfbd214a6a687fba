package quiz

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// quizPayload is the wire shape the model is asked for, before validation.
type quizPayload struct {
	Topic      string            `json:"topic"`
	Difficulty string            `json:"difficulty"`
	Questions  []questionPayload `json:"questions"`
}

type questionPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// NormalizeQuizResponse turns raw model text into a validated QuizSet.
//
// Models wrap JSON in markdown fences and prose often enough that a
// repair pass pays for itself: strip fencing, fix smart quotes and
// trailing commas, then slice between the outermost braces before
// parsing. Failures return *MalformedResponseError (nothing parseable)
// or *SchemaViolationError (parsed but wrong shape); the retry policy
// lives in the generator, not here.
func NormalizeQuizResponse(raw string) (*QuizSet, error) {
	text := repairText(stripCodeFence(strings.TrimSpace(raw)))

	slice, err := sliceObject(text)
	if err != nil {
		return nil, err
	}

	var payload quizPayload
	if err := json.Unmarshal([]byte(slice), &payload); err != nil {
		return nil, &MalformedResponseError{Reason: err.Error()}
	}

	var parsed any
	if err := json.Unmarshal([]byte(slice), &parsed); err != nil {
		return nil, &MalformedResponseError{Reason: err.Error()}
	}
	if err := validateQuizShape(parsed); err != nil {
		return nil, err
	}

	questions := make([]Question, len(payload.Questions))
	for i, qp := range payload.Questions {
		if err := validateQuestion(i, qp); err != nil {
			return nil, err
		}
		questions[i] = Question{
			// IDs are assigned in order rather than trusted from the
			// payload, which keeps them unique by construction.
			ID:           i,
			Prompt:       strings.TrimSpace(qp.Question),
			Options:      qp.Options,
			CorrectIndex: *qp.CorrectAnswer,
			Explanation:  strings.TrimSpace(qp.Explanation),
		}
	}

	return &QuizSet{
		Topic:      payload.Topic,
		Difficulty: Difficulty(payload.Difficulty),
		Questions:  questions,
	}, nil
}

// validateQuestion checks one question against the schema rules,
// naming the offending index on failure.
func validateQuestion(i int, qp questionPayload) error {
	if strings.TrimSpace(qp.Question) == "" {
		return &SchemaViolationError{Index: i, Reason: "empty question text"}
	}
	if len(qp.Options) != OptionCount {
		return &SchemaViolationError{
			Index:  i,
			Reason: fmt.Sprintf("expected %d options, got %d", OptionCount, len(qp.Options)),
		}
	}
	if qp.CorrectAnswer == nil {
		return &SchemaViolationError{Index: i, Reason: "missing correctAnswer"}
	}
	if *qp.CorrectAnswer < 0 || *qp.CorrectAnswer >= OptionCount {
		return &SchemaViolationError{
			Index:  i,
			Reason: fmt.Sprintf("correctAnswer %d out of range [0,%d]", *qp.CorrectAnswer, OptionCount-1),
		}
	}
	return nil
}

// MaxHintLen bounds the hint text shown in the review flow, in runes.
const MaxHintLen = 320

// NormalizeHintResponse cleans raw hint text: fencing and wrapping
// quotes stripped, whitespace collapsed, length bounded.
func NormalizeHintResponse(raw string) string {
	s := stripCodeFence(strings.TrimSpace(raw))
	s = strings.Trim(s, `"`)
	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > MaxHintLen {
		s = strings.TrimSpace(string(runes[:MaxHintLen-1])) + "…"
	}
	return s
}

// stripCodeFence removes a leading/trailing markdown code fence of
// either the generic or the json-tagged kind.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	// Drop the opening fence line ("```" or "```json").
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

var (
	smartQuotes = strings.NewReplacer(
		"“", `"`, "”", `"`, // double
		"‘", `'`, "’", `'`, // single
	)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// repairText applies the textual repair pass: plain quotes, collapsed
// blank lines, no trailing commas before a closing brace/bracket.
func repairText(s string) string {
	s = smartQuotes.Replace(s)
	s = blankLines.ReplaceAllString(s, "\n\n")
	return stripTrailingCommas(s)
}

// stripTrailingCommas removes a comma that directly precedes a closing
// brace or bracket, ignoring anything inside string literals so option
// text like "a, ]" survives the repair untouched.
func stripTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			b.WriteByte(c)
		case ',':
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// sliceObject cuts the text between the first '{' and the last '}',
// defending against leading/trailing commentary around the payload.
func sliceObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return "", &MalformedResponseError{Reason: "no JSON object found in response"}
	}
	return s[start : end+1], nil
}
