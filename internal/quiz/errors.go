package quiz

import "fmt"

// MalformedResponseError indicates the provider's text contained no
// parseable JSON payload. Triggers the simplified-prompt retry.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed quiz response: %s", e.Reason)
}

// SchemaViolationError indicates the payload parsed but doesn't satisfy
// the quiz schema. Index names the offending question; -1 means the
// violation is at the quiz level. Triggers the simplified-prompt retry.
type SchemaViolationError struct {
	Index  int
	Reason string
}

func (e *SchemaViolationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("quiz schema violation: %s", e.Reason)
	}
	return fmt.Sprintf("quiz schema violation at question %d: %s", e.Index, e.Reason)
}

// GenerationError indicates both the full and the simplified prompt
// attempts produced unusable output. Fatal to the generation flow.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("quiz generation failed after 2 attempts: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
