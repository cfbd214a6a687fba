package quiz

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quizSchemaDef is the structural gate for normalized quiz payloads: a
// top-level object with a non-empty questions array of objects. The
// per-question rules (4 options, correctAnswer range, non-empty prompt)
// are checked separately so violations can name the offending index.
var quizSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"topic": map[string]any{
			"type": "string",
		},
		"difficulty": map[string]any{
			"type": "string",
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
			},
		},
	},
	"required": []any{"questions"},
}

var compileQuizSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(quizSchemaDef)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://quiz-response.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateQuizShape runs the compiled schema over a parsed payload.
func validateQuizShape(parsed any) error {
	compiled, err := compileQuizSchema()
	if err != nil {
		return fmt.Errorf("compile quiz schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return &SchemaViolationError{Index: -1, Reason: err.Error()}
	}
	return nil
}
