package classify

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultSchemaName identifies the classification schema (tool name for
// Anthropic, schema name for OpenAI).
const resultSchemaName = "response-classification"

// resultSchema is the JSON Schema every classifier response must satisfy.
var resultSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"is_correct": map[string]any{
			"type":        "boolean",
			"description": "Whether the learner's response demonstrates the skill",
		},
		"confidence": map[string]any{
			"type":        "number",
			"minimum":     0.0,
			"maximum":     1.0,
			"description": "Certainty of the judgement (0.0-1.0)",
		},
		"misconception_code": map[string]any{
			"type":        []any{"string", "null"},
			"description": "The code of the matching misconception from the candidate list, or null",
		},
		"reasoning": map[string]any{
			"type":        "string",
			"description": "One-sentence explanation of the judgement",
		},
	},
	"required":             []any{"is_correct", "confidence", "misconception_code", "reasoning"},
	"additionalProperties": false,
}

// rawResult is the wire form of a classification.
type rawResult struct {
	IsCorrect         bool    `json:"is_correct"`
	Confidence        float64 `json:"confidence"`
	MisconceptionCode *string `json:"misconception_code"`
	Reasoning         string  `json:"reasoning"`
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func getCompiledResultSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		defBytes, err := json.Marshal(resultSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		schemaURL := fmt.Sprintf("schema://%s.json", resultSchemaName)
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// parseResult validates raw provider output against the classification
// schema and converts it to a Result. A misconception code outside the
// candidate list is dropped rather than trusted.
func parseResult(raw json.RawMessage, candidates []Candidate) (*Result, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := getCompiledResultSchema()
	if err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var rr rawResult
	if err := json.Unmarshal(raw, &rr); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}

	res := &Result{
		Correct:    rr.IsCorrect,
		Confidence: rr.Confidence,
		Reasoning:  rr.Reasoning,
	}
	if rr.MisconceptionCode != nil && !rr.IsCorrect {
		for _, c := range candidates {
			if c.Code == *rr.MisconceptionCode {
				res.MisconceptionCode = c.Code
				break
			}
		}
	}
	return res, nil
}
