package curriculum

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// packSchema is the JSON Schema every graph pack document must satisfy
// before structural validation runs. Catching shape errors here keeps the
// structural checks free of nil-and-type ceremony.
var packSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"format_version": map[string]any{
			"type":    "string",
			"pattern": `^\d+\.\d+\.\d+$`,
		},
		"nodes": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"code":     map[string]any{"type": "string", "minLength": 1},
					"grade":    map[string]any{"type": "integer", "minimum": 0},
					"severity": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
					"misconceptions": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"code":        map[string]any{"type": "string", "minLength": 1},
								"description": map[string]any{"type": "string"},
							},
							"required": []any{"code"},
						},
					},
				},
				"required": []any{"code", "grade", "severity"},
			},
		},
		"edges": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"source": map[string]any{"type": "string", "minLength": 1},
					"target": map[string]any{"type": "string", "minLength": 1},
					"kind":   map[string]any{"type": "string", "enum": []any{"requires", "supports"}},
				},
				"required": []any{"source", "target"},
			},
		},
		"cascades": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"label": map[string]any{"type": "string", "minLength": 1},
					"nodes": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items":    map[string]any{"type": "string"},
					},
				},
				"required": []any{"label", "nodes"},
			},
		},
		"screening": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"grade": map[string]any{"type": "integer", "minimum": 0},
					"nodes": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string"},
					},
				},
				"required": []any{"grade", "nodes"},
			},
		},
	},
	"required": []any{"format_version", "nodes", "edges", "screening"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validatePackDocument checks raw pack bytes against packSchema.
func validatePackDocument(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("graph pack is not valid JSON: %w", err)
	}

	compiled, err := getCompiledPackSchema()
	if err != nil {
		return fmt.Errorf("compile graph pack schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("graph pack schema validation failed: %w", err)
	}
	return nil
}

// getCompiledPackSchema compiles packSchema once and caches it.
func getCompiledPackSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Round-trip through json to get a clean representation.
		defBytes, err := json.Marshal(packSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://graph-pack.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
