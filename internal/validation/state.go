package validation

import (
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// WidgetStateSchema returns the JSON schema for partial widget state sent by
// the host. Every key is optional; custom parameters must be numbers or
// strings and css_class can never be set from outside.
func WidgetStateSchema() map[string]any {
	dimension := map[string]any{
		"type":    []any{"number", "string", "null"},
		"minimum": 0,
	}
	color := map[string]any{
		"type": []any{"string", "null"},
	}
	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "object",
		"properties": map[string]any{
			"size": map[string]any{
				"type":             "number",
				"exclusiveMinimum": 0,
			},
			"color":            color,
			"background_color": color,
			"border":           dimension,
			"margin":           cloneMap(dimension),
			"css_class":        false,
		},
		"additionalProperties": map[string]any{
			"type": []any{"number", "string"},
		},
	}
}

// StateValidator validates widget state against WidgetStateSchema. The
// schema is compiled once and shared.
type StateValidator struct {
	compiled *jsonschema.Schema
}

var (
	stateOnce     sync.Once
	stateCompiled *jsonschema.Schema
	stateErr      error
)

// NewStateValidator compiles the widget state schema.
func NewStateValidator() (*StateValidator, error) {
	stateOnce.Do(func() {
		stateCompiled, stateErr = compileSchema(WidgetStateSchema())
	})
	if stateErr != nil {
		return nil, stateErr
	}
	return &StateValidator{compiled: stateCompiled}, nil
}

// Validate returns a *PayloadValidationError listing every violation.
func (v *StateValidator) Validate(state map[string]any) error {
	if v == nil || v.compiled == nil {
		return nil
	}
	return validateCompiled(v.compiled, state)
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		switch typed := value.(type) {
		case map[string]any:
			out[key] = cloneMap(typed)
		case []any:
			out[key] = append([]any(nil), typed...)
		default:
			out[key] = value
		}
	}
	return out
}
