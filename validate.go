package share

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed responses.schema.json
var responsesSchemaJSON []byte

const responsesSchemaURL = "responses.schema.json"

var responsesSchema = mustCompileResponsesSchema()

func mustCompileResponsesSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(responsesSchemaJSON))
	if err != nil {
		panic(err)
	}

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft2020)
	if err := c.AddResource(responsesSchemaURL, doc); err != nil {
		panic(err)
	}
	return c.MustCompile(responsesSchemaURL)
}

// validateResponses checks the shape of a shared responses document before
// it is decoded. A nil document (empty input) is valid.
func validateResponses(doc any) error {
	if doc == nil {
		return nil
	}

	// Round-trip through JSON so the validator sees JSON-native values.
	b, err := json.Marshal(normalize(doc))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := responsesSchema.Validate(inst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// decodeYAML unmarshals data into a generic value.
func decodeYAML(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return doc, nil
}

// normalize converts YAML mappings with non-string keys (status codes
// written as bare integers) into string-keyed maps.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
