package share

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadResponses reads a shared responses document in YAML or JSON. Keys
// are status codes or "default":
//
//	400:
//	  description: Bad Request
//	  content:
//	    application/json:
//	      schema: {$ref: '#/components/schemas/Error'}
//	default:
//	  description: Unexpected error
//
// The document is checked against an embedded JSON Schema before it is
// decoded. Errors wrap ErrInvalidConfig.
func LoadResponses(r io.Reader) (Responses, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read responses: %w", err)
	}

	doc, err := decodeYAML(data)
	if err != nil {
		return nil, err
	}
	if err := validateResponses(doc); err != nil {
		return nil, err
	}

	var out Responses
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if out == nil {
		out = Responses{}
	}
	return out, nil
}

// LoadResponsesFile reads a shared responses document from path.
func LoadResponsesFile(path string) (Responses, error) {
	f, err := os.Open(path) //nolint:gosec // caller-provided path
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only

	resp, err := LoadResponses(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return resp, nil
}

// LoadRoute reads a single route description in YAML or JSON. Unknown
// fields are rejected, including those inside response entries.
func LoadRoute(r io.Reader) (Route, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Route{}, fmt.Errorf("read route: %w", err)
	}

	doc, err := decodeYAML(data)
	if err != nil {
		return Route{}, err
	}
	if m, ok := normalize(doc).(map[string]any); ok {
		if err := validateResponses(m["responses"]); err != nil {
			return Route{}, err
		}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var route Route
	if err := dec.Decode(&route); err != nil && !errors.Is(err, io.EOF) {
		return Route{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return route, nil
}

// LoadRouteFile reads a single route description from path.
func LoadRouteFile(path string) (Route, error) {
	f, err := os.Open(path) //nolint:gosec // caller-provided path
	if err != nil {
		return Route{}, err
	}
	defer f.Close() //nolint:errcheck // read-only

	route, err := LoadRoute(f)
	if err != nil {
		return Route{}, fmt.Errorf("%s: %w", path, err)
	}
	return route, nil
}
