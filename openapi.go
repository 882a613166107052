package share

import (
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Route describes a single API operation. Only Responses is interpreted by
// this package; every other field is carried through a merge as is.
type Route struct {
	Method      string       `json:"method,omitempty" yaml:"method,omitempty"`
	Path        string       `json:"path,omitempty" yaml:"path,omitempty"`
	Summary     string       `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	OperationID string       `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Parameters  []Parameter  `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   Responses    `json:"responses" yaml:"responses"`
	Deprecated  bool         `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string      `json:"name" yaml:"name"`
	In          string      `json:"in" yaml:"in"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool        `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      *JSONSchema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// RequestBody describes the request body.
type RequestBody struct {
	Required bool                `json:"required" yaml:"required"`
	Content  map[string]MediaObj `json:"content" yaml:"content"`
}

// MediaObj is a media type object with an optional schema.
type MediaObj struct {
	Schema  *JSONSchema `json:"schema,omitempty" yaml:"schema,omitempty"`
	Example any         `json:"example,omitempty" yaml:"example,omitempty"`
}

// Response describes a single response. When Ref is set the response is a
// reference object and the other fields are ignored by document generators.
type Response struct {
	Ref         string              `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Content     map[string]MediaObj `json:"content,omitempty" yaml:"content,omitempty"`
}

// Clone returns a copy of r with its own content map. Schemas are shared.
func (r Response) Clone() Response {
	r.Content = maps.Clone(r.Content)
	return r
}

// Responses maps status codes to response objects.
type Responses map[StatusCode]Response

// Clone returns a deep copy of r. A nil map clones to nil.
func (r Responses) Clone() Responses {
	if r == nil {
		return nil
	}
	out := make(Responses, len(r))
	for code, resp := range r {
		out[code] = resp.Clone()
	}
	return out
}

// Codes returns the status codes present in r in ascending order.
func (r Responses) Codes() []StatusCode {
	return slices.Sorted(maps.Keys(r))
}

// UnmarshalYAML decodes a mapping whose keys are "default" or status codes.
func (r *Responses) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]Response
	if err := value.Decode(&raw); err != nil {
		return err
	}
	out := make(Responses, len(raw))
	for key, resp := range raw {
		code, err := ParseStatusCode(key)
		if err != nil {
			return err
		}
		out[code] = resp
	}
	*r = out
	return nil
}
