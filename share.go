package share

import (
	"context"
	"log/slog"
)

// Shared holds a fixed set of response definitions that can be attached to
// many routes. It is never modified after New and is safe for concurrent use.
type Shared struct {
	responses Responses
	logger    *slog.Logger
}

// New creates a Shared from a copy of responses. Any map is accepted,
// including an empty or nil one.
func New(responses Responses, opts ...Option) *Shared {
	s := &Shared{
		responses: responses.Clone(),
		logger:    slog.New(slog.DiscardHandler),
	}
	if s.responses == nil {
		s.responses = Responses{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSchema returns a copy of route whose responses are the shared
// entries named by codes overlaid with the route's own responses. The
// route's own entry wins when both define the same status code. Codes with
// no shared entry are skipped.
//
// With no codes, route is returned unchanged. A code listed twice is a
// caller error: the call fails with a *SelectionError and no route.
func (s *Shared) CreateSchema(route Route, codes ...StatusCode) (Route, error) {
	sel := Selection(codes)
	if err := sel.Validate(); err != nil {
		return Route{}, err
	}
	if len(sel) == 0 {
		return route, nil
	}

	merged := make(Responses, len(sel)+len(route.Responses))
	for _, code := range sel {
		resp, ok := s.responses[code]
		if !ok {
			s.logger.LogAttrs(context.Background(), slog.LevelDebug, "status code not shared, skipping",
				slog.String("status", code.String()),
				slog.String("method", route.Method),
				slog.String("path", route.Path),
			)
			continue
		}
		merged[code] = resp.Clone()
	}
	for code, resp := range route.Responses {
		merged[code] = resp.Clone()
	}

	route.Responses = merged
	return route, nil
}

// MustCreateSchema is like CreateSchema but panics on error. It is meant for
// route tables declared at package level.
func (s *Shared) MustCreateSchema(route Route, codes ...StatusCode) Route {
	r, err := s.CreateSchema(route, codes...)
	if err != nil {
		panic(err)
	}
	return r
}

// Codes returns the shared status codes in ascending order.
func (s *Shared) Codes() []StatusCode {
	return s.responses.Codes()
}

// Lookup returns a copy of the shared response for code.
func (s *Shared) Lookup(code StatusCode) (Response, bool) {
	resp, ok := s.responses[code]
	if !ok {
		return Response{}, false
	}
	return resp.Clone(), true
}

// Len returns the number of shared responses.
func (s *Shared) Len() int { return len(s.responses) }
