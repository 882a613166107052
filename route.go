package share

// RouteOption configures a Route built with NewRoute.
type RouteOption func(*Route)

// NewRoute builds a Route for method and path.
func NewRoute(method, path string, opts ...RouteOption) Route {
	r := Route{Method: method, Path: path}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithSummary sets the OpenAPI summary for the route.
func WithSummary(s string) RouteOption {
	return func(r *Route) {
		r.Summary = s
	}
}

// WithDescription sets the OpenAPI description for the route.
func WithDescription(d string) RouteOption {
	return func(r *Route) {
		r.Description = d
	}
}

// WithTags adds OpenAPI tags to the route.
func WithTags(tags ...string) RouteOption {
	return func(r *Route) {
		r.Tags = append(r.Tags, tags...)
	}
}

// WithOperationID sets a custom OpenAPI operationId.
func WithOperationID(id string) RouteOption {
	return func(r *Route) {
		r.OperationID = id
	}
}

// WithDeprecated marks the route as deprecated.
func WithDeprecated() RouteOption {
	return func(r *Route) {
		r.Deprecated = true
	}
}

// WithParameter appends an operation parameter.
func WithParameter(p Parameter) RouteOption {
	return func(r *Route) {
		r.Parameters = append(r.Parameters, p)
	}
}

// WithRequestBody sets the request body.
func WithRequestBody(body *RequestBody) RouteOption {
	return func(r *Route) {
		r.RequestBody = body
	}
}

// WithResponse sets the route's own response for code, replacing any
// earlier one.
func WithResponse(code StatusCode, resp Response) RouteOption {
	return func(r *Route) {
		if r.Responses == nil {
			r.Responses = make(Responses)
		}
		r.Responses[code] = resp
	}
}
