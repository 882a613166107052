// Package share attaches a shared set of response definitions, keyed by
// HTTP status code, to individual route descriptions. It is meant for the
// error responses that almost every operation of an API documents the same
// way.
//
// Shared responses are declared once:
//
//	type ErrorBody struct {
//	    Status  int    `json:"status" required:"true"`
//	    Message string `json:"message" required:"true"`
//	}
//
//	var errs = share.New(share.Responses{
//	    share.StatusBadRequest:          share.JSONResponse[ErrorBody]("Bad Request"),
//	    share.StatusInternalServerError: share.JSONResponse[ErrorBody]("Internal Server Error"),
//	})
//
// and selected per route:
//
//	route, err := errs.CreateSchema(share.Route{
//	    Method: "get",
//	    Path:   "/users",
//	    Responses: share.Responses{
//	        share.StatusOK: share.JSONResponse[[]User]("OK"),
//	    },
//	}, share.StatusBadRequest, share.StatusInternalServerError)
//
// The route's own responses always take precedence over shared ones. A
// status code that is selected but not shared is skipped. Selecting the same
// status code twice is rejected with a *SelectionError.
//
// Shared responses can also be kept in a YAML or JSON file and read with
// LoadResponses.
package share
