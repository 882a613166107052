package share

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
)

// StatusCode is an HTTP status code that may key a response entry.
// The set of valid codes is closed; see StatusCodes.
type StatusCode int

// StatusDefault keys the catch-all "default" response.
const StatusDefault StatusCode = -1

// Informational.
const (
	StatusContinue   = StatusCode(http.StatusContinue)
	StatusProcessing = StatusCode(http.StatusProcessing)
	StatusEarlyHints = StatusCode(http.StatusEarlyHints)
)

// Success.
const (
	StatusOK                   = StatusCode(http.StatusOK)
	StatusCreated              = StatusCode(http.StatusCreated)
	StatusAccepted             = StatusCode(http.StatusAccepted)
	StatusNonAuthoritativeInfo = StatusCode(http.StatusNonAuthoritativeInfo)
	StatusPartialContent       = StatusCode(http.StatusPartialContent)
	StatusMultiStatus          = StatusCode(http.StatusMultiStatus)
	StatusAlreadyReported      = StatusCode(http.StatusAlreadyReported)
	StatusIMUsed               = StatusCode(http.StatusIMUsed)
)

// Redirection.
const (
	StatusMultipleChoices   = StatusCode(http.StatusMultipleChoices)
	StatusMovedPermanently  = StatusCode(http.StatusMovedPermanently)
	StatusFound             = StatusCode(http.StatusFound)
	StatusSeeOther          = StatusCode(http.StatusSeeOther)
	StatusUseProxy          = StatusCode(http.StatusUseProxy)
	StatusSwitchProxy       = StatusCode(306) // reserved, no net/http constant
	StatusTemporaryRedirect = StatusCode(http.StatusTemporaryRedirect)
	StatusPermanentRedirect = StatusCode(http.StatusPermanentRedirect)
)

// Client errors.
const (
	StatusBadRequest                   = StatusCode(http.StatusBadRequest)
	StatusUnauthorized                 = StatusCode(http.StatusUnauthorized)
	StatusPaymentRequired              = StatusCode(http.StatusPaymentRequired)
	StatusForbidden                    = StatusCode(http.StatusForbidden)
	StatusNotFound                     = StatusCode(http.StatusNotFound)
	StatusMethodNotAllowed             = StatusCode(http.StatusMethodNotAllowed)
	StatusNotAcceptable                = StatusCode(http.StatusNotAcceptable)
	StatusProxyAuthRequired            = StatusCode(http.StatusProxyAuthRequired)
	StatusRequestTimeout               = StatusCode(http.StatusRequestTimeout)
	StatusConflict                     = StatusCode(http.StatusConflict)
	StatusGone                         = StatusCode(http.StatusGone)
	StatusLengthRequired               = StatusCode(http.StatusLengthRequired)
	StatusPreconditionFailed           = StatusCode(http.StatusPreconditionFailed)
	StatusRequestEntityTooLarge        = StatusCode(http.StatusRequestEntityTooLarge)
	StatusRequestURITooLong            = StatusCode(http.StatusRequestURITooLong)
	StatusUnsupportedMediaType         = StatusCode(http.StatusUnsupportedMediaType)
	StatusRequestedRangeNotSatisfiable = StatusCode(http.StatusRequestedRangeNotSatisfiable)
	StatusExpectationFailed            = StatusCode(http.StatusExpectationFailed)
	StatusTeapot                       = StatusCode(http.StatusTeapot)
	StatusMisdirectedRequest           = StatusCode(http.StatusMisdirectedRequest)
	StatusUnprocessableEntity          = StatusCode(http.StatusUnprocessableEntity)
	StatusLocked                       = StatusCode(http.StatusLocked)
	StatusFailedDependency             = StatusCode(http.StatusFailedDependency)
	StatusTooEarly                     = StatusCode(http.StatusTooEarly)
	StatusUpgradeRequired              = StatusCode(http.StatusUpgradeRequired)
	StatusPreconditionRequired         = StatusCode(http.StatusPreconditionRequired)
	StatusTooManyRequests              = StatusCode(http.StatusTooManyRequests)
	StatusRequestHeaderFieldsTooLarge  = StatusCode(http.StatusRequestHeaderFieldsTooLarge)
	StatusUnavailableForLegalReasons   = StatusCode(http.StatusUnavailableForLegalReasons)
)

// Server errors.
const (
	StatusInternalServerError           = StatusCode(http.StatusInternalServerError)
	StatusNotImplemented                = StatusCode(http.StatusNotImplemented)
	StatusBadGateway                    = StatusCode(http.StatusBadGateway)
	StatusServiceUnavailable            = StatusCode(http.StatusServiceUnavailable)
	StatusGatewayTimeout                = StatusCode(http.StatusGatewayTimeout)
	StatusHTTPVersionNotSupported       = StatusCode(http.StatusHTTPVersionNotSupported)
	StatusVariantAlsoNegotiates         = StatusCode(http.StatusVariantAlsoNegotiates)
	StatusInsufficientStorage           = StatusCode(http.StatusInsufficientStorage)
	StatusLoopDetected                  = StatusCode(http.StatusLoopDetected)
	StatusNotExtended                   = StatusCode(http.StatusNotExtended)
	StatusNetworkAuthenticationRequired = StatusCode(http.StatusNetworkAuthenticationRequired)
)

// statusCodes is the closed set in ascending order. Codes that never carry
// a body (101, 204, 205, 304) are excluded.
var statusCodes = []StatusCode{
	StatusDefault,

	StatusContinue, StatusProcessing, StatusEarlyHints,

	StatusOK, StatusCreated, StatusAccepted, StatusNonAuthoritativeInfo,
	StatusPartialContent, StatusMultiStatus, StatusAlreadyReported, StatusIMUsed,

	StatusMultipleChoices, StatusMovedPermanently, StatusFound, StatusSeeOther,
	StatusUseProxy, StatusSwitchProxy, StatusTemporaryRedirect, StatusPermanentRedirect,

	StatusBadRequest, StatusUnauthorized, StatusPaymentRequired, StatusForbidden,
	StatusNotFound, StatusMethodNotAllowed, StatusNotAcceptable, StatusProxyAuthRequired,
	StatusRequestTimeout, StatusConflict, StatusGone, StatusLengthRequired,
	StatusPreconditionFailed, StatusRequestEntityTooLarge, StatusRequestURITooLong,
	StatusUnsupportedMediaType, StatusRequestedRangeNotSatisfiable, StatusExpectationFailed,
	StatusTeapot, StatusMisdirectedRequest, StatusUnprocessableEntity, StatusLocked,
	StatusFailedDependency, StatusTooEarly, StatusUpgradeRequired, StatusPreconditionRequired,
	StatusTooManyRequests, StatusRequestHeaderFieldsTooLarge, StatusUnavailableForLegalReasons,

	StatusInternalServerError, StatusNotImplemented, StatusBadGateway,
	StatusServiceUnavailable, StatusGatewayTimeout, StatusHTTPVersionNotSupported,
	StatusVariantAlsoNegotiates, StatusInsufficientStorage, StatusLoopDetected,
	StatusNotExtended, StatusNetworkAuthenticationRequired,
}

const defaultText = "default"

// StatusCodes returns every valid status code in ascending order,
// StatusDefault first.
func StatusCodes() []StatusCode {
	return slices.Clone(statusCodes)
}

// Valid reports whether c is a member of the closed status code set.
func (c StatusCode) Valid() bool {
	_, found := slices.BinarySearch(statusCodes, c)
	return found
}

// String returns "default" for StatusDefault and the decimal code otherwise.
func (c StatusCode) String() string {
	if c == StatusDefault {
		return defaultText
	}
	return strconv.Itoa(int(c))
}

// Text returns the reason phrase for the code.
func (c StatusCode) Text() string {
	if c == StatusDefault {
		return "Default"
	}
	if c == StatusSwitchProxy {
		return "Switch Proxy"
	}
	return http.StatusText(int(c))
}

// MarshalText implements encoding.TextMarshaler so that maps keyed by
// StatusCode encode with OpenAPI response keys.
func (c StatusCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *StatusCode) UnmarshalText(text []byte) error {
	code, err := ParseStatusCode(string(text))
	if err != nil {
		return err
	}
	*c = code
	return nil
}

// ParseStatusCode parses "default" or a decimal status code. Codes outside
// the closed set are rejected with ErrInvalidStatusCode.
func ParseStatusCode(s string) (StatusCode, error) {
	if s == defaultText {
		return StatusDefault, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatusCode, s)
	}
	code := StatusCode(n)
	if !code.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidStatusCode, n)
	}
	return code, nil
}
