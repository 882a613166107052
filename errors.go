package share

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	ErrDuplicateStatusCode = errors.New("duplicate status code")
	ErrInvalidStatusCode   = errors.New("invalid status code")
	ErrInvalidConfig       = errors.New("invalid config")
)

// SelectionError reports a selection that names the same status code more
// than once. It unwraps to ErrDuplicateStatusCode.
type SelectionError struct {
	Duplicates []StatusCode
}

// Error lists the duplicated status codes.
func (e *SelectionError) Error() string {
	codes := make([]string, len(e.Duplicates))
	for i, c := range e.Duplicates {
		codes[i] = c.String()
	}
	return fmt.Sprintf("invalid selection: %s: %s", ErrDuplicateStatusCode, strings.Join(codes, ", "))
}

// Unwrap returns ErrDuplicateStatusCode.
func (e *SelectionError) Unwrap() error { return ErrDuplicateStatusCode }
