package share

import "log/slog"

// Option configures a Shared.
type Option func(*Shared)

// WithLogger sets the logger used for debug output, such as selected status
// codes that have no shared entry. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shared) {
		if logger != nil {
			s.logger = logger
		}
	}
}
