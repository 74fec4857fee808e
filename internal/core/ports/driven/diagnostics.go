package driven

import "context"

// DiagnosticsReporter receives failures the search engine recovered from.
// Implementations must not panic and must not block for long.
type DiagnosticsReporter interface {
	// Report records that the named source failed with err.
	Report(ctx context.Context, source string, err error)
}
