package hyperliquid

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable indicates the info endpoint could not be reached
	// (network failure or timeout).
	ErrUnreachable = errors.New("hyperliquid: upstream unreachable")
	// ErrMalformedResponse indicates the upstream payload could not be
	// decoded into the expected shape.
	ErrMalformedResponse = errors.New("hyperliquid: malformed response")
	// ErrInvalidAddress rejects a malformed account address before any
	// network I/O happens.
	ErrInvalidAddress = errors.New("hyperliquid: invalid user address")
)

// StatusError reports a non-success HTTP status from the info endpoint.
// The body is retained for diagnostics.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hyperliquid: http status %d: %s", e.Status, e.Body)
}

// IsUpstreamStatus reports whether err wraps a StatusError.
func IsUpstreamStatus(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr)
}
