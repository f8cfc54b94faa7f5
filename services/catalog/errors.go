package catalog

import "fmt"

// The fetch error taxonomy. Every error is terminal for the request that
// produced it: there is no retry and callers surface the message as-is.

// NotFoundError indicates the requested show does not exist upstream (404).
type NotFoundError struct{}

func (e *NotFoundError) Error() string { return "Show not found." }

// HTTPError indicates a non-2xx response other than a detail 404. The
// message is the display string shown to the user.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string { return e.Message }

// TransportError indicates a network failure or an unparseable body.
type TransportError struct {
	Message string
}

func (e *TransportError) Error() string { return e.Message }

func transportErrf(format string, args ...any) *TransportError {
	return &TransportError{Message: fmt.Sprintf(format, args...)}
}
