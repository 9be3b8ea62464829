package graph

import "errors"

var (
	// ErrFetchFailed is the single failure every Get error wraps.
	ErrFetchFailed = errors.New("graph: fetch failed")

	// ErrTransport marks timeouts and connection failures.
	ErrTransport = errors.New("transport error")

	// ErrProtocol marks non-2xx answers and malformed bodies.
	ErrProtocol = errors.New("protocol error")

	ErrMissingToken = errors.New("missing bearer token")
)

// FetchError keeps the cause of a failed fetch for logging. Callers that only
// care about success can test for ErrFetchFailed.
type FetchError struct {
	Endpoint   string
	Kind       error
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	msg := ErrFetchFailed.Error() + " (" + e.Endpoint + "): " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed || target == e.Kind
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
