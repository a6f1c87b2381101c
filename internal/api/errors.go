package api

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceUnavailable indicates the notice service is unreachable.
	ErrServiceUnavailable = errors.New("notice service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("notice service request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("retry attempts exhausted")
)

// ServerError is a non-2xx response from the notice service. Message
// carries the service's message payload when one was present.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("notice service returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("notice service returned status %d", e.StatusCode)
}

// UserMessage converts a client error into the text shown to the
// operator: the server-provided message when present, a retryable
// explanation for network failures, a generic fallback otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var srvErr *ServerError
	if errors.As(err, &srvErr) && srvErr.Message != "" {
		return srvErr.Message
	}

	switch {
	case errors.Is(err, ErrTimeout):
		return "Request timed out: the notice service did not respond in time"
	case errors.Is(err, ErrServiceUnavailable):
		return "Cannot reach the notice service"
	}

	return "Failed to reach the notice service"
}
