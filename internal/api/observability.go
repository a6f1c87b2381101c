package api

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single notice service call.
type CallEvent struct {
	Op         string
	StatusCode int
	LatencyMs  int64
	Success    bool
	ErrorCode  string
}

// Observer receives events about service calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes service call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] api_call op=%s http_status=%d latency_ms=%d status=%s\n",
		ts, event.Op, event.StatusCode, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

func errorCode(err error) string {
	var srvErr *ServerError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrServiceUnavailable):
		return "UNAVAILABLE"
	case errors.As(err, &srvErr):
		return fmt.Sprintf("HTTP_%d", srvErr.StatusCode)
	default:
		return "UNKNOWN"
	}
}
