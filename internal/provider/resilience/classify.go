package resilience

import (
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"
)

// Failure is the uniform result of classifying a failed upstream call.
// Callers branch on StatusCode the same way they branch on real upstream
// status codes: 408 for timeouts, 503 for connection-level failures, 500
// for any other transport error.
type Failure struct {
	StatusCode int
	Message    string
}

func (f *Failure) Error() string {
	return f.Message
}

// Classify converts a transport-level error into a synthetic status code and
// message. It returns nil for a nil error and never panics, so every failed
// call through this layer yields a status callers can branch on.
func Classify(err error) *Failure {
	switch {
	case err == nil:
		return nil
	case isTimeout(err):
		return &Failure{StatusCode: http.StatusRequestTimeout, Message: "Request timeout"}
	case isConnectionError(err):
		return &Failure{StatusCode: http.StatusServiceUnavailable, Message: "Network connection error"}
	default:
		return &Failure{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	// An open breaker means the upstream is currently unreachable for us.
	if errors.Is(err, ErrCircuitOpen) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
