package http

import "time"

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string)

	// LogResponseSuccess is called after a 2xx response was read and decoded
	LogResponseSuccess(method, url string, httpStatus int, latency time.Duration)

	// LogResponseError is called for transport failures, non-2xx statuses and decode failures.
	// httpStatus is 0 when no response was received.
	LogResponseError(method, url string, httpStatus int, latency time.Duration, err error)
}

type nopLogger struct{}

func (nopLogger) LogRequest(string, string) {}
func (nopLogger) LogResponseSuccess(string, string, int, time.Duration) {}
func (nopLogger) LogResponseError(string, string, int, time.Duration, error) {}
