package googleai

import (
	"context"
	"errors"
)

// Error codes raised before any request is dispatched. Transport-derived
// codes ("http_error", "timeout", "network_error", "decode_error", ...) come
// from the wire layer.
const (
	CodeMissingAPIKey   = "missing_api_key"
	CodeInvalidArgument = "invalid_argument"
)

type Error struct {
	Provider  string
	Code      string
	Status    int
	Message   string
	Retryable bool
	Cause     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Provider != "" && e.Message != "" {
		return e.Provider + ": " + e.Message
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Provider != "" {
		return e.Provider + ": error"
	}
	return "error"
}

func (e *Error) Unwrap() error { return e.Cause }

// IsMissingAPIKey reports whether no credential could be resolved from call
// options, client config, or the environment.
func IsMissingAPIKey(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeMissingAPIKey
}

// IsInvalidArgument reports caller mistakes, including supplying no
// call-time key to a client configured with RequireKeyPerCall.
func IsInvalidArgument(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeInvalidArgument
}

func IsRateLimited(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Status == 429 || e.Code == "resource_exhausted")
}

func IsAuth(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Status == 401 || e.Status == 403 || e.Code == "unauthenticated" || e.Code == "permission_denied")
}

func IsTimeout(err error) bool {
	var e *Error
	if errors.As(err, &e) && e.Code == "timeout" {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func IsCanceled(err error) bool {
	var e *Error
	if errors.As(err, &e) && e.Code == "canceled" {
		return true
	}
	return errors.Is(err, context.Canceled)
}
