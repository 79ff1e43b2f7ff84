package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidParams    = errors.New("invalid params")
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthenticated  = errors.New("authentication required")
)

// New wraps a kind with a caller-facing message. The message is what
// reaches the response body; the kind only drives status mapping.
func New(kind error, message string) error {
	return fmt.Errorf("%s: %w", message, kind)
}

func Newf(kind error, format string, args ...any) error {
	return New(kind, fmt.Sprintf(format, args...))
}

var kinds = []error{ErrNotFound, ErrInvalidParams, ErrValidation, ErrPermissionDenied, ErrUnauthenticated}

// Message strips the kind suffix appended by New so the wire message
// matches what the caller supplied.
func Message(err error) string {
	msg := err.Error()
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return strings.TrimSuffix(msg, ": "+kind.Error())
		}
	}
	return msg
}

// MapErrorToStatus maps error kinds to HTTP status codes. Every
// application-level failure surfaces as 400; only a missing or invalid
// token yields 401, and anything unclassified is a 500.
func MapErrorToStatus(err error) int {
	if errors.Is(err, ErrUnauthenticated) {
		return http.StatusUnauthorized
	}
	for _, kind := range []error{ErrNotFound, ErrInvalidParams, ErrValidation, ErrPermissionDenied} {
		if errors.Is(err, kind) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
