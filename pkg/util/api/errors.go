package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned when the management API answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsUnrecoverableError checks if an error is unrecoverable and should not be retried.
// Returns true for authentication, authorization and request-shape errors.
func IsUnrecoverableError(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}

	switch se.StatusCode {
	case http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusBadRequest,
		http.StatusMethodNotAllowed,
		http.StatusNotAcceptable:
		return true
	default:
		return false
	}
}

// IsUnauthorized checks if the API rejected the session credentials.
func IsUnauthorized(err error) bool {
	var se *StatusError

	return errors.As(err, &se) && se.StatusCode == http.StatusUnauthorized
}
