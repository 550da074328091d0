package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx backend response. Failures are terminal for the call:
// no retry, no backoff, the caller decides what to show the user.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// IsUnauthorized reports whether the backend rejected the token or the
// credentials. The caller should drop the session and ask to log in again.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
	}
	return false
}

// Detail returns the backend-provided detail text, if any
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
