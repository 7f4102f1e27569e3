// Package errors defines the client SDK's error taxonomy.
// Callers branch on the error type instead of matching message strings.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError wraps a transport-level failure (DNS, connection refused,
// abort). The underlying error is preserved for errors.Is/As chains.
type NetworkError struct {
	Op  string // "POST /auth/login"
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError is a non-2xx HTTP response normalized into a single error
// carrying the best-effort message extracted from the response body.
type ProtocolError struct {
	Status  int
	Message string
}

// Error returns the extracted message; callers are expected to present it
// directly.
func (e *ProtocolError) Error() string { return e.Message }

// PreconditionError is a failure detected locally before any request is
// issued.
type PreconditionError struct {
	Reason string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string { return e.Reason }

// ErrUnauthenticated is returned by operations that require a cached
// session token when none is present. No request is issued.
var ErrUnauthenticated = &PreconditionError{Reason: "unauthenticated: no session token cached"}

// IsUnauthorized reports whether err is a 401 protocol error.
func IsUnauthorized(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 protocol error.
func IsNotFound(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Status == http.StatusNotFound
}
