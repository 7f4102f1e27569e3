package client

import (
	clienterrors "github.com/fintrackhq/fintrack/client/internal/errors"
)

// Re-export the SDK error taxonomy so callers can branch on error types
// without importing internal packages.
type (
	// NetworkError is a transport-level failure (DNS, connection refused).
	NetworkError = clienterrors.NetworkError
	// ProtocolError is a non-2xx HTTP response; Message carries the
	// human-readable text extracted from the body.
	ProtocolError = clienterrors.ProtocolError
	// PreconditionError is a failure detected locally before dispatch.
	PreconditionError = clienterrors.PreconditionError
)

// ErrUnauthenticated is returned by CurrentUser when no token is cached.
var ErrUnauthenticated = clienterrors.ErrUnauthenticated

// IsUnauthorized reports whether err is a 401 protocol error.
func IsUnauthorized(err error) bool { return clienterrors.IsUnauthorized(err) }

// IsNotFound reports whether err is a 404 protocol error.
func IsNotFound(err error) bool { return clienterrors.IsNotFound(err) }
