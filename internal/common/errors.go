// Package common defines shared constants and sentinel errors used across
// client and server layers of the todo application. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorForbidden signals an ownership violation: the referenced entity
	// exists (or may exist) but does not belong to the acting identity.
	// Distinct from ErrorNotFound by contract.
	ErrorForbidden = errors.New("access denied")

	// ErrorValidation marks field-level validation failures. Wrapped by
	// ValidationError which carries the per-field messages.
	ErrorValidation = errors.New("validation error")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	ErrorEmailAlreadyExists = errors.New("email already registered")

	// ErrorRateLimited is returned when the server rejects a call with
	// a too-many-requests status. Surfaced as an ordinary failure.
	ErrorRateLimited = errors.New("too many requests")

	// ErrorConnection marks transport failures reaching the server, as
	// opposed to an HTTP error the server actually sent.
	ErrorConnection = errors.New("connection error")
)
