// Package ratingerrors defines the typed error-kind taxonomy used across
// the scoring pipeline and its HTTP adapter, mapped 1:1 to HTTP status
// codes so callers can branch on kind instead of matching error strings.
package ratingerrors

import (
	"errors"
	"fmt"
)

// Kind is a stable error-kind identifier.
type Kind string

const (
	InvalidInput      Kind = "INVALID_INPUT"
	NotFound          Kind = "NOT_FOUND"
	ConflictingState  Kind = "CONFLICTING_STATE"
	MLTimeout         Kind = "ML_TIMEOUT"
	MLUnavailable     Kind = "ML_UNAVAILABLE"
	MLProtocolError   Kind = "ML_PROTOCOL_ERROR"
	RatingFailure     Kind = "RATING_FAILURE"
)

// HTTPStatus maps a kind to its equivalent HTTP status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case InvalidInput:
		return 422
	case NotFound:
		return 404
	case ConflictingState:
		return 409
	case MLTimeout, MLUnavailable, RatingFailure:
		return 503
	case MLProtocolError:
		return 502
	default:
		return 500
	}
}

// Retryable reports whether errors of this kind are retried by
// mlclient.WithRetry. Domain errors are never retried; transport-level ML
// failures are.
func (k Kind) Retryable() bool {
	switch k {
	case MLTimeout, MLUnavailable:
		return true
	default:
		return false
	}
}

// Error is a kind-tagged error carrying an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds a kind-tagged error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds a kind-tagged error wrapping cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// As reports whether err is (or wraps) a *Error and, if so, returns it.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
