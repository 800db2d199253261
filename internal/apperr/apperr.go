// Package apperr defines the business error taxonomy shared by services
// and mapped to HTTP statuses at the transport layer.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// Invalid covers rejected input and broken business rules.
	Invalid Kind = iota
	// Unauthorized means missing or bad credentials.
	Unauthorized
	// Forbidden means the caller's role does not allow the operation.
	Forbidden
	// NotFound means the referenced resource does not exist.
	NotFound
	// Conflict means a uniqueness rule was violated.
	Conflict
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Invalidf(format string, args ...interface{}) *Error {
	return New(Invalid, format, args...)
}

func Unauthorizedf(format string, args ...interface{}) *Error {
	return New(Unauthorized, format, args...)
}

func Forbiddenf(format string, args ...interface{}) *Error {
	return New(Forbidden, format, args...)
}

func NotFoundf(format string, args ...interface{}) *Error {
	return New(NotFound, format, args...)
}

func Conflictf(format string, args ...interface{}) *Error {
	return New(Conflict, format, args...)
}

// KindOf reports the kind of err if it is an apperr.Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
