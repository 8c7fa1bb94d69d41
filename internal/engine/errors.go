// internal/engine/errors.go
// Structured error kinds for the tournament core, per the error handling design.

package engine

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a core error so ingress layers can map it to a
// transport-specific status without parsing message text.
type ErrorKind int

const (
	// KindInternal marks an invariant violation. These represent bugs.
	KindInternal ErrorKind = iota
	KindNotFound
	KindInvalidArgument
	KindFailedPrecondition
	KindAlreadyExists
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindFailedPrecondition:
		return "FailedPrecondition"
	case KindAlreadyExists:
		return "AlreadyExists"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every fallible core operation.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newErr(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// NewError builds an *Error of the given kind for callers outside the
// package (the hub layer, mainly) that need to surface a NotFound/
// FailedPrecondition in the same shape the engine itself returns.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return newErr(kind, format, args...)
}

func notFoundf(format string, args ...interface{}) *Error {
	return newErr(KindNotFound, format, args...)
}

func invalidArgf(format string, args ...interface{}) *Error {
	return newErr(KindInvalidArgument, format, args...)
}

func failedPreconditionf(format string, args ...interface{}) *Error {
	return newErr(KindFailedPrecondition, format, args...)
}

func alreadyExistsf(format string, args ...interface{}) *Error {
	return newErr(KindAlreadyExists, format, args...)
}

func internalf(format string, args ...interface{}) *Error {
	return newErr(KindInternal, format, args...)
}

// KindOf extracts the ErrorKind from err, if it is (or wraps) an *Error.
// Unrecognized errors are treated as Internal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindInternal
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
