package oai

import (
	"fmt"
)

// ErrorKind classifies every failure this library can produce.
type ErrorKind int

const (
	// ErrTransport covers network and protocol failures from the HTTP layer:
	// unreachable hosts, timeouts, connection resets, unreadable bodies.
	ErrTransport ErrorKind = iota
	// ErrEncoding covers serialization of outgoing bodies and response bodies
	// that are not valid JSON.
	ErrEncoding
	// ErrLocalIO covers failures reading local files destined for multipart
	// uploads. These surface before any network call is made.
	ErrLocalIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTransport:
		return "Transport"
	case ErrEncoding:
		return "Encoding"
	case ErrLocalIO:
		return "LocalIO"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying cause with its failure category. All errors
// returned by this library are of this type; match the category with
// errors.As and the Kind field.
type Error struct {
	Kind  ErrorKind
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s Error: %v", e.Kind, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// wrapErr tags cause with kind. A cause that is already an *Error passes
// through untouched so categories assigned at the failure site are preserved.
func wrapErr(kind ErrorKind, cause error) error {
	if cause == nil {
		return nil
	}
	if tagged, ok := cause.(*Error); ok {
		return tagged
	}
	return &Error{Kind: kind, cause: cause}
}
