package core

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the transport layer can map it to a
// status code without inspecting error strings.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindUnauthenticated   Kind = "unauthenticated"
	KindInvalidCredential Kind = "invalid_credential"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindInternal          Kind = "internal"
)

// Error is the result type returned by every service operation.
// Msg is safe to show to API clients; Err carries the underlying
// cause for logs only.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or KindInternal for errors that did
// not come out of a service.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func ValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Msg: msg}
}

func InvalidCredential(msg string) *Error {
	return &Error{Kind: KindInvalidCredential, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}
