// Package apperr defines the error kinds every core operation reports.
// Handlers map each kind to exactly one HTTP status; services never leak
// raw storage errors to the caller.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthenticationRequired
	KindAuthorizationDenied
	KindNotFound
	KindConflict
	KindStorage
)

type Error struct {
	Kind  Kind
	Msg   string
	Field string // set for validation errors when a specific field is at fault
	Err   error  // wrapped cause, never shown to clients
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Msg: msg}
}

func AuthenticationRequired(msg string) *Error {
	return &Error{Kind: KindAuthenticationRequired, Msg: msg}
}

func AuthorizationDenied(msg string) *Error {
	return &Error{Kind: KindAuthorizationDenied, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// Storage wraps a backing-store fault. The client-facing message is generic;
// the cause stays attached for server-side logging only.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Msg: "storage failure", Err: err}
}

// KindOf extracts the kind from any error in the chain. Unrecognized errors
// report KindUnknown and should be treated as storage-level faults.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
