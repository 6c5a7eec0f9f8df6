// Package errors provides the error type shared by aipkit packages.
//
// It augments the standard errors with a Wrap method, so that the
// sentinel errors exported by the per-package status packages can carry
// a cause without losing their identity under errors.Is.
package errors

import (
	stderr "errors"
)

var _ error = New("")

// New returns a named Error, usable as a package-level sentinel.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error is an error with an optional cause.
//
// Unlike github.com/pkg/errors, wrapping starts from an error value, not
// from text. Wrap copies the receiver, so sentinels are never mutated.
type Error struct {
	msg    string
	cause  error
	origin *Error
}

// Error message, with the cause appended when one is attached.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap the cause, if any
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Wrap returns a copy of e with err attached as its cause. The copy
// still matches the original sentinel under Is.
func (e *Error) Wrap(err error) *Error {
	origin := e.origin
	if origin == nil {
		origin = e
	}
	return &Error{msg: e.msg, cause: err, origin: origin}
}

// Is reports whether e denotes the same sentinel as target
func (e *Error) Is(target error) bool {
	return e == target || (e.origin != nil && e.origin == target)
}

// As finds the first error in err's chain that matches target
// (a shortcut to the standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to the standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
