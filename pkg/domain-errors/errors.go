// Package domainerrors provides code-tagged errors for the service layer.
// Handlers map codes to HTTP statuses; services attach codes without
// knowing anything about transport.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for transport mapping and caller branching.
type Code string

const (
	// CodeBadRequest marks malformed or unusable caller input.
	CodeBadRequest Code = "bad_request"
	// CodeValidation marks a structural validation failure. The wrapped
	// error carries the full ordered field error list.
	CodeValidation Code = "validation_failed"
	// CodeNotFound marks a lookup miss for a caller-supplied id.
	CodeNotFound Code = "not_found"
	// CodeAlreadySubmitted marks a mutation attempt on a completed record.
	CodeAlreadySubmitted Code = "already_submitted"
	// CodeInternal marks failures the caller cannot act on. Messages for
	// internal errors must never leak storage detail.
	CodeInternal Code = "internal_error"
)

// Error is a code-tagged error value. It optionally wraps a cause so
// errors.Is / errors.As keep working through the service boundary.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates an error with a code and a caller-visible message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the code.
func HasCode(err error, code Code) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.Code == code {
			return true
		}
		err = e.cause
		if err == nil {
			return false
		}
	}
	return false
}

// CodeOf returns the outermost code on err, or CodeInternal when err is
// not a domain error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf returns the caller-visible message of err, or a generic
// message when err is not a domain error.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}
