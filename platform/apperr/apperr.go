// Package apperr provides standardized error types for the application.
// Library code returns these typed errors, and the command-line layer
// maps them to process exit codes.
package apperr

import (
	"errors"
	"fmt"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindInvalidInput indicates a value of the wrong type or shape was supplied.
	KindInvalidInput
	// KindNotImplemented indicates the requested behavior is not provided.
	KindNotImplemented
	// KindInvalidNumber indicates an operation needs a number that passed validation
	// and is assigned in the numbering plan.
	KindInvalidNumber
)

// String returns a short identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotImplemented:
		return "not_implemented"
	case KindInvalidNumber:
		return "invalid_number"
	default:
		return "unknown"
	}
}

// Error is a domain error with a typed Kind.
type Error struct {
	Kind    Kind
	Message string
	Op      string // Operation that failed (optional)
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for this error kind.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindInvalidInput:
		return 2
	case KindNotImplemented:
		return 3
	case KindInvalidNumber:
		return 4
	default:
		return 1
	}
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp sets the operation on the error and returns it.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// InvalidInput creates an invalid input error.
func InvalidInput(message string) *Error {
	return New(KindInvalidInput, message)
}

// NotImplemented creates a not implemented error.
func NotImplemented(message string) *Error {
	return New(KindNotImplemented, message)
}

// InvalidNumber creates an invalid number error.
func InvalidNumber(message string) *Error {
	return New(KindInvalidNumber, message)
}

// GetKind extracts the error kind from an error chain.
// Returns KindUnknown if no *Error is found.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err carries an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// ExitCode returns the exit status for err, 0 for nil and 1 for errors
// without a kind.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return 1
}
