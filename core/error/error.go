// File: error.go
// Title: Structured Error Implementation
// Description: Implements the Error type with an operation name, a
//              classification code, and an optional wrapped cause, plus
//              the code definitions used by configuration loading.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with configuration codes

package error

// Code classifies an error for callers that branch on failure kind
type Code string

const (
	// CodeInvalidConfig indicates a configuration file that could not be
	// read or parsed
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// CodeUnsupportedFormat indicates a configuration file format that is
	// neither TOML nor YAML
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"

	// CodeInvalidValue indicates a configuration or environment value
	// that could not be interpreted
	CodeInvalidValue Code = "INVALID_VALUE"
)

// Error is a structured error with an operation name and a code
type Error struct {
	code  Code
	op    string
	cause error
}

// New creates an error with the given code, operation, and optional cause
func New(code Code, op string, cause error) *Error {
	return &Error{code: code, op: op, cause: cause}
}

// Code returns the classification code
func (e *Error) Code() Code {
	return e.code
}

// Op returns the operation that failed
func (e *Error) Op() string {
	return e.op
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.op + ": " + string(e.code)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause for errors.Is/errors.As chains
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same code
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.code == e.code
}
