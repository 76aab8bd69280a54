// File: error_test.go
// Title: Error Type Tests
// Description: Tests for error formatting, code classification, and
//              unwrap/is chain behavior.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with chain tests

package error

import (
	"errors"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with cause",
			err:  New(CodeInvalidConfig, "config.Load", errors.New("no such file")),
			want: "config.Load: INVALID_CONFIG: no such file",
		},
		{
			name: "without cause",
			err:  New(CodeUnsupportedFormat, "config.Load", nil),
			want: "config.Load: UNSUPPORTED_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("parse failure")
	err := New(CodeInvalidConfig, "config.Load", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}
}

func TestErrorIsByCode(t *testing.T) {
	err := New(CodeInvalidValue, "config.applyEnv", nil)

	if !errors.Is(err, New(CodeInvalidValue, "", nil)) {
		t.Error("errors.Is() should match errors with the same code")
	}
	if errors.Is(err, New(CodeInvalidConfig, "", nil)) {
		t.Error("errors.Is() should not match errors with a different code")
	}
}

func TestErrorAs(t *testing.T) {
	var structured *Error
	err := New(CodeUnsupportedFormat, "config.Load", nil)

	if !errors.As(err, &structured) {
		t.Fatal("errors.As() should extract *Error")
	}
	if structured.Code() != CodeUnsupportedFormat {
		t.Errorf("Code() = %v, want %v", structured.Code(), CodeUnsupportedFormat)
	}
	if structured.Op() != "config.Load" {
		t.Errorf("Op() = %v, want config.Load", structured.Op())
	}
}
