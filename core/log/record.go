// File: record.go
// Title: Log Record Structure
// Description: Defines the ephemeral record built for each emit call. A
//              record carries the severity, category, message, optional
//              call-site context, and optional stack frames; it is never
//              mutated after formatting and discarded after the sink write.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with call-site context

package log

// Record represents a single log message with all its context
type Record struct {
	// Core information
	Severity Severity
	Category string
	Message  string

	// Call-site context, set for Error and Fault only
	File     string
	Line     int
	Function string

	// Execution context for the location line; empty when the host
	// application has not named its workers
	Thread string
	Queue  string

	// Captured stack frames as opaque strings, one per frame
	Stack []string
}

// NewRecord creates a record for the given severity, category, and message
func NewRecord(severity Severity, category, message string) *Record {
	return &Record{
		Severity: severity,
		Category: category,
		Message:  message,
	}
}

// HasLocation returns true if the record carries call-site context
func (r *Record) HasLocation() bool {
	return r.Severity >= SeverityError
}
