// File: sink.go
// Title: Sink Interface and Console Sink
// Description: Defines the Sink interface implemented by the two backends
//              and the console implementation writing newline-terminated
//              UTF-8 text to an io.Writer. Writes are fire-and-forget.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with console sink

package log

import (
	"io"
	"sync"
)

// Sink is the output transport that receives formatted log text. Writes
// have no failure path visible to callers.
type Sink interface {
	// Write delivers one formatted record to the transport.
	Write(rec *Record, formatted string)

	// Enabled reports whether the transport would emit at the severity.
	Enabled(severity Severity) bool
}

// consoleSink writes newline-terminated text to a writer, serialized so
// concurrent emits do not interleave within a line.
type consoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

func newConsoleSink(w io.Writer) *consoleSink {
	return &consoleSink{w: w}
}

// Write appends a newline and writes the text. Write errors are dropped;
// console logging is fire-and-forget.
func (s *consoleSink) Write(_ *Record, formatted string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = io.WriteString(s.w, formatted+"\n")
}

// Enabled reports true for every severity; the console never filters.
func (s *consoleSink) Enabled(Severity) bool {
	return true
}
