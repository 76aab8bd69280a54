// File: sink_journal.go
// Title: Systemd Journal Sink
// Description: Implements the journal backend. The raw message travels to
//              the journal with the severity mapped to a journal priority;
//              the category and subsystem are attached as structured fields
//              (CATEGORY, SYSLOG_IDENTIFIER) rather than interpolated into
//              the text. The journal supplies its own timestamp, process,
//              and thread metadata. When no journal socket is present the
//              sink falls back to the console.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with journald transport

package log

import (
	"github.com/coreos/go-systemd/v22/journal"
)

// journalSink delivers records to the systemd journal.
type journalSink struct {
	subsystem string
	fallback  Sink
}

// newJournalSink creates a journal sink for the given subsystem. An empty
// subsystem is a fatal misconfiguration; the process must not proceed
// without its identifier.
func newJournalSink(subsystem string, fallback Sink) *journalSink {
	if subsystem == "" {
		panic("log: journal sink requires a subsystem identifier")
	}
	return &journalSink{subsystem: subsystem, fallback: fallback}
}

// Write sends the raw message to the journal. Send errors are dropped;
// journal logging is fire-and-forget. Without a journal socket the record
// goes to the fallback sink instead.
func (s *journalSink) Write(rec *Record, formatted string) {
	if !journal.Enabled() {
		if s.fallback != nil {
			s.fallback.Write(rec, formatted)
		}
		return
	}

	_ = journal.Send(formatted, rec.Severity.JournalPriority(), s.fields(rec))
}

// fields builds the structured journal fields. The category travels here,
// never in the message text.
func (s *journalSink) fields(rec *Record) map[string]string {
	vars := map[string]string{
		"SYSLOG_IDENTIFIER": s.subsystem,
	}
	if rec.Category != "" {
		vars["CATEGORY"] = rec.Category
	}
	return vars
}

// Enabled reports whether a journal socket is present. With the fallback
// in place every severity is still deliverable.
func (s *journalSink) Enabled(Severity) bool {
	return journal.Enabled() || s.fallback != nil
}
