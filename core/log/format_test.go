// File: format_test.go
// Title: Formatting Tests
// Description: Tests for timestamp, location, and message formatting,
//              including the console/journal split and the totality
//              property that formatting never loses the message.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with scenario tests

package log

import (
	"regexp"
	"strings"
	"testing"
)

func TestFormatTimestampDisabled(t *testing.T) {
	snap := snapshot{showTimestamps: false}
	if got := formatTimestamp(snap); got != "" {
		t.Errorf("formatTimestamp() = %q, want empty", got)
	}
}

func TestFormatTimestampRelative(t *testing.T) {
	snap := snapshot{showTimestamps: true}
	got := formatTimestamp(snap)

	pattern := regexp.MustCompile(`^\d+\.\d{3}s $`)
	if !pattern.MatchString(got) {
		t.Errorf("formatTimestamp() = %q, want match for %v", got, pattern)
	}
}

func TestFormatTimestampAbsolute(t *testing.T) {
	snap := snapshot{showTimestamps: true, absoluteTimestamps: true}
	got := formatTimestamp(snap)

	pattern := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3} $`)
	if !pattern.MatchString(got) {
		t.Errorf("formatTimestamp() = %q, want match for %v", got, pattern)
	}
}

func TestFormatTimestampTrailingSpace(t *testing.T) {
	for _, absolute := range []bool{false, true} {
		snap := snapshot{showTimestamps: true, absoluteTimestamps: absolute}
		got := formatTimestamp(snap)
		if !strings.HasSuffix(got, " ") || strings.HasSuffix(got, "  ") {
			t.Errorf("formatTimestamp() = %q, want exactly one trailing space", got)
		}
	}
}

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		name string
		rec  *Record
		want string
	}{
		{
			name: "thread and queue",
			rec:  &Record{File: "Net", Line: 42, Function: "connect()", Thread: "worker-1", Queue: "ingest"},
			want: " at Net:42@connect()\n on worker-1:ingest",
		},
		{
			name: "thread only",
			rec:  &Record{File: "Net", Line: 42, Function: "connect()", Thread: "worker-1"},
			want: " at Net:42@connect()\n on worker-1",
		},
		{
			name: "unnamed thread",
			rec:  &Record{File: "Net", Line: 42, Function: "connect()"},
			want: " at Net:42@connect()\n on ",
		},
		{
			name: "queue without thread",
			rec:  &Record{File: "Db", Line: 7, Function: "open()", Queue: "io"},
			want: " at Db:7@open()\n on :io",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLocation(tt.rec); got != tt.want {
				t.Errorf("formatLocation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMessageConsoleError(t *testing.T) {
	snap := snapshot{useConsole: true}
	rec := &Record{
		Severity: SeverityError,
		Category: "Net",
		Message:  "timeout",
		File:     "Net",
		Line:     42,
		Function: "connect()",
	}

	got := formatMessage(snap, rec)
	lines := strings.Split(got, "\n")

	if len(lines) != 3 {
		t.Fatalf("formatMessage() produced %d lines, want 3:\n%s", len(lines), got)
	}
	if lines[0] != "E[Net] timeout" {
		t.Errorf("line 1 = %q, want %q", lines[0], "E[Net] timeout")
	}
	if lines[1] != " at Net:42@connect()" {
		t.Errorf("line 2 = %q, want %q", lines[1], " at Net:42@connect()")
	}
	if !strings.HasPrefix(lines[2], " on ") {
		t.Errorf("line 3 = %q, want prefix %q", lines[2], " on ")
	}
}

func TestFormatMessageConsoleInfo(t *testing.T) {
	snap := snapshot{useConsole: true}
	rec := NewRecord(SeverityInfo, "Net", "connection established")

	got := formatMessage(snap, rec)
	want := "I[Net] connection established"
	if got != want {
		t.Errorf("formatMessage() = %q, want %q", got, want)
	}
}

func TestFormatMessageConsoleWithTimestamp(t *testing.T) {
	snap := snapshot{useConsole: true, showTimestamps: true}
	rec := NewRecord(SeverityWarn, "Db", "slow query")

	got := formatMessage(snap, rec)
	pattern := regexp.MustCompile(`^\d+\.\d{3}s W\[Db\] slow query$`)
	if !pattern.MatchString(got) {
		t.Errorf("formatMessage() = %q, want match for %v", got, pattern)
	}
}

func TestFormatMessageConsoleStackTraces(t *testing.T) {
	snap := snapshot{useConsole: true, showStackTraces: true}
	rec := &Record{
		Severity: SeverityFault,
		Category: "Net",
		Message:  "broken pipe",
		File:     "Net",
		Line:     7,
		Function: "write()",
		Stack:    []string{"main.run (run.go:10)", "main.main (main.go:5)"},
	}

	got := formatMessage(snap, rec)
	if !strings.HasSuffix(got, "main.run (run.go:10)\nmain.main (main.go:5)") {
		t.Errorf("formatMessage() missing stack frames:\n%s", got)
	}
}

func TestFormatMessageStackTracesIgnoredForInfo(t *testing.T) {
	snap := snapshot{useConsole: true, showStackTraces: true}
	rec := NewRecord(SeverityInfo, "Net", "up")
	rec.Stack = []string{"main.main (main.go:5)"}

	got := formatMessage(snap, rec)
	if strings.Contains(got, "main.main") {
		t.Errorf("formatMessage() attached stack to info message:\n%s", got)
	}
}

func TestFormatMessageJournalRaw(t *testing.T) {
	snap := snapshot{useConsole: false}
	rec := &Record{
		Severity: SeverityError,
		Category: "Net",
		Message:  "timeout",
		File:     "Net",
		Line:     42,
		Function: "connect()",
	}

	if got := formatMessage(snap, rec); got != "timeout" {
		t.Errorf("formatMessage() = %q, want %q", got, "timeout")
	}
}

// Formatting is total: for every severity and configuration the result
// contains the message and is at least as long.
func TestFormatMessageTotality(t *testing.T) {
	snaps := []snapshot{
		{useConsole: true},
		{useConsole: true, showTimestamps: true},
		{useConsole: true, showTimestamps: true, absoluteTimestamps: true},
		{useConsole: true, showStackTraces: true},
		{useConsole: false},
	}
	messages := []string{"", "timeout", "multi\nline", "unicode ✓"}

	for _, snap := range snaps {
		for _, severity := range AllSeverities() {
			for _, message := range messages {
				rec := NewRecord(severity, "Cat", message)
				got := formatMessage(snap, rec)
				if len(got) < len(message) {
					t.Errorf("formatMessage(%v, %q) = %q, shorter than message",
						severity, message, got)
				}
				if !strings.Contains(got, message) {
					t.Errorf("formatMessage(%v, %q) = %q, message lost",
						severity, message, got)
				}
			}
		}
	}
}
