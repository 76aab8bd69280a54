// File: format.go
// Title: Message Formatting
// Description: Implements the timestamp, location, and message formatting
//              rules. Console output carries an optional timestamp prefix,
//              a single-letter severity tag with the category, and, for
//              errors and faults, location lines and optional stack frames.
//              Journal output is the raw message; the journal attaches its
//              own metadata. Formatting is total: missing optional context
//              degrades to empty segments, never a failure.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with console/journal split

package log

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/msto63/mLog/core/clock"
)

// timestampLayout renders absolute timestamps as hour:minute:second with
// millisecond precision.
const timestampLayout = "15:04:05.000"

// formatTimestamp renders the timestamp prefix. The result is empty when
// timestamps are disabled and otherwise ends with exactly one space so it
// concatenates directly before the severity tag.
func formatTimestamp(snap snapshot) string {
	if !snap.showTimestamps {
		return ""
	}

	elapsed := math.Abs(clock.Now())

	if snap.absoluteTimestamps {
		at := clock.Start().Add(time.Duration(elapsed * float64(time.Second)))
		return at.Format(timestampLayout) + " "
	}

	return strconv.FormatFloat(elapsed, 'f', 3, 64) + "s "
}

// formatLocation renders the two location lines for errors and faults:
//
//	" at <file>:<line>@<function>"
//	" on <thread>[:<queue>]"
//
// The queue name is appended with a leading colon only when non-empty; an
// unnamed thread leaves the name empty.
func formatLocation(rec *Record) string {
	var b strings.Builder

	b.WriteString(" at ")
	b.WriteString(rec.File)
	b.WriteString(":")
	b.WriteString(strconv.Itoa(rec.Line))
	b.WriteString("@")
	b.WriteString(rec.Function)

	b.WriteString("\n on ")
	b.WriteString(rec.Thread)
	if rec.Queue != "" {
		b.WriteString(":")
		b.WriteString(rec.Queue)
	}

	return b.String()
}

// formatMessage composes the final text for the record. Console mode
// builds the full human-readable form; journal mode passes the message
// through untouched, with the category travelling as a separate journal
// field instead.
func formatMessage(snap snapshot, rec *Record) string {
	if !snap.useConsole {
		return rec.Message
	}

	var b strings.Builder

	b.WriteString(formatTimestamp(snap))
	b.WriteString(rec.Severity.Tag())
	b.WriteString("[")
	b.WriteString(rec.Category)
	b.WriteString("] ")
	b.WriteString(rec.Message)

	if rec.HasLocation() {
		b.WriteString("\n")
		b.WriteString(formatLocation(rec))

		if snap.showStackTraces && len(rec.Stack) > 0 {
			b.WriteString("\n")
			b.WriteString(strings.Join(rec.Stack, "\n"))
		}
	}

	return b.String()
}
