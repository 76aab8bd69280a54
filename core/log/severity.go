// File: severity.go
// Title: Log Severity Definitions
// Description: Defines the ordered severities used for gating and tagging
//              log messages, their console tags, and their mapping onto
//              systemd journal priorities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with five severities

package log

import (
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// Severity represents the importance of a log message
type Severity int

const (
	// SeverityDebug is detailed diagnostic output, compiled away in
	// release builds
	SeverityDebug Severity = iota

	// SeverityInfo represents general informational messages
	SeverityInfo

	// SeverityWarn indicates unexpected conditions that do not prevent
	// operation
	SeverityWarn

	// SeverityError represents failures that need attention; location
	// context is attached in console mode
	SeverityError

	// SeverityFault represents serious faults; treated like errors for
	// formatting, highest journal priority
	SeverityFault
)

// PriorityDefault is the journal priority used for messages without a
// dedicated slot in the mapping. Warnings travel at this priority; the
// mapping reserves no dedicated warning level.
const PriorityDefault = journal.PriNotice

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	case SeverityFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Tag returns the single-letter console tag for the severity
func (s Severity) Tag() string {
	switch s {
	case SeverityDebug:
		return "D"
	case SeverityInfo:
		return "I"
	case SeverityWarn:
		return "W"
	case SeverityError:
		return "E"
	case SeverityFault:
		return "F"
	default:
		return "?"
	}
}

// JournalPriority maps the severity onto a systemd journal priority
func (s Severity) JournalPriority() journal.Priority {
	switch s {
	case SeverityDebug:
		return journal.PriDebug
	case SeverityInfo:
		return journal.PriInfo
	case SeverityWarn:
		return PriorityDefault
	case SeverityError:
		return journal.PriErr
	case SeverityFault:
		return journal.PriCrit
	default:
		return PriorityDefault
	}
}

// ParseSeverity parses a string into a severity
func ParseSeverity(severity string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "debug", "d":
		return SeverityDebug, nil
	case "info", "i":
		return SeverityInfo, nil
	case "warn", "w", "warning":
		return SeverityWarn, nil
	case "error", "e", "err":
		return SeverityError, nil
	case "fault", "f":
		return SeverityFault, nil
	default:
		return SeverityInfo, &ParseError{
			Input: severity,
			Type:  "severity",
		}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllSeverities returns all severities in ascending order
func AllSeverities() []Severity {
	return []Severity{
		SeverityDebug,
		SeverityInfo,
		SeverityWarn,
		SeverityError,
		SeverityFault,
	}
}
