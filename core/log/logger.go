// File: logger.go
// Title: Category Logger Implementation
// Description: Implements the per-category Logger type. A logger owns its
//              category name and cached short file name, answers enablement
//              queries, and dispatches formatted records to the active sink.
//              Loggers are immutable after construction and independent of
//              each other; there is no registry and no deduplication.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with level-gated emits
// - 2025-02-10 v0.1.0: Error falls back to runtime caller capture

package log

import (
	"runtime"
	"strings"

	"github.com/msto63/mLog/utils/pathx"
)

// Logger emits leveled messages for one category. Multiple loggers may
// share a category string; each is independent. Safe for concurrent use.
type Logger struct {
	category  string
	shortFile string
	settings  *Settings
}

// New creates a logger for the given category. A category that looks like
// a source file path loses its directory and extension; hierarchical names
// such as "Group/Subgroup" are kept verbatim. Nil settings bind the logger
// to the process-wide default settings.
func New(category string, settings *Settings) *Logger {
	if settings == nil {
		settings = defaultSettings
	}
	return &Logger{
		category:  pathx.Category(category),
		shortFile: pathx.ShortFile(category),
		settings:  settings,
	}
}

// Category returns the derived category name
func (l *Logger) Category() string {
	return l.category
}

// IsDebugEnabled returns true if a debug emit would reach the backend.
// Always false in builds without the mlogdebug tag, regardless of backend
// state.
func (l *Logger) IsDebugEnabled() bool {
	return debugEnabled && l.enabled(SeverityDebug)
}

// IsInfoEnabled returns true if an info emit would reach the backend
func (l *Logger) IsInfoEnabled() bool {
	return l.enabled(SeverityInfo)
}

// IsWarnEnabled returns true if a warn emit would reach the backend
func (l *Logger) IsWarnEnabled() bool {
	return l.enabled(SeverityWarn)
}

// Info logs an informational message
func (l *Logger) Info(message string) {
	l.emit(SeverityInfo, message, "", 0)
}

// Warn logs a warning. On the journal backend warnings travel at the
// default priority; no dedicated warning slot exists in the mapping.
func (l *Logger) Warn(message string) {
	l.emit(SeverityWarn, message, "", 0)
}

// Error logs an error with call-site context. Empty function or zero line
// are filled from the runtime caller.
func (l *Logger) Error(message, function string, line int) {
	if function == "" || line == 0 {
		if fn, ln, ok := caller(2); ok {
			if function == "" {
				function = fn
			}
			if line == 0 {
				line = ln
			}
		}
	}
	l.emit(SeverityError, message, function, line)
}

// Fault logs a fault with call-site context captured from the runtime
func (l *Logger) Fault(message string) {
	function, line := "", 0
	if fn, ln, ok := caller(2); ok {
		function, line = fn, ln
	}
	l.emit(SeverityFault, message, function, line)
}

// enabled asks the active sink whether it would emit at the severity
func (l *Logger) enabled(severity Severity) bool {
	return l.settings.snapshot().sink.Enabled(severity)
}

// emit builds the record, formats it, and writes it to the active sink
func (l *Logger) emit(severity Severity, message, function string, line int) {
	snap := l.settings.snapshot()

	rec := NewRecord(severity, l.category, message)

	if rec.HasLocation() {
		rec.File = l.shortFile
		rec.Function = function
		rec.Line = line

		if snap.threadNamer != nil {
			rec.Thread = snap.threadNamer()
		}
		if snap.queueNamer != nil {
			rec.Queue = snap.queueNamer()
		}

		if snap.useConsole && snap.showStackTraces {
			rec.Stack = captureStack(2)
		}
	}

	snap.sink.Write(rec, formatMessage(snap, rec))
}

// caller returns the simplified function name and line of the frame skip
// levels above the caller of this function.
func caller(skip int) (function string, line int, ok bool) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0, false
	}

	function = "unknown()"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		if idx := strings.LastIndex(name, "."); idx != -1 {
			name = name[idx+1:]
		}
		function = name + "()"
	}

	return function, line, true
}
