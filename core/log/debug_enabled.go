// File: debug_enabled.go
// Title: Debug Emit (Debug Builds)
// Description: Debug-build half of the debug gate. Built only with the
//              mlogdebug tag; debug emits behave like any other severity.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation of the build-time gate

//go:build mlogdebug

package log

// debugEnabled reports at compile time that debug logging is built in
const debugEnabled = true

// Debug logs a debug message. Only present in mlogdebug builds; release
// builds compile this method to an empty body.
func (l *Logger) Debug(message string) {
	l.emit(SeverityDebug, message, "", 0)
}
