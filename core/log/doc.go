// Package log provides the mLog category logging façade with console and
// systemd journal backends.
//
// Package: log
// Title: mLog Category Logging Façade
// Description: This package implements per-category loggers that route
//              leveled messages to one of two backends: a human-readable
//              console sink with optional timestamps, location lines, and
//              stack traces, or the systemd journal, which attaches its own
//              timestamp and process metadata. Enablement queries let
//              callers skip expensive argument construction when a level
//              would not be emitted, and debug logging compiles away
//              entirely without the mlogdebug build tag.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with console and journal sinks
// - 2025-02-10 v0.1.0: Added thread/queue naming hooks for location lines
//
// Features:
// - Five severities (Debug, Info, Warn, Error, Fault) with single-letter tags
// - Per-category loggers with path-derived category names
// - Console output with relative ("12.345s") or absolute timestamps
// - Location and stack trace reporting for Error and Fault in console mode
// - Journal output with category and subsystem as structured fields
// - Build-time elision of debug logging in release builds
//
// Usage:
//   import mlog "github.com/msto63/mLog/core/log"
//
//   // Shared settings, configured once at startup
//   mlog.Configure(true, true, false)
//
//   logger := mlog.New("Net/Client", nil)
//   logger.Info("connection established")
//   logger.Error("timeout", "connect()", 42)
//
//   // Guard expensive arguments with enablement queries
//   if logger.IsDebugEnabled() {
//     logger.Debug(expensiveDump())
//   }
package log
