// Package config loads mLog settings from TOML or YAML files with
// environment variable overrides.
//
// Package: config
// Title: mLog Configuration Loading
// Description: This package reads the logging options (backend selection,
//              timestamp and stack trace flags, journal subsystem) from a
//              configuration file, auto-detecting TOML or YAML from the
//              file extension, applies MLOG_* environment overrides, and
//              applies the result to a log.Settings instance.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with TOML/YAML support
//
// File schema (TOML):
//
//	[logging]
//	console = true
//	timestamps = true
//	absolute_timestamps = false
//	stack_traces = false
//	subsystem = "com.example.app"
//
// Environment overrides: MLOG_CONSOLE, MLOG_TIMESTAMPS,
// MLOG_ABSOLUTE_TIMESTAMPS, MLOG_STACK_TRACES, MLOG_SUBSYSTEM.
//
// Usage:
//   opts, err := config.Load("configs/logging.toml")
//   if err != nil { ... }
//   opts.Apply(log.Default())
package config
