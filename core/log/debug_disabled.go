// File: debug_disabled.go
// Title: Debug Emit (Release Builds)
// Description: Release-build half of the debug gate. Without the mlogdebug
//              tag the debug emit is an empty method the compiler can
//              elide, and enablement reports false regardless of backend
//              state.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation of the build-time gate

//go:build !mlogdebug

package log

// debugEnabled reports at compile time that debug logging is compiled out
const debugEnabled = false

// Debug is a no-op in release builds. Callers still pay for evaluating
// the message argument, which is why IsDebugEnabled guards belong around
// expensive constructions.
func (l *Logger) Debug(message string) {}
