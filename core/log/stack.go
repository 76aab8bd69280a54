// File: stack.go
// Title: Stack Frame Capture
// Description: Captures the calling goroutine's stack as a bounded list of
//              symbolic frame strings for error and fault reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with bounded frame capture

package log

import (
	"runtime"
	"strconv"
	"strings"
)

// maxStackFrames bounds the capture depth per emit call
const maxStackFrames = 64

// captureStack returns the symbolic stack of the calling goroutine, one
// string per frame, skipping the given number of frames above the capture
// itself. Returns nil when no frames are available.
func captureStack(skip int) []string {
	pcs := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]string, 0, n)

	for {
		frame, more := frames.Next()

		var b strings.Builder
		b.WriteString(frame.Function)
		b.WriteString(" (")
		b.WriteString(frame.File)
		b.WriteString(":")
		b.WriteString(strconv.Itoa(frame.Line))
		b.WriteString(")")
		stack = append(stack, b.String())

		if !more {
			break
		}
	}

	return stack
}
