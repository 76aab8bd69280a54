// Package error provides the mLog error type used by configuration
// loading.
//
// Package: error
// Title: mLog Error Handling
// Description: This package implements a small structured error type
//              carrying an operation name and a classification code. The
//              logging core itself is total and reports no errors; the only
//              failure surface is configuration loading, which wraps its
//              causes in this type.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with configuration codes
//
// Usage:
//   import mlogerror "github.com/msto63/mLog/core/error"
//
//   return mlogerror.New(mlogerror.CodeInvalidConfig, "config.Load", err)
package error
