// Package pathx provides source-path helpers for deriving log categories
// and short file names.
//
// Package: pathx
// Title: mLog Source Path Utilities
// Description: This package implements the path-stripping rules used by the
//              logging core to turn source file paths into log categories and
//              short file names. Hierarchical category names of the form
//              "Group/Subgroup" are preserved as-is, while real file paths
//              lose their directory and extension.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with category derivation
//
// Usage:
//   pathx.Category("/a/b/Foo.go")   // "Foo"
//   pathx.Category("Net/Client")    // "Net/Client" (literal, kept as-is)
//   pathx.ShortFile("/a/b/Foo.go")  // "Foo"
package pathx
