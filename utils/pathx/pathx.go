// File: pathx.go
// Title: Category and Short File Name Derivation
// Description: Implements the path-stripping rules shared by the logging
//              core: deriving a category from a source path or literal name
//              and deriving the short file name used in location lines.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with path-stripping rules

package pathx

import (
	"path"
	"strings"
)

// Category derives a log category from a source path or literal name.
//
// If the last path element carries an extension, the input is treated as a
// source file path: the directory and the extension are stripped and only
// the bare file name remains. Otherwise the input is used verbatim, which
// keeps hierarchical names such as "Group/Subgroup" intact.
func Category(s string) string {
	if s == "" {
		return ""
	}

	base := path.Base(s)
	ext := path.Ext(base)

	// No extension means a literal category name, possibly hierarchical.
	if ext == "" || ext == base {
		return s
	}

	return strings.TrimSuffix(base, ext)
}

// ShortFile derives the short file name used in location lines. The
// directory and extension are always stripped, even when the corresponding
// category was taken verbatim.
func ShortFile(s string) string {
	if s == "" {
		return ""
	}

	base := path.Base(s)
	if ext := path.Ext(base); ext != "" && ext != base {
		return strings.TrimSuffix(base, ext)
	}

	return base
}
