// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Source, which links a descriptor back to where it was
// declared: a declaration file on disk or a compiled-in Go module.
//
// Duplicate identities and unresolved field types are configuration errors an
// operator has to fix by editing a declaration. Reporting the file (or module)
// next to the offending name is what makes those errors actionable.
package model

// Source identifies the origin of a declaration.
type Source struct {
	// FilePath is set for declarations loaded from a file.
	FilePath string
	// Module is set for declarations registered by a compiled-in module.
	Module string
}

// FileSource returns the Source for a declaration file.
func FileSource(filePath string) Source {
	return Source{FilePath: filePath}
}

// ModuleSource returns the Source for a compiled-in module.
func ModuleSource(name string) Source {
	return Source{Module: name}
}

// String renders the source as `file core.hcl`, `module core` or `builtin`.
func (s Source) String() string {
	switch {
	case s.FilePath != "":
		return "file " + s.FilePath
	case s.Module != "":
		return "module " + s.Module
	default:
		return "builtin"
	}
}
