// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"fmt"

	"github.com/specialistvlad/uaschema/internal/nodeid"
)

// Kind distinguishes the three descriptor families.
type Kind uint8

const (
	KindPrimitive Kind = iota + 1
	KindEnumeration
	KindStructure
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindEnumeration:
		return "enumeration"
	case KindStructure:
		return "structure"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Descriptor is implemented by *Primitive, *EnumerationDescriptor and
// *StructureDescriptor.
type Descriptor interface {
	Kind() Kind
	Name() string
	Identity() nodeid.ID
	Namespace() uint16
	Description() string
	// Source names the file or compiled-in module the descriptor came from.
	Source() Source
}

// Label renders a descriptor for diagnostics, e.g. `structure "BuildInfo" (ns=0;i=338)`.
func Label(d Descriptor) string {
	if d == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q (%s)", d.Kind(), d.Name(), d.Identity())
}
