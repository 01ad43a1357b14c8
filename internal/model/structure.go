// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines structures, their fields and the TypeRef a field uses to
// name its type.
//
// A TypeRef is a tagged variant. Before finalization it only holds the name
// written in the declaration; the referenced type may not be registered yet.
// After finalization it holds a handle to the resolved Descriptor. Target
// refuses to answer for an unresolved reference, so a codec cannot walk a
// structure whose references are still dangling without noticing.
//
// Handles are pointers, never copies of the target's fields. Two structures
// that reference each other therefore resolve to a finite pair of pointers.
package model

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/specialistvlad/uaschema/internal/nodeid"
)

// ErrUnresolvedReference is returned by TypeRef.Target before finalization.
var ErrUnresolvedReference = errors.New("type reference is not resolved")

// ErrAlreadyLinked is returned by Link for a structure whose field types were
// bound by an earlier Link.
var ErrAlreadyLinked = errors.New("structure is already linked")

// TypeRef names the type of a field and, once resolved, points at it.
type TypeRef struct {
	name   string
	target Descriptor
}

// Ref returns an unresolved reference to the named type. The name is either
// plain (`BuildInfo`) or namespace-qualified (`2:BoilerState`).
func Ref(name string) TypeRef {
	return TypeRef{name: name}
}

// Name returns the type name as declared.
func (r TypeRef) Name() string { return r.name }

// IsResolved reports whether the reference has been bound.
func (r TypeRef) IsResolved() bool { return r.target != nil }

// Target returns the resolved descriptor.
func (r TypeRef) Target() (Descriptor, error) {
	if r.target == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedReference, r.name)
	}
	return r.target, nil
}

// FieldDescriptor is one named, typed slot of a structure.
type FieldDescriptor struct {
	Name string
	Type TypeRef
	// Array marks a one-dimensional array of Type.
	Array       bool
	Description string
}

// Field is shorthand for a scalar field referencing typeName.
func Field(name, typeName string) FieldDescriptor {
	return FieldDescriptor{Name: name, Type: Ref(typeName)}
}

// ArrayField is shorthand for an array field referencing typeName.
func ArrayField(name, typeName string) FieldDescriptor {
	return FieldDescriptor{Name: name, Type: Ref(typeName), Array: true}
}

// StructureDescriptor is an ordered list of fields. The order is the wire order.
type StructureDescriptor struct {
	name        string
	id          nodeid.ID
	fields      []FieldDescriptor
	description string
	source      Source

	// targets holds one resolved descriptor per field once Link succeeded.
	targets atomic.Pointer[[]Descriptor]
	claimed atomic.Bool
}

// StructureOption customizes a new StructureDescriptor.
type StructureOption func(*StructureDescriptor)

// WithStructDescription sets the human-readable description.
func WithStructDescription(text string) StructureOption {
	return func(s *StructureDescriptor) { s.description = text }
}

// WithStructSource records where the structure was declared.
func WithStructSource(src Source) StructureOption {
	return func(s *StructureDescriptor) { s.source = src }
}

// NewStructure creates a structure descriptor with unresolved field types.
// Any binding carried by the given fields is dropped.
func NewStructure(id nodeid.ID, name string, fields []FieldDescriptor, opts ...StructureOption) *StructureDescriptor {
	s := &StructureDescriptor{
		name:   name,
		id:     id,
		fields: make([]FieldDescriptor, len(fields)),
	}
	for i, f := range fields {
		f.Type = Ref(f.Type.name)
		s.fields[i] = f
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StructureDescriptor) Kind() Kind          { return KindStructure }
func (s *StructureDescriptor) Name() string        { return s.name }
func (s *StructureDescriptor) Identity() nodeid.ID { return s.id }
func (s *StructureDescriptor) Namespace() uint16   { return s.id.Namespace() }
func (s *StructureDescriptor) Description() string { return s.description }
func (s *StructureDescriptor) Source() Source      { return s.source }

// Len returns the number of fields.
func (s *StructureDescriptor) Len() int { return len(s.fields) }

// Claim marks s as owned by one registry. It reports false when s was
// claimed before; a structure is bound by the registry that owns it, so it
// cannot be shared between registries.
func (s *StructureDescriptor) Claim() bool {
	return s.claimed.CompareAndSwap(false, true)
}

// Resolved reports whether every field type has been bound.
func (s *StructureDescriptor) Resolved() bool {
	return s.targets.Load() != nil
}

// Fields returns the fields in wire order. Type references are resolved if
// the structure has been linked.
func (s *StructureDescriptor) Fields() []FieldDescriptor {
	fields := slices.Clone(s.fields)
	if targets := s.targets.Load(); targets != nil {
		for i := range fields {
			fields[i].Type.target = (*targets)[i]
		}
	}
	return fields
}

// Field returns the named field.
func (s *StructureDescriptor) Field(name string) (FieldDescriptor, bool) {
	for i, f := range s.fields {
		if f.Name == name {
			if targets := s.targets.Load(); targets != nil {
				f.Type.target = (*targets)[i]
			}
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// ResolveFunc binds the type of one field of owner.
type ResolveFunc func(owner *StructureDescriptor, field FieldDescriptor) (Descriptor, error)

// Link resolves every field of every structure with resolve. It returns every
// failure it met. Bindings are only published when there were none, so a
// failed Link leaves all structures exactly as they were. A structure that is
// already linked is reported with ErrAlreadyLinked and never rebound.
func Link(structures []*StructureDescriptor, resolve ResolveFunc) []error {
	var errs []error
	pending := make(map[*StructureDescriptor][]Descriptor, len(structures))

	for _, s := range structures {
		if s.Resolved() {
			errs = append(errs, fmt.Errorf("%w: %s", ErrAlreadyLinked, Label(s)))
			continue
		}
		if _, seen := pending[s]; seen {
			continue
		}
		targets := make([]Descriptor, len(s.fields))
		for i, f := range s.fields {
			d, err := resolve(s, f)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if d == nil {
				errs = append(errs, fmt.Errorf("%w: %q in field %q of %s", ErrUnresolvedReference, f.Type.name, f.Name, Label(s)))
				continue
			}
			targets[i] = d
		}
		pending[s] = targets
	}

	if len(errs) > 0 {
		return errs
	}
	for s, targets := range pending {
		s.targets.Store(&targets)
	}
	return nil
}
