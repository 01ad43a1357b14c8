// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"slices"

	"github.com/specialistvlad/uaschema/internal/nodeid"
)

// EnumValue is one symbolic name of an enumeration and its integer value.
type EnumValue struct {
	Name        string
	Value       int64
	Description string
}

// EnumerationDescriptor maps symbolic names to integer values, in
// declaration order.
type EnumerationDescriptor struct {
	name        string
	id          nodeid.ID
	values      []EnumValue
	description string
	source      Source
}

// EnumerationOption customizes a new EnumerationDescriptor.
type EnumerationOption func(*EnumerationDescriptor)

// WithEnumDescription sets the human-readable description.
func WithEnumDescription(text string) EnumerationOption {
	return func(e *EnumerationDescriptor) { e.description = text }
}

// WithEnumSource records where the enumeration was declared.
func WithEnumSource(src Source) EnumerationOption {
	return func(e *EnumerationDescriptor) { e.source = src }
}

// NewEnumeration creates an enumeration descriptor. No validation happens
// here; the registry rejects empty enumerations and repeated names.
func NewEnumeration(id nodeid.ID, name string, values []EnumValue, opts ...EnumerationOption) *EnumerationDescriptor {
	e := &EnumerationDescriptor{
		name:   name,
		id:     id,
		values: slices.Clone(values),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *EnumerationDescriptor) Kind() Kind          { return KindEnumeration }
func (e *EnumerationDescriptor) Name() string        { return e.name }
func (e *EnumerationDescriptor) Identity() nodeid.ID { return e.id }
func (e *EnumerationDescriptor) Namespace() uint16   { return e.id.Namespace() }
func (e *EnumerationDescriptor) Description() string { return e.description }
func (e *EnumerationDescriptor) Source() Source      { return e.source }

// Values returns a copy of the values in declaration order.
func (e *EnumerationDescriptor) Values() []EnumValue {
	return slices.Clone(e.values)
}

// Len returns the number of symbolic names.
func (e *EnumerationDescriptor) Len() int { return len(e.values) }

// Value returns the integer value of a symbolic name.
func (e *EnumerationDescriptor) Value(name string) (int64, bool) {
	for _, v := range e.values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return 0, false
}

// NameOf returns the first symbolic name declared with the given value.
func (e *EnumerationDescriptor) NameOf(value int64) (string, bool) {
	for _, v := range e.values {
		if v.Value == value {
			return v.Name, true
		}
	}
	return "", false
}
