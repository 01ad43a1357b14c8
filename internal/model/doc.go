// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory descriptors that every declaration
// registers: enumerations, structures and the fixed table of built-in
// primitive types they may reference.
//
// # Core Concepts
//
//   - Descriptor: the common view of anything a field may point at. It has a
//     Kind, a human Name and a namespace-qualified Identity.
//
//   - EnumerationDescriptor: an ordered list of symbolic names mapped to
//     integer values. Values may repeat, skip or start anywhere.
//
//   - StructureDescriptor: an ordered list of fields. The order is the wire
//     order a binary codec walks when encoding or decoding a value.
//
//   - TypeRef: the type of a field. It starts as a bare name and is bound to a
//     Descriptor exactly once, by Link, when the registry is finalized.
//
//   - Primitive: a built-in scalar such as UInt32 or LocalizedText. Primitives
//     resolve without being registered.
//
// Descriptors are immutable once constructed, with one exception: the binding
// of their field type references, which Link performs all-or-nothing.
package model
