// Package registry provides the central catalog of structure and enumeration
// descriptors that a binary codec trusts.
//
// Declarations register themselves in whatever order they happen to load,
// and a structure may name a field type that is registered later or not at
// all. The Registry therefore works in two phases:
//
//  1. Open: RegisterEnumeration and RegisterStructure store descriptors after
//     checking identity and name uniqueness. Field types stay unresolved.
//  2. Finalize resolves every field type name against the built-in
//     primitives, then the owning structure's namespace, then all namespaces.
//     Every failure is reported in one FinalizationError and the registry
//     stays open (state Failed) so the missing types can be registered and
//     Finalize retried. On success the registry is frozen.
//
// Lookups by identity or by (namespace, name) work in every state. Code that
// needs resolved field types calls RequireFinalized, or takes the immutable
// Catalog returned by Snapshot, which can be shared between goroutines
// without locking.
package registry
