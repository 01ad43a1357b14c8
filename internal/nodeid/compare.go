// internal/nodeid/compare.go
package nodeid

import "cmp"

// Equal reports whether both identities have the same namespace and identifier.
func (id ID) Equal(other ID) bool {
	return id == other
}

// Compare orders identities by namespace, then identifier kind (numeric,
// string, GUID, opaque), then identifier value. It returns -1, 0 or +1.
func Compare(a, b ID) int {
	if c := cmp.Compare(a.ns, b.ns); c != 0 {
		return c
	}
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if a.kind == KindNumeric {
		return cmp.Compare(a.numeric, b.numeric)
	}
	return cmp.Compare(a.str, b.str)
}
