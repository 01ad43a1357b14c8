package config

import (
	"fmt"

	"github.com/specialistvlad/uaschema/internal/nodeid"
)

// Identity builds a descriptor identity from the two attributes declaration
// files use for it. text is the canonical form (`ns=0;i=852`); numeric is a
// bare number combined with namespace. Exactly one of text and numeric must
// be set. When both text and namespace are given they must agree.
func Identity(text *string, numeric *uint64, namespace *int) (nodeid.ID, error) {
	switch {
	case text != nil && numeric != nil:
		return nodeid.ID{}, fmt.Errorf("%w: identity given both as text and as a number", nodeid.ErrMalformedIdentity)
	case text != nil:
		id, err := nodeid.Parse(*text)
		if err != nil {
			return nodeid.ID{}, err
		}
		if namespace != nil && *namespace != int(id.Namespace()) {
			return nodeid.ID{}, fmt.Errorf("%w: namespace %d disagrees with identity %s", nodeid.ErrMalformedIdentity, *namespace, id)
		}
		return id, nil
	case numeric != nil:
		ns := 0
		if namespace != nil {
			ns = *namespace
		}
		return nodeid.Make(ns, *numeric)
	default:
		return nodeid.ID{}, fmt.Errorf("%w: identity is missing", nodeid.ErrMalformedIdentity)
	}
}
