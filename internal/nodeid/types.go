// internal/nodeid/types.go
package nodeid

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ErrMalformedIdentity is returned whenever an identity cannot be built from
// the given text or components.
var ErrMalformedIdentity = errors.New("malformed identity")

// Kind tells which identifier variant an ID carries. The declaration order is
// also the sort order used by Compare.
type Kind uint8

const (
	KindNumeric Kind = iota
	KindString
	KindGUID
	KindOpaque
)

// String returns the single-letter prefix used in the text form.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "i"
	case KindString:
		return "s"
	case KindGUID:
		return "g"
	case KindOpaque:
		return "b"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ID is the structured representation of a namespace-qualified identity.
// The zero value is `ns=0;i=0`, which is reserved and reported by IsZero.
type ID struct {
	ns      uint16
	kind    Kind
	numeric uint32
	// str holds the string identifier, or the raw bytes of a GUID or opaque
	// identifier, so ID stays comparable with ==.
	str string
}

// Numeric creates a numeric identity.
func Numeric(ns uint16, id uint32) ID {
	return ID{ns: ns, kind: KindNumeric, numeric: id}
}

// String creates a string identity. An empty identifier is allowed here; the
// text grammar rejects it.
func String(ns uint16, id string) ID {
	return ID{ns: ns, kind: KindString, str: id}
}

// GUID creates a GUID identity.
func GUID(ns uint16, id uuid.UUID) ID {
	return ID{ns: ns, kind: KindGUID, str: string(id[:])}
}

// Opaque creates an opaque (byte string) identity. The bytes are copied.
func Opaque(ns uint16, id []byte) ID {
	return ID{ns: ns, kind: KindOpaque, str: string(bytes.Clone(id))}
}

// Make builds an identity from already-typed components. The identifier may
// be any Go integer type, a string, a uuid.UUID or a []byte.
func Make(namespace int, identifier any) (ID, error) {
	if namespace < 0 || namespace > math.MaxUint16 {
		return ID{}, fmt.Errorf("%w: namespace %d out of range", ErrMalformedIdentity, namespace)
	}
	ns := uint16(namespace)

	switch v := identifier.(type) {
	case uint32:
		return Numeric(ns, v), nil
	case uint16:
		return Numeric(ns, uint32(v)), nil
	case uint8:
		return Numeric(ns, uint32(v)), nil
	case uint:
		return makeNumeric(ns, uint64(v))
	case uint64:
		return makeNumeric(ns, v)
	case int:
		return makeSigned(ns, int64(v))
	case int32:
		return makeSigned(ns, int64(v))
	case int64:
		return makeSigned(ns, v)
	case string:
		if v == "" {
			return ID{}, fmt.Errorf("%w: empty string identifier", ErrMalformedIdentity)
		}
		return String(ns, v), nil
	case uuid.UUID:
		return GUID(ns, v), nil
	case []byte:
		if len(v) == 0 {
			return ID{}, fmt.Errorf("%w: empty opaque identifier", ErrMalformedIdentity)
		}
		return Opaque(ns, v), nil
	case ID:
		if v.ns != ns {
			return ID{}, fmt.Errorf("%w: identity %s does not belong to namespace %d", ErrMalformedIdentity, v, ns)
		}
		return v, nil
	default:
		return ID{}, fmt.Errorf("%w: unsupported identifier type %T", ErrMalformedIdentity, identifier)
	}
}

func makeSigned(ns uint16, v int64) (ID, error) {
	if v < 0 {
		return ID{}, fmt.Errorf("%w: negative numeric identifier %d", ErrMalformedIdentity, v)
	}
	return makeNumeric(ns, uint64(v))
}

func makeNumeric(ns uint16, v uint64) (ID, error) {
	if v > math.MaxUint32 {
		return ID{}, fmt.Errorf("%w: numeric identifier %d out of range", ErrMalformedIdentity, v)
	}
	return Numeric(ns, uint32(v)), nil
}

// Namespace returns the namespace index.
func (id ID) Namespace() uint16 { return id.ns }

// Kind returns the identifier variant.
func (id ID) Kind() Kind { return id.kind }

// NumericValue returns the numeric identifier; ok is false for other kinds.
func (id ID) NumericValue() (v uint32, ok bool) {
	return id.numeric, id.kind == KindNumeric
}

// StringValue returns the string identifier; ok is false for other kinds.
func (id ID) StringValue() (v string, ok bool) {
	if id.kind != KindString {
		return "", false
	}
	return id.str, true
}

// GUIDValue returns the GUID identifier; ok is false for other kinds.
func (id ID) GUIDValue() (v uuid.UUID, ok bool) {
	if id.kind != KindGUID {
		return uuid.Nil, false
	}
	copy(v[:], id.str)
	return v, true
}

// OpaqueValue returns a copy of the opaque identifier; ok is false for other kinds.
func (id ID) OpaqueValue() (v []byte, ok bool) {
	if id.kind != KindOpaque {
		return nil, false
	}
	return []byte(id.str), true
}

// IsZero reports whether id is the zero value `ns=0;i=0`.
func (id ID) IsZero() bool {
	return id == ID{}
}
