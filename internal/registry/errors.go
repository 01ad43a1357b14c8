package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/nodeid"
)

var (
	ErrInvalidDescriptor    = errors.New("invalid descriptor")
	ErrDuplicateIdentity    = errors.New("duplicate identity")
	ErrDuplicateName        = errors.New("duplicate name")
	ErrDuplicateMember      = errors.New("duplicate member")
	ErrEmptyEnumeration     = errors.New("empty enumeration")
	ErrUnresolvedFieldType  = errors.New("unresolved field type")
	ErrAmbiguousFieldType   = errors.New("ambiguous field type")
	ErrRegistryFinalized    = errors.New("registry is finalized")
	ErrRegistryNotFinalized = errors.New("registry is not finalized")
	ErrNotFound             = errors.New("descriptor not found")
)

// DuplicateError reports a registration that collides with a descriptor
// already in the registry. It matches ErrDuplicateIdentity or
// ErrDuplicateName.
type DuplicateError struct {
	Reason   error
	Rejected model.Descriptor
	Existing model.Descriptor
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%v: %s from %s conflicts with %s from %s",
		e.Reason, model.Label(e.Rejected), e.Rejected.Source(), model.Label(e.Existing), e.Existing.Source())
}

func (e *DuplicateError) Unwrap() error { return e.Reason }

// MemberError reports a structure field or enumeration value name that is
// declared twice within one descriptor.
type MemberError struct {
	Descriptor model.Descriptor
	Member     string
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("%v: %q declared more than once in %s from %s",
		ErrDuplicateMember, e.Member, model.Label(e.Descriptor), e.Descriptor.Source())
}

func (e *MemberError) Unwrap() error { return ErrDuplicateMember }

// UnresolvedFieldTypeError names a structure field whose type could not be
// resolved. When Candidates is non-empty the name matched several namespaces
// and the error also matches ErrAmbiguousFieldType.
type UnresolvedFieldTypeError struct {
	Structure  string
	Identity   nodeid.ID
	Field      string
	TypeRef    string
	Source     model.Source
	Candidates []model.Descriptor
}

func (e *UnresolvedFieldTypeError) Error() string {
	msg := fmt.Sprintf("structure %q (%s), field %q: type %q", e.Structure, e.Identity, e.Field, e.TypeRef)
	if len(e.Candidates) > 0 {
		labels := make([]string, len(e.Candidates))
		for i, c := range e.Candidates {
			labels[i] = model.Label(c)
		}
		return fmt.Sprintf("%v: %s matches %s", ErrAmbiguousFieldType, msg, strings.Join(labels, ", "))
	}
	return fmt.Sprintf("%v: %s is not registered (declared in %s)", ErrUnresolvedFieldType, msg, e.Source)
}

func (e *UnresolvedFieldTypeError) Unwrap() []error {
	if len(e.Candidates) > 0 {
		return []error{ErrUnresolvedFieldType, ErrAmbiguousFieldType}
	}
	return []error{ErrUnresolvedFieldType}
}

// FinalizationError aggregates every field type Finalize failed to resolve.
type FinalizationError struct {
	Unresolved []*UnresolvedFieldTypeError
}

func (e *FinalizationError) Error() string {
	lines := make([]string, len(e.Unresolved))
	for i, u := range e.Unresolved {
		lines[i] = u.Error()
	}
	return fmt.Sprintf("registry finalization failed with %d unresolved field type(s):\n- %s",
		len(e.Unresolved), strings.Join(lines, "\n- "))
}

func (e *FinalizationError) Unwrap() []error {
	errs := make([]error, len(e.Unresolved))
	for i, u := range e.Unresolved {
		errs[i] = u
	}
	return errs
}
