package registry

import (
	"fmt"

	"github.com/specialistvlad/uaschema/internal/model"
)

// RegisterEnumeration adds an enumeration. It fails if the registry is
// finalized, if the identity or (namespace, name) is taken, if the
// enumeration has no values or if a symbolic name repeats. A failed
// registration leaves the registry unchanged.
func (r *Registry) RegisterEnumeration(e *model.EnumerationDescriptor) error {
	if e == nil {
		return fmt.Errorf("%w: nil enumeration", ErrInvalidDescriptor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkAddable(e); err != nil {
		return err
	}
	if e.Len() == 0 {
		return fmt.Errorf("%w: %s from %s declares no values", ErrEmptyEnumeration, model.Label(e), e.Source())
	}
	seen := make(map[string]struct{}, e.Len())
	for _, v := range e.Values() {
		if v.Name == "" {
			return fmt.Errorf("%w: %s from %s has a value without a name", ErrInvalidDescriptor, model.Label(e), e.Source())
		}
		if _, dup := seen[v.Name]; dup {
			return &MemberError{Descriptor: e, Member: v.Name}
		}
		seen[v.Name] = struct{}{}
	}

	r.add(e)
	r.enumerations = append(r.enumerations, e)
	r.logger.Debug("Registered enumeration.", "name", e.Name(), "identity", e.Identity().String(), "values", e.Len(), "source", e.Source().String())
	return nil
}

// RegisterStructure adds a structure. Field types are not resolved here: the
// types they name may be registered later. It fails if the registry is
// finalized, if the identity or (namespace, name) is taken, or if a field
// name repeats, or if s was already registered in another registry, since the
// registry that finalizes s binds its field types. A failed registration
// leaves the registry unchanged.
func (r *Registry) RegisterStructure(s *model.StructureDescriptor) error {
	if s == nil {
		return fmt.Errorf("%w: nil structure", ErrInvalidDescriptor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkAddable(s); err != nil {
		return err
	}
	fields := s.Fields()
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("%w: %s from %s has a field without a name", ErrInvalidDescriptor, model.Label(s), s.Source())
		}
		if _, dup := seen[f.Name]; dup {
			return &MemberError{Descriptor: s, Member: f.Name}
		}
		seen[f.Name] = struct{}{}
	}
	if !s.Claim() {
		return fmt.Errorf("%w: %s from %s is owned by another registry", ErrInvalidDescriptor, model.Label(s), s.Source())
	}

	r.add(s)
	r.structures = append(r.structures, s)
	r.logger.Debug("Registered structure.", "name", s.Name(), "identity", s.Identity().String(), "fields", len(fields), "source", s.Source().String())
	return nil
}

// checkAddable runs the checks shared by both descriptor kinds. The caller
// holds the write lock.
func (r *Registry) checkAddable(d model.Descriptor) error {
	if !r.state.AcceptsRegistrations() {
		return fmt.Errorf("%w: cannot register %s", ErrRegistryFinalized, model.Label(d))
	}
	if d.Name() == "" {
		return fmt.Errorf("%w: %s from %s has an empty name", ErrInvalidDescriptor, model.Label(d), d.Source())
	}
	if existing, ok := r.byIdentity[d.Identity()]; ok {
		return &DuplicateError{Reason: ErrDuplicateIdentity, Rejected: d, Existing: existing}
	}
	if existing, ok := r.byName[nameKey{ns: d.Namespace(), name: d.Name()}]; ok {
		return &DuplicateError{Reason: ErrDuplicateName, Rejected: d, Existing: existing}
	}
	return nil
}

func (r *Registry) add(d model.Descriptor) {
	r.byIdentity[d.Identity()] = d
	r.byName[nameKey{ns: d.Namespace(), name: d.Name()}] = d
}
