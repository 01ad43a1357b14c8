package registry

import (
	"fmt"

	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/nodeid"
)

// ResolveByIdentity returns the descriptor registered under id. It may be
// called in any state; before finalization structure field types may still
// be unresolved.
func (r *Registry) ResolveByIdentity(id nodeid.ID) (model.Descriptor, bool) {
	if c := r.catalog.Load(); c != nil {
		return c.ResolveByIdentity(id)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byIdentity[id]
	return d, ok
}

// ResolveByName returns the descriptor registered under (namespace, name).
// It may be called in any state.
func (r *Registry) ResolveByName(namespace uint16, name string) (model.Descriptor, bool) {
	if c := r.catalog.Load(); c != nil {
		return c.ResolveByName(namespace, name)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[nameKey{ns: namespace, name: name}]
	return d, ok
}

// Lookup resolves a textual reference the way Catalog.Lookup does, in any state.
func (r *Registry) Lookup(ref string) (model.Descriptor, error) {
	return lookup(ref, r.ResolveByIdentity, r.ResolveByName)
}

// RequireFinalized fails with ErrRegistryNotFinalized unless Finalize has
// succeeded. Codecs call it before trusting field types.
func (r *Registry) RequireFinalized() error {
	if r.catalog.Load() != nil {
		return nil
	}
	return fmt.Errorf("%w: state is %s", ErrRegistryNotFinalized, r.State())
}

// Snapshot returns the frozen catalog of a finalized registry.
func (r *Registry) Snapshot() (*Catalog, error) {
	if c := r.catalog.Load(); c != nil {
		return c, nil
	}
	return nil, r.RequireFinalized()
}
