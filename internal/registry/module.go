package registry

import (
	"errors"
	"fmt"
)

// Module contributes a set of descriptors to a registry. Modules are
// registered in any order; their structures may name types another module
// declares, as long as everything is registered before Finalize.
type Module interface {
	Name() string
	Register(r *Registry) error
}

// RegisterModules registers each module once. A module whose name was already
// registered successfully is skipped, so bootstrapping the same set twice is
// harmless. A module is registered all-or-nothing: it first registers into a
// private staging registry and its descriptors are only merged when it
// succeeded and none of them collides with the registry. Every failing module
// is reported; the others are still registered. Concurrent calls are
// serialized.
func (r *Registry) RegisterModules(mods ...Module) error {
	r.modMu.Lock()
	defer r.modMu.Unlock()

	var errs []error
	for _, m := range mods {
		name := m.Name()

		r.mu.RLock()
		_, done := r.modules[name]
		r.mu.RUnlock()
		if done {
			r.logger.Debug("Module already registered, skipping.", "module", name)
			continue
		}

		staged := New(WithLogger(r.logger))
		if err := m.Register(staged); err != nil {
			errs = append(errs, fmt.Errorf("module %q: %w", name, err))
			continue
		}
		if err := r.merge(name, staged); err != nil {
			errs = append(errs, fmt.Errorf("module %q: %w", name, err))
			continue
		}
		r.logger.Debug("Registered module.", "module", name)
	}
	return errors.Join(errs...)
}

// merge adds every descriptor registered in staged and records the module,
// or changes nothing when any of them is rejected.
func (r *Registry) merge(module string, staged *Registry) error {
	staged.mu.RLock()
	defer staged.mu.RUnlock()
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, e := range staged.enumerations {
		if err := r.checkAddable(e); err != nil {
			errs = append(errs, err)
		}
	}
	for _, s := range staged.structures {
		if err := r.checkAddable(s); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for _, e := range staged.enumerations {
		r.add(e)
		r.enumerations = append(r.enumerations, e)
	}
	for _, s := range staged.structures {
		r.add(s)
		r.structures = append(r.structures, s)
	}
	r.modules[module] = struct{}{}
	return nil
}

// Modules returns the number of modules registered so far.
func (r *Registry) Modules() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}
