package registry

import (
	"cmp"
	"context"
	"errors"
	"regexp"
	"slices"
	"strconv"

	"github.com/specialistvlad/uaschema/internal/ctxlog"
	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/nodeid"
)

// qualifiedRefRegex matches a namespace-qualified type name such as `2:BoilerState`.
var qualifiedRefRegex = regexp.MustCompile(`^(0|[1-9][0-9]*):(.+)$`)

// Finalize resolves every structure field type and freezes the registry.
//
// A type name is looked up in the built-in primitive table, then among the
// descriptors of the owning structure's namespace, then across all
// namespaces. A name written as `<ns>:<Name>` is only looked up in that
// namespace. If any field fails, every failure is returned in one
// *FinalizationError and the registry moves to StateFailed without binding
// anything; registering the missing types and calling Finalize again is
// allowed. Calling Finalize on a finalized registry returns ErrRegistryFinalized.
func (r *Registry) Finalize(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateFinalized {
		return ErrRegistryFinalized
	}
	logger.Debug("Finalizing registry.", "enumerations", len(r.enumerations), "structures", len(r.structures))

	byBareName := r.indexByBareName()
	errs := model.Link(r.structures, func(owner *model.StructureDescriptor, f model.FieldDescriptor) (model.Descriptor, error) {
		return r.resolveField(byBareName, owner, f)
	})

	if len(errs) > 0 {
		r.state = StateFailed
		ferr := &FinalizationError{}
		for _, err := range errs {
			var unresolved *UnresolvedFieldTypeError
			if !errors.As(err, &unresolved) {
				// Link only reports errors produced by resolveField.
				return err
			}
			ferr.Unresolved = append(ferr.Unresolved, unresolved)
		}
		logger.Warn("Registry finalization failed.", "unresolved", len(ferr.Unresolved))
		return ferr
	}

	r.catalog.Store(newCatalog(r.byIdentity, r.byName, r.enumerations, r.structures))
	r.state = StateFinalized
	logger.Info("Registry finalized.", "enumerations", len(r.enumerations), "structures", len(r.structures))
	return nil
}

// indexByBareName groups registered descriptors by name across namespaces,
// in namespace order. Primitives are not included. The caller holds mu.
func (r *Registry) indexByBareName() map[string][]model.Descriptor {
	index := make(map[string][]model.Descriptor)
	add := func(d model.Descriptor) { index[d.Name()] = append(index[d.Name()], d) }
	for _, e := range r.enumerations {
		add(e)
	}
	for _, s := range r.structures {
		add(s)
	}
	for _, ds := range index {
		slices.SortFunc(ds, func(a, b model.Descriptor) int {
			return cmp.Or(cmp.Compare(a.Namespace(), b.Namespace()), nodeid.Compare(a.Identity(), b.Identity()))
		})
	}
	return index
}

// resolveField implements the three lookup tiers. The caller holds mu.
func (r *Registry) resolveField(byBareName map[string][]model.Descriptor, owner *model.StructureDescriptor, f model.FieldDescriptor) (model.Descriptor, error) {
	ref := f.Type.Name()
	unresolved := func(candidates []model.Descriptor) error {
		return &UnresolvedFieldTypeError{
			Structure:  owner.Name(),
			Identity:   owner.Identity(),
			Field:      f.Name,
			TypeRef:    ref,
			Source:     owner.Source(),
			Candidates: candidates,
		}
	}

	if ns, name, ok := splitQualifiedRef(ref); ok {
		if d, found := r.byName[nameKey{ns: ns, name: name}]; found {
			return d, nil
		}
		return nil, unresolved(nil)
	}

	if p, ok := model.LookupPrimitive(ref); ok {
		return p, nil
	}
	if d, ok := r.byName[nameKey{ns: owner.Namespace(), name: ref}]; ok {
		return d, nil
	}

	switch candidates := byBareName[ref]; len(candidates) {
	case 0:
		return nil, unresolved(nil)
	case 1:
		return candidates[0], nil
	default:
		return nil, unresolved(slices.Clone(candidates))
	}
}

// splitQualifiedRef splits `<ns>:<Name>`.
func splitQualifiedRef(ref string) (ns uint16, name string, ok bool) {
	m := qualifiedRefRegex.FindStringSubmatch(ref)
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.ParseUint(m[1], 10, 16)
	if err != nil {
		return 0, "", false
	}
	return uint16(n), m[2], true
}
