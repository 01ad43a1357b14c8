package registry

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/nodeid"
)

// Catalog is the frozen view of a finalized registry. Every structure it
// returns has all field types resolved. A Catalog never changes and may be
// shared between goroutines without synchronization.
type Catalog struct {
	byIdentity   map[nodeid.ID]model.Descriptor
	byName       map[nameKey]model.Descriptor
	enumerations []*model.EnumerationDescriptor
	structures   []*model.StructureDescriptor
}

func newCatalog(
	byIdentity map[nodeid.ID]model.Descriptor,
	byName map[nameKey]model.Descriptor,
	enumerations []*model.EnumerationDescriptor,
	structures []*model.StructureDescriptor,
) *Catalog {
	c := &Catalog{
		byIdentity:   maps.Clone(byIdentity),
		byName:       maps.Clone(byName),
		enumerations: slices.Clone(enumerations),
		structures:   slices.Clone(structures),
	}
	slices.SortFunc(c.enumerations, func(a, b *model.EnumerationDescriptor) int {
		return nodeid.Compare(a.Identity(), b.Identity())
	})
	slices.SortFunc(c.structures, func(a, b *model.StructureDescriptor) int {
		return nodeid.Compare(a.Identity(), b.Identity())
	})
	return c
}

// ResolveByIdentity returns the descriptor registered under id, including
// built-in primitives.
func (c *Catalog) ResolveByIdentity(id nodeid.ID) (model.Descriptor, bool) {
	d, ok := c.byIdentity[id]
	return d, ok
}

// ResolveByName returns the descriptor registered under (namespace, name).
// Primitive names resolve in namespace 0.
func (c *Catalog) ResolveByName(namespace uint16, name string) (model.Descriptor, bool) {
	d, ok := c.byName[nameKey{ns: namespace, name: name}]
	return d, ok
}

// Lookup resolves a textual reference: an identity (`ns=0;i=852`), a
// qualified name (`0:ServerState`) or a bare name, which is looked up in
// namespace 0.
func (c *Catalog) Lookup(ref string) (model.Descriptor, error) {
	return lookup(ref, c.ResolveByIdentity, c.ResolveByName)
}

// Enumerations returns the registered enumerations in identity order.
func (c *Catalog) Enumerations() []*model.EnumerationDescriptor {
	return slices.Clone(c.enumerations)
}

// Structures returns the registered structures in identity order.
func (c *Catalog) Structures() []*model.StructureDescriptor {
	return slices.Clone(c.structures)
}

// Descriptors returns every registered enumeration and structure in identity
// order. Built-in primitives are not included.
func (c *Catalog) Descriptors() []model.Descriptor {
	all := make([]model.Descriptor, 0, len(c.enumerations)+len(c.structures))
	for _, e := range c.enumerations {
		all = append(all, e)
	}
	for _, s := range c.structures {
		all = append(all, s)
	}
	slices.SortFunc(all, func(a, b model.Descriptor) int {
		return nodeid.Compare(a.Identity(), b.Identity())
	})
	return all
}

// Len returns the number of registered enumerations and structures.
func (c *Catalog) Len() int {
	return len(c.enumerations) + len(c.structures)
}

func lookup(
	ref string,
	byIdentity func(nodeid.ID) (model.Descriptor, bool),
	byName func(uint16, string) (model.Descriptor, bool),
) (model.Descriptor, error) {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "ns=") {
		id, err := nodeid.Parse(ref)
		if err != nil {
			return nil, err
		}
		if d, ok := byIdentity(id); ok {
			return d, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	ns, name := uint16(0), ref
	if qns, qname, ok := splitQualifiedRef(ref); ok {
		ns, name = qns, qname
	}
	if d, ok := byName(ns, name); ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q in namespace %d", ErrNotFound, name, ns)
}
