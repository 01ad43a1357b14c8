// Package declare is a small helper for modules that register compiled-in
// namespace-0 declarations.
package declare

import (
	"errors"

	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/nodeid"
	"github.com/specialistvlad/uaschema/internal/registry"
)

// Set registers declarations on behalf of one module and collects every
// rejection, so a module reports all of its problems at once.
type Set struct {
	reg    *registry.Registry
	source model.Source
	errs   []error
}

// New starts a declaration set for the named module.
func New(reg *registry.Registry, module string) *Set {
	return &Set{reg: reg, source: model.ModuleSource(module)}
}

// Enum registers an enumeration with identity ns=0;i=<id>.
func (s *Set) Enum(id uint32, name, description string, values ...model.EnumValue) {
	e := model.NewEnumeration(nodeid.Numeric(0, id), name, values,
		model.WithEnumDescription(description),
		model.WithEnumSource(s.source),
	)
	if err := s.reg.RegisterEnumeration(e); err != nil {
		s.errs = append(s.errs, err)
	}
}

// Struct registers a structure with identity ns=0;i=<id>.
func (s *Set) Struct(id uint32, name, description string, fields ...model.FieldDescriptor) {
	st := model.NewStructure(nodeid.Numeric(0, id), name, fields,
		model.WithStructDescription(description),
		model.WithStructSource(s.source),
	)
	if err := s.reg.RegisterStructure(st); err != nil {
		s.errs = append(s.errs, err)
	}
}

// Err returns every rejection joined, or nil.
func (s *Set) Err() error {
	return errors.Join(s.errs...)
}

// V is shorthand for an enumeration value.
func V(name string, value int64) model.EnumValue {
	return model.EnumValue{Name: name, Value: value}
}

// Counters returns one scalar field of typeName per name.
func Counters(typeName string, names ...string) []model.FieldDescriptor {
	fields := make([]model.FieldDescriptor, len(names))
	for i, name := range names {
		fields[i] = model.Field(name, typeName)
	}
	return fields
}
