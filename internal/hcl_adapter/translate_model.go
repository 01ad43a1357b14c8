// This file translates the HCL block structures of the schema package into
// descriptors of the model package.

package hcl_adapter

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/uaschema/internal/ctxlog"
	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/schema"
)

// blockError prefixes err with the location and name of a declaration block.
func blockError(rng hcl.Range, kind, name string, err error) error {
	return fmt.Errorf("%s:%d: %s %q: %w", rng.Filename, rng.Start.Line, kind, name, err)
}

// translateEnumeration converts an `enumeration` block. It reports every
// problem found in the block.
func translateEnumeration(ctx context.Context, path string, e *schema.Enumeration) (*model.EnumerationDescriptor, error) {
	logger := ctxlog.FromContext(ctx).With("enumeration", e.Name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL enumeration.")

	var errs []error
	id, err := evalIdentity(ctx, e.ID, e.Namespace)
	if err != nil {
		errs = append(errs, err)
	}

	type positioned struct {
		offset int
		value  model.EnumValue
	}
	var values []positioned

	for _, vb := range e.Values {
		attrs, diags := vb.Body.JustAttributes()
		if diags.HasErrors() {
			errs = append(errs, diags)
			continue
		}
		for name, attr := range attrs {
			n, err := evalInt64(attr.Expr)
			if err != nil {
				errs = append(errs, fmt.Errorf("value %q: %w", name, err))
				continue
			}
			values = append(values, positioned{attr.Range.Start.Byte, model.EnumValue{Name: name, Value: n}})
		}
	}
	for _, v := range e.Value {
		if !isExprDefined(ctx, v.Value, "value") {
			errs = append(errs, fmt.Errorf("value %q: missing required attribute \"value\"", v.Name))
			continue
		}
		n, err := evalInt64(v.Value)
		if err != nil {
			errs = append(errs, fmt.Errorf("value %q: %w", v.Name, err))
			continue
		}
		values = append(values, positioned{v.Value.Range().Start.Byte, model.EnumValue{Name: v.Name, Value: n, Description: v.Description}})
	}

	if len(errs) > 0 {
		return nil, blockError(e.ID.Range(), "enumeration", e.Name, errors.Join(errs...))
	}

	slices.SortFunc(values, func(a, b positioned) int { return a.offset - b.offset })
	ordered := make([]model.EnumValue, len(values))
	for i, v := range values {
		ordered[i] = v.value
	}

	return model.NewEnumeration(id, e.Name, ordered,
		model.WithEnumDescription(e.Description),
		model.WithEnumSource(model.FileSource(path)),
	), nil
}

// translateStructure converts a `structure` block. Field types stay
// unresolved until the registry is finalized.
func translateStructure(ctx context.Context, path string, s *schema.Structure) (*model.StructureDescriptor, error) {
	logger := ctxlog.FromContext(ctx).With("structure", s.Name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL structure.", "fields", len(s.Fields))

	var errs []error
	id, err := evalIdentity(ctx, s.ID, s.Namespace)
	if err != nil {
		errs = append(errs, err)
	}

	fields := make([]model.FieldDescriptor, 0, len(s.Fields))
	for _, f := range s.Fields {
		typeName, err := evalTypeName(ctx, f.Type)
		if err != nil {
			errs = append(errs, fmt.Errorf("field %q: %w", f.Name, err))
			continue
		}
		fields = append(fields, model.FieldDescriptor{
			Name:        f.Name,
			Type:        model.Ref(typeName),
			Array:       f.Array,
			Description: f.Description,
		})
	}

	if len(errs) > 0 {
		return nil, blockError(s.ID.Range(), "structure", s.Name, errors.Join(errs...))
	}

	return model.NewStructure(id, s.Name, fields,
		model.WithStructDescription(s.Description),
		model.WithStructSource(model.FileSource(path)),
	), nil
}
