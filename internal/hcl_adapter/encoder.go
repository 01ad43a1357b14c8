package hcl_adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/uaschema/internal/ctxlog"
	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// Encoder is the HCL implementation of the config.Encoder interface.
type Encoder struct{}

// NewEncoder creates a new HCL declaration encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes descriptors as `enumeration` and `structure` blocks in the
// given order. Primitives are skipped. Field types are written as declared,
// so decoding the output and finalizing resolves them the same way.
func (e *Encoder) Encode(ctx context.Context, w io.Writer, descriptors []model.Descriptor) error {
	logger := ctxlog.FromContext(ctx)

	f := hclwrite.NewEmptyFile()
	root := f.Body()
	written := 0

	for _, d := range descriptors {
		switch d := d.(type) {
		case *model.EnumerationDescriptor:
			if written > 0 {
				root.AppendNewline()
			}
			writeEnumeration(root, d)
			written++
		case *model.StructureDescriptor:
			if written > 0 {
				root.AppendNewline()
			}
			writeStructure(root, d)
			written++
		default:
			logger.Debug("Skipping descriptor that has no HCL form.", "kind", d.Kind().String(), "name", d.Name())
		}
	}

	if _, err := w.Write(f.Bytes()); err != nil {
		return fmt.Errorf("failed to write HCL declarations: %w", err)
	}
	logger.Debug("HCL declarations written.", "count", written)
	return nil
}

func writeEnumeration(root *hclwrite.Body, e *model.EnumerationDescriptor) {
	block := root.AppendNewBlock("enumeration", []string{e.Name()})
	body := block.Body()
	body.SetAttributeValue("id", cty.StringVal(e.Identity().String()))
	if e.Description() != "" {
		body.SetAttributeValue("description", cty.StringVal(e.Description()))
	}

	values := e.Values()
	if compactValues(values) {
		vb := body.AppendNewBlock("values", nil).Body()
		for _, v := range values {
			vb.SetAttributeValue(v.Name, cty.NumberIntVal(v.Value))
		}
		return
	}
	for _, v := range values {
		vb := body.AppendNewBlock("value", []string{v.Name}).Body()
		vb.SetAttributeValue("value", cty.NumberIntVal(v.Value))
		if v.Description != "" {
			vb.SetAttributeValue("description", cty.StringVal(v.Description))
		}
	}
}

// compactValues reports whether values fit the `values { Name = n }` form:
// every name is an HCL identifier and nothing carries a description.
func compactValues(values []model.EnumValue) bool {
	for _, v := range values {
		if v.Description != "" || !hclsyntax.ValidIdentifier(v.Name) {
			return false
		}
	}
	return true
}

func writeStructure(root *hclwrite.Body, s *model.StructureDescriptor) {
	block := root.AppendNewBlock("structure", []string{s.Name()})
	body := block.Body()
	body.SetAttributeValue("id", cty.StringVal(s.Identity().String()))
	if s.Description() != "" {
		body.SetAttributeValue("description", cty.StringVal(s.Description()))
	}

	for _, field := range s.Fields() {
		fb := body.AppendNewBlock("field", []string{field.Name}).Body()
		fb.SetAttributeValue("type", cty.StringVal(field.Type.Name()))
		if field.Array {
			fb.SetAttributeValue("array", cty.True)
		}
		if field.Description != "" {
			fb.SetAttributeValue("description", cty.StringVal(field.Description))
		}
	}
}
