package yaml_adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/uaschema/internal/ctxlog"
	"github.com/specialistvlad/uaschema/internal/model"
	"gopkg.in/yaml.v3"
)

// Encoder is the YAML implementation of the config.Encoder interface.
type Encoder struct{}

// NewEncoder creates a new YAML declaration encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes enumerations, then structures, each in the given order.
// Primitives are skipped.
func (e *Encoder) Encode(ctx context.Context, w io.Writer, descriptors []model.Descriptor) error {
	var root fileDoc
	for _, d := range descriptors {
		switch d := d.(type) {
		case *model.EnumerationDescriptor:
			doc := &enumerationDoc{Name: d.Name(), ID: textIdentity(d.Identity()), Description: d.Description()}
			for _, v := range d.Values() {
				doc.Values = append(doc.Values, valueDoc{Name: v.Name, Value: v.Value, Description: v.Description})
			}
			root.Enumerations = append(root.Enumerations, doc)
		case *model.StructureDescriptor:
			doc := &structureDoc{Name: d.Name(), ID: textIdentity(d.Identity()), Description: d.Description()}
			for _, f := range d.Fields() {
				doc.Fields = append(doc.Fields, fieldDoc{Name: f.Name, Type: f.Type.Name(), Array: f.Array, Description: f.Description})
			}
			root.Structures = append(root.Structures, doc)
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return fmt.Errorf("failed to write YAML declarations: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to write YAML declarations: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("YAML declarations written.", "enumerations", len(root.Enumerations), "structures", len(root.Structures))
	return nil
}
