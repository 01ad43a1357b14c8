package yaml_adapter

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/specialistvlad/uaschema/internal/config"
	"github.com/specialistvlad/uaschema/internal/ctxlog"
	"github.com/specialistvlad/uaschema/internal/model"
	"gopkg.in/yaml.v3"
)

// Decoder is the YAML implementation of the config.Decoder interface.
type Decoder struct{}

// NewDecoder creates a new YAML declaration decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Extensions implements config.Decoder.
func (d *Decoder) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Decode implements config.Decoder. Unknown keys are rejected. An empty file
// decodes into an empty document.
func (d *Decoder) Decode(ctx context.Context, path string, src []byte) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx).With("format", "yaml")
	logger.Debug("Decoding YAML declaration file.")

	var root fileDoc
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	type positioned struct {
		line int
		decl model.Descriptor
	}
	var decls []positioned
	var errs []error
	source := model.FileSource(path)

	for _, e := range root.Enumerations {
		id, err := e.ID.resolve(e.Namespace)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s:%d: enumeration %q: %w", path, e.ID.line, e.Name, err))
			continue
		}
		values := make([]model.EnumValue, len(e.Values))
		for i, v := range e.Values {
			values[i] = model.EnumValue{Name: v.Name, Value: v.Value, Description: v.Description}
		}
		decls = append(decls, positioned{e.ID.line, model.NewEnumeration(id, e.Name, values,
			model.WithEnumDescription(e.Description),
			model.WithEnumSource(source),
		)})
	}

	for _, s := range root.Structures {
		id, err := s.ID.resolve(s.Namespace)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s:%d: structure %q: %w", path, s.ID.line, s.Name, err))
			continue
		}
		fields := make([]model.FieldDescriptor, len(s.Fields))
		for i, f := range s.Fields {
			if f.Type == "" {
				errs = append(errs, fmt.Errorf("%s:%d: structure %q: field %q: type must not be empty", path, s.ID.line, s.Name, f.Name))
			}
			fields[i] = model.FieldDescriptor{Name: f.Name, Type: model.Ref(f.Type), Array: f.Array, Description: f.Description}
		}
		decls = append(decls, positioned{s.ID.line, model.NewStructure(id, s.Name, fields,
			model.WithStructDescription(s.Description),
			model.WithStructSource(source),
		)})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	slices.SortStableFunc(decls, func(a, b positioned) int { return cmp.Compare(a.line, b.line) })
	doc := &config.Document{Path: path, Declarations: make([]model.Descriptor, len(decls))}
	for i, p := range decls {
		doc.Declarations[i] = p.decl
	}

	enums, structs := doc.Counts()
	logger.Debug("YAML declaration file decoded.", "enumerations", enums, "structures", structs)
	return doc, nil
}
