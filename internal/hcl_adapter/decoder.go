package hcl_adapter

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/uaschema/internal/config"
	"github.com/specialistvlad/uaschema/internal/ctxlog"
	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/schema"
)

// Decoder is the HCL implementation of the config.Decoder interface. It is
// safe for concurrent use; every call gets its own parser.
type Decoder struct{}

// NewDecoder creates a new HCL declaration decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Extensions implements config.Decoder.
func (d *Decoder) Extensions() []string {
	return []string{".hcl"}
}

// Decode implements config.Decoder.
func (d *Decoder) Decode(ctx context.Context, path string, src []byte) (*config.Document, error) {
	ctx = ctxlog.With(ctx, "format", "hcl")
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding HCL declaration file.")

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root schema.DeclarationFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	type positioned struct {
		offset int
		decl   model.Descriptor
	}
	var decls []positioned
	var errs []error

	for _, e := range root.Enumerations {
		desc, err := translateEnumeration(ctx, path, e)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		decls = append(decls, positioned{e.ID.Range().Start.Byte, desc})
	}
	for _, s := range root.Structures {
		desc, err := translateStructure(ctx, path, s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		decls = append(decls, positioned{s.ID.Range().Start.Byte, desc})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	slices.SortFunc(decls, func(a, b positioned) int { return a.offset - b.offset })
	doc := &config.Document{Path: path, Declarations: make([]model.Descriptor, len(decls))}
	for i, p := range decls {
		doc.Declarations[i] = p.decl
	}

	enums, structs := doc.Counts()
	logger.Debug("HCL declaration file decoded.", "enumerations", enums, "structures", structs)
	return doc, nil
}
