package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/uaschema/internal/config"
	"github.com/specialistvlad/uaschema/internal/ctxlog"
	"github.com/specialistvlad/uaschema/internal/fsutil"
	"github.com/specialistvlad/uaschema/internal/hcl_adapter"
	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/registry"
	"github.com/specialistvlad/uaschema/internal/yaml_adapter"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is used when Options.Workers is not positive.
const DefaultWorkers = 4

// Options configures Run.
type Options struct {
	// Paths are declaration files or directories searched recursively.
	Paths []string
	// Workers bounds how many files are decoded at once.
	Workers int
	// Modules are registered before any declaration file.
	Modules []registry.Module
	// Decoders default to DefaultDecoders.
	Decoders []config.Decoder
}

// Result describes a successful bootstrap.
type Result struct {
	Files        []string
	Modules      int
	Enumerations int
	Structures   int
	Catalog      *registry.Catalog
}

// DefaultDecoders returns the HCL and YAML decoders.
func DefaultDecoders() []config.Decoder {
	return []config.Decoder{hcl_adapter.NewDecoder(), yaml_adapter.NewDecoder()}
}

// Run registers opts.Modules, then every declaration found under opts.Paths,
// and finalizes reg. Files are decoded concurrently but registered in sorted
// path order, so the outcome does not depend on scheduling. All module,
// decode and registration errors are joined into one error, and Finalize is
// only attempted when there were none.
func Run(ctx context.Context, reg *registry.Registry, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	decoders := opts.Decoders
	if len(decoders) == 0 {
		decoders = DefaultDecoders()
	}
	byExt := make(map[string]config.Decoder)
	var exts []string
	for _, d := range decoders {
		for _, ext := range d.Extensions() {
			byExt[ext] = d
			exts = append(exts, ext)
		}
	}

	var errs []error
	if err := reg.RegisterModules(opts.Modules...); err != nil {
		errs = append(errs, err)
	}
	logger.Debug("Compiled-in modules registered.", "count", len(opts.Modules))

	files, err := fsutil.CollectFiles(opts.Paths, exts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered declaration files.", "count", len(files))

	docs, decodeErrs := decodeAll(ctx, files, byExt, opts.Workers)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	errs = append(errs, decodeErrs...)

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		errs = append(errs, registerDocument(reg, doc)...)
	}

	if len(errs) > 0 {
		logger.Warn("Bootstrap found invalid declarations.", "errors", len(errs))
		return nil, errors.Join(errs...)
	}

	if err := reg.Finalize(ctx); err != nil {
		return nil, err
	}
	catalog, err := reg.Snapshot()
	if err != nil {
		return nil, err
	}

	res := &Result{Files: files, Modules: reg.Modules(), Catalog: catalog}
	res.Enumerations, res.Structures = reg.Counts()
	logger.Info("Bootstrap complete.",
		"files", len(files),
		"modules", res.Modules,
		"enumerations", res.Enumerations,
		"structures", res.Structures,
	)
	return res, nil
}

// decodeAll decodes files with at most workers concurrent decoders. The
// returned documents are indexed like files; a failed file leaves nil.
func decodeAll(ctx context.Context, files []string, byExt map[string]config.Decoder, workers int) ([]*config.Document, []error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	docs := make([]*config.Document, len(files))
	fileErrs := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			docs[i], fileErrs[i] = decodeFile(gctx, path, byExt)
			return nil
		})
	}
	// Workers only fail on cancellation, which the caller checks.
	_ = g.Wait()

	var errs []error
	for _, err := range fileErrs {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return docs, errs
}

func decodeFile(ctx context.Context, path string, byExt map[string]config.Decoder) (*config.Document, error) {
	ctx = ctxlog.With(ctx, "file", path)
	dec, ok := byExt[filepath.Ext(path)]
	if !ok {
		return nil, fmt.Errorf("%s: no decoder for extension %q", path, filepath.Ext(path))
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file: %w", err)
	}
	return dec.Decode(ctx, path, src)
}

// registerDocument registers every declaration of doc and returns every
// rejection.
func registerDocument(reg *registry.Registry, doc *config.Document) []error {
	var errs []error
	for _, decl := range doc.Declarations {
		var err error
		switch d := decl.(type) {
		case *model.EnumerationDescriptor:
			err = reg.RegisterEnumeration(d)
		case *model.StructureDescriptor:
			err = reg.RegisterStructure(d)
		default:
			err = fmt.Errorf("%s: %s cannot be registered", doc.Path, model.Label(decl))
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
