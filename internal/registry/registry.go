package registry

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/nodeid"
)

// nameKey addresses a descriptor by namespace and human name.
type nameKey struct {
	ns   uint16
	name string
}

// Registry holds every registered descriptor for a single application
// instance. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	logger *slog.Logger
	// modMu serializes RegisterModules.
	modMu sync.Mutex

	state        State
	byIdentity   map[nodeid.ID]model.Descriptor
	byName       map[nameKey]model.Descriptor
	enumerations []*model.EnumerationDescriptor
	structures   []*model.StructureDescriptor
	modules      map[string]struct{}

	// catalog is published once by a successful Finalize. Queries read it
	// without taking mu.
	catalog atomic.Pointer[Catalog]
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an open Registry seeded with the built-in primitive types, so
// their identities and namespace-0 names cannot be registered again.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:     slog.New(slog.DiscardHandler),
		byIdentity: make(map[nodeid.ID]model.Descriptor),
		byName:     make(map[nameKey]model.Descriptor),
		modules:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, p := range model.Primitives() {
		r.byIdentity[p.Identity()] = p
	}
	for _, name := range model.PrimitiveNames() {
		p, _ := model.LookupPrimitive(name)
		r.byName[nameKey{ns: 0, name: name}] = p
	}
	return r
}

// State returns the current lifecycle phase.
func (r *Registry) State() State {
	if r.catalog.Load() != nil {
		return StateFinalized
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Counts returns the number of registered enumerations and structures.
// Built-in primitives are not counted.
func (r *Registry) Counts() (enumerations, structures int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.enumerations), len(r.structures)
}
