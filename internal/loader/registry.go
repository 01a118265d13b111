package loader

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/agentx-labs/contentx/internal/content"
	"github.com/agentx-labs/contentx/internal/resource"
)

// maxUnwrapDepth bounds the decorator walk in ContentTypeOf.
const maxUnwrapDepth = 32

// Factory constructs a new loader value. It receives the resource provider
// the registry was created with. The returned value should implement Loader
// and declare its content type through Producer somewhere along its chain.
type Factory func(res resource.Provider) any

// Registration is one row of the registry table.
type Registration struct {
	Name    string
	Version *semver.Version
	Factory Factory
}

type entry struct {
	reg Registration

	// memoized ContentTypeOf result
	typed   bool
	typ     content.Type
	typeErr error
}

// Registry maps loader identifiers to factories.
type Registry struct {
	mu        sync.RWMutex
	resources resource.Provider
	entries   map[string]*entry
}

// NewRegistry returns an empty Registry whose loaders read from res.
func NewRegistry(res resource.Provider) *Registry {
	return &Registry{
		resources: res,
		entries:   make(map[string]*entry),
	}
}

// Register adds a loader factory under name at the given semver version.
func (r *Registry) Register(name, version string, factory Factory) error {
	if name == "" || strings.ContainsAny(name, "@ \t") {
		return fmt.Errorf("invalid loader name %q", name)
	}
	if factory == nil {
		return fmt.Errorf("loader %q: nil factory", name)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("loader %q: parsing version %q: %w", name, version, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("loader %q is already registered", name)
	}
	r.entries[name] = &entry{reg: Registration{Name: name, Version: v, Factory: factory}}
	return nil
}

// MustRegister is Register that panics on error. Registration happens while
// wiring the program, so a failure is a programming error.
func (r *Registry) MustRegister(name, version string, factory Factory) {
	if err := r.Register(name, version, factory); err != nil {
		panic(err)
	}
}

// Resolve returns a freshly constructed loader for identifier.
func (r *Registry) Resolve(identifier string) (Loader, error) {
	e, err := r.lookup(identifier)
	if err != nil {
		return nil, err
	}
	if _, err := r.contentType(e); err != nil {
		return nil, err
	}

	v := e.reg.Factory(r.resources)
	l, ok := v.(Loader)
	if !ok {
		return nil, &UnsupportedContractError{Identifier: identifier, Value: v}
	}
	return l, nil
}

// ContentTypeOf returns the content type produced by the loader registered
// for identifier. The loader's embedding and Unwrap chain is walked until a
// Producer is found; the answer is memoized per registration.
func (r *Registry) ContentTypeOf(identifier string) (content.Type, error) {
	e, err := r.lookup(identifier)
	if err != nil {
		return "", err
	}
	return r.contentType(e)
}

// Lookup returns the registration stored under name.
func (r *Registry) Lookup(name string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return Registration{}, false
	}
	return e.reg, true
}

// Names returns all registered loader names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// lookup parses identifier and finds a registration satisfying its version
// constraint.
func (r *Registry) lookup(identifier string) (*entry, error) {
	name, constraint, err := ParseIdentifier(identifier)
	if err != nil {
		return nil, &NotFoundError{Identifier: identifier, Reason: err.Error()}
	}

	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Identifier: identifier}
	}

	if constraint != nil && !constraint.Check(e.reg.Version) {
		return nil, &NotFoundError{
			Identifier: identifier,
			Reason:     fmt.Sprintf("registered version %s does not satisfy %s", e.reg.Version, constraint),
		}
	}
	return e, nil
}

func (r *Registry) contentType(e *entry) (content.Type, error) {
	r.mu.RLock()
	if e.typed {
		typ, err := e.typ, e.typeErr
		r.mu.RUnlock()
		return typ, err
	}
	r.mu.RUnlock()

	v := e.reg.Factory(r.resources)
	var err error
	typ, ok := producedType(v)
	if !ok {
		err = &UnsupportedContractError{Identifier: e.reg.Name, Value: v}
	}

	r.mu.Lock()
	e.typed, e.typ, e.typeErr = true, typ, err
	r.mu.Unlock()

	if err != nil {
		return "", err
	}
	return typ, nil
}

// producedType walks v's Unwrap chain looking for the first Producer.
// Producers reached through struct embedding are found by the type assertion
// itself, since embedding promotes Produces.
func producedType(v any) (content.Type, bool) {
	p, ok := find[Producer](v)
	if !ok {
		return "", false
	}
	typ := p.Produces()
	return typ, typ != ""
}

// find returns the first value along v's Unwrap chain implementing I.
func find[I any](v any) (I, bool) {
	for depth := 0; v != nil && depth < maxUnwrapDepth; depth++ {
		if i, ok := v.(I); ok {
			return i, true
		}
		w, ok := v.(Wrapper)
		if !ok {
			break
		}
		v = w.Unwrap()
	}
	var zero I
	return zero, false
}

// Blank returns an empty object from the loader registered for identifier,
// for tools that create new data files.
func (r *Registry) Blank(identifier string) (content.Object, error) {
	e, err := r.lookup(identifier)
	if err != nil {
		return nil, err
	}
	v := e.reg.Factory(r.resources)
	t, ok := find[Templater](v)
	if !ok {
		return nil, &UnsupportedContractError{Identifier: identifier, Value: v}
	}
	return t.NewObject(), nil
}

// ParseIdentifier splits "Name" or "Name@constraint" into its parts. The
// constraint is nil when absent.
func ParseIdentifier(identifier string) (string, *semver.Constraints, error) {
	name, raw, hasConstraint := strings.Cut(strings.TrimSpace(identifier), "@")
	if name == "" {
		return "", nil, fmt.Errorf("empty loader name")
	}
	if !hasConstraint {
		return name, nil, nil
	}
	c, err := semver.NewConstraint(raw)
	if err != nil {
		return "", nil, fmt.Errorf("parsing version constraint %q: %w", raw, err)
	}
	return name, c, nil
}
