package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/agentx-labs/contentx/internal/content"
	"github.com/agentx-labs/contentx/internal/loader"
	"github.com/agentx-labs/contentx/internal/manifest"
	"github.com/spf13/afero"
)

// Result is the outcome of a completed run.
type Result struct {
	Collection *content.Collection
	// Rejected holds the objects that were loaded but not registered, either
	// because their id was empty or already taken within their type.
	Rejected []error
}

// Pipeline resolves, loads and registers manifest entries.
type Pipeline struct {
	loaders *loader.Registry
	logger  *slog.Logger
	state   State
}

// New returns a pipeline resolving loaders through loaders. A nil logger
// means slog.Default().
func New(loaders *loader.Registry, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{loaders: loaders, logger: logger}
}

// State reports where the most recent run got to.
func (p *Pipeline) State() State { return p.state }

// resolved is one entry ready to load.
type resolved struct {
	manifest string
	entry    manifest.Entry
	ctx      loader.LoadContext
	loader   loader.Loader
	typ      content.Type
}

// Load discovers and parses the manifests under root, then runs them.
func (p *Pipeline) Load(fsys afero.Fs, root, name string) (*Result, error) {
	p.state = Start
	p.logger.Debug("Discovering manifests.", "root", root)

	manifests, err := manifest.LoadAll(fsys, root, name)
	if err != nil {
		var pe *manifest.ParseError
		source := ""
		if errors.As(err, &pe) {
			source = pe.Source
		}
		return nil, p.abort(&Error{State: Start, Manifest: source, Err: err})
	}
	return p.Run(manifests)
}

// Run registers the content described by manifests. All entries are resolved
// before any is loaded. On error the returned *Error says where the run
// stopped and no result is returned.
func (p *Pipeline) Run(manifests []manifest.Descriptor) (*Result, error) {
	p.state = ManifestsDiscovered
	if p.loaders == nil {
		return nil, p.abort(&Error{State: p.state, Err: fmt.Errorf("no loader registry")})
	}
	p.logger.Debug("Manifests discovered.", "count", len(manifests))

	var entries []resolved
	for _, m := range manifests {
		for _, e := range m.Data {
			typ, err := p.loaders.ContentTypeOf(e.Loader)
			if err != nil {
				return nil, p.abort(&Error{State: p.state, Manifest: m.ID, Entry: e.Key, Err: err})
			}
			l, err := p.loaders.Resolve(e.Loader)
			if err != nil {
				return nil, p.abort(&Error{State: p.state, Manifest: m.ID, Entry: e.Key, Err: err})
			}
			entries = append(entries, resolved{
				manifest: m.ID,
				entry:    e,
				ctx:      loader.LoadContext{RootPath: m.Path, DataName: e.Key},
				loader:   l,
				typ:      typ,
			})
		}
	}
	p.state = EntriesResolved
	p.logger.Debug("Entries resolved.", "count", len(entries))

	c := content.NewCollection()
	result := &Result{Collection: c}
	for _, r := range entries {
		obj, err := r.loader.LoadObject(r.ctx)
		if err != nil {
			return nil, p.abort(&Error{State: p.state, Manifest: r.manifest, Entry: r.entry.Key, Err: err})
		}
		if content.IsNil(obj) {
			err := fmt.Errorf("loader %q returned no object", r.entry.Loader)
			return nil, p.abort(&Error{State: p.state, Manifest: r.manifest, Entry: r.entry.Key, Err: err})
		}

		if actual := obj.ContentType(); actual != r.typ {
			err := &MismatchError{Loader: r.entry.Loader, Declared: string(r.typ), Actual: string(actual), ID: obj.ContentID()}
			return nil, p.abort(&Error{State: p.state, Manifest: r.manifest, Entry: r.entry.Key, Err: err})
		}

		if err := c.Add(obj.ContentType(), obj); err != nil {
			p.logger.Warn("Content rejected.", "manifest", r.manifest, "entry", r.entry.Key, "error", err)
			result.Rejected = append(result.Rejected, &Error{State: p.state, Manifest: r.manifest, Entry: r.entry.Key, Err: err})
			continue
		}
		p.logger.Debug("Content registered.", "type", obj.ContentType(), "id", obj.ContentID(), "manifest", r.manifest, "entry", r.entry.Key)
	}
	p.state = ObjectsRegistered
	p.logger.Debug("Objects registered.", "registered", len(entries)-len(result.Rejected))

	p.state = Done
	p.logger.Info("Content loaded.", "manifests", len(manifests), "entries", len(entries), "types", len(c.Types()), "rejected", len(result.Rejected))
	return result, nil
}

func (p *Pipeline) abort(err *Error) error {
	p.state = Aborted
	p.logger.Debug("Content load aborted.", "state", err.State, "manifest", err.Manifest, "entry", err.Entry, "error", err.Err)
	return err
}
