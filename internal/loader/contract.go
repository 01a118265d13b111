package loader

import (
	"path"

	"github.com/agentx-labs/contentx/internal/content"
	"github.com/agentx-labs/contentx/internal/resource"
)

// LoadContext locates the data for one manifest entry.
type LoadContext struct {
	RootPath string
	DataName string
}

// ResourceName composes the provider resource name "RootPath/DataName".
func (c LoadContext) ResourceName() string {
	if c.RootPath == "" {
		return c.DataName
	}
	return path.Join(c.RootPath, c.DataName)
}

// Loader is the type-erased contract invoked by the pipeline.
type Loader interface {
	LoadObject(ctx LoadContext) (content.Object, error)
}

// Typed is the strongly typed contract implemented per content kind.
type Typed[T content.Object] interface {
	Load(ctx LoadContext) (T, error)
}

// Producer declares the content type a loader produces.
type Producer interface {
	Produces() content.Type
}

// Templater is implemented by loaders that can hand out an empty object of
// the kind they load. Authoring tools use it to write new data files.
type Templater interface {
	NewObject() content.Object
}

// Wrapper is implemented by loader decorators to expose the loader they wrap.
type Wrapper interface {
	Unwrap() any
}

// Adapter lifts a Typed loader into the erased Loader contract.
type Adapter[T content.Object] struct {
	Kind  content.Kind[T]
	Typed Typed[T]
}

// Erase returns typed as a Loader producing kind.
func Erase[T content.Object](kind content.Kind[T], typed Typed[T]) *Adapter[T] {
	return &Adapter[T]{Kind: kind, Typed: typed}
}

// LoadObject implements Loader.
func (a *Adapter[T]) LoadObject(ctx LoadContext) (content.Object, error) {
	v, err := a.Load(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Produces implements Producer.
func (a *Adapter[T]) Produces() content.Type { return a.Kind.Type }

// Load implements Typed. A nil result without an error is reported as
// ErrNoObject.
func (a *Adapter[T]) Load(ctx LoadContext) (T, error) {
	v, err := a.Typed.Load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if content.IsNil(v) {
		var zero T
		return zero, &resource.LoadError{Resource: ctx.ResourceName(), Err: ErrNoObject}
	}
	return v, nil
}

// NewObject implements Templater.
func (a *Adapter[T]) NewObject() content.Object { return a.Kind.New() }
