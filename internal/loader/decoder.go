package loader

import (
	"errors"
	"fmt"

	"github.com/agentx-labs/contentx/internal/content"
	"github.com/agentx-labs/contentx/internal/resource"
)

// Decoder is the generic loader: it reads the resource named by the load
// context and decodes it into a fresh value of its kind. Concrete loaders
// usually embed a Decoder and add nothing else.
type Decoder[T content.Object] struct {
	Kind      content.Kind[T]
	Resources resource.Provider
}

// NewDecoder returns a Decoder for kind reading from res.
func NewDecoder[T content.Object](kind content.Kind[T], res resource.Provider) Decoder[T] {
	return Decoder[T]{Kind: kind, Resources: res}
}

// Load implements Typed.
func (d Decoder[T]) Load(ctx LoadContext) (T, error) {
	var zero T
	name := ctx.ResourceName()

	if d.Resources == nil {
		return zero, &resource.LoadError{Resource: name, Err: fmt.Errorf("%s loader has no resource provider", d.Kind.Type)}
	}

	text, err := d.Resources.ReadText(name)
	if err != nil {
		var le *resource.LoadError
		if !errors.As(err, &le) {
			err = &resource.LoadError{Resource: name, Err: err}
		}
		return zero, err
	}

	codec, err := resource.CodecFor(resource.FormatOf(d.Resources, name))
	if err != nil {
		return zero, &resource.LoadError{Resource: name, Err: err}
	}

	obj := d.Kind.New()
	if content.IsNil(obj) {
		return zero, &resource.LoadError{Resource: name, Err: ErrNoObject}
	}
	if err := codec.Unmarshal(text, obj); err != nil {
		return zero, &resource.LoadError{Resource: name, Err: fmt.Errorf("decoding %s: %w", d.Kind.Type, err)}
	}
	return obj, nil
}

// LoadObject implements Loader.
func (d Decoder[T]) LoadObject(ctx LoadContext) (content.Object, error) {
	v, err := d.Load(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Produces implements Producer.
func (d Decoder[T]) Produces() content.Type { return d.Kind.Type }

// NewObject implements Templater.
func (d Decoder[T]) NewObject() content.Object { return d.Kind.New() }
