package content

import "reflect"

// Type is the stable token identifying a content kind (e.g. "weapon").
// It is a plain string so it can be persisted, compared and printed; it is
// never derived from the Go type system at runtime.
type Type string

func (t Type) String() string {
	return string(t)
}

// Object is the capability every loaded content payload exposes to the
// registry.
type Object interface {
	// ContentID returns the object's own id, the registry index within its type.
	ContentID() string
	// ContentType returns the token of the kind this object belongs to.
	ContentType() Type
}

// Kind ties a Type token to the Go type that carries it. Typed loaders and
// typed accessors are parameterized with a Kind rather than a bare token.
type Kind[T Object] struct {
	Type Type
	New  func() T
}

// NewKind returns a Kind for typ that constructs empty values with newFn.
func NewKind[T Object](typ Type, newFn func() T) Kind[T] {
	if typ == "" {
		panic("content: kind type must not be empty")
	}
	if newFn == nil {
		panic("content: kind " + string(typ) + " has no constructor")
	}
	return Kind[T]{Type: typ, New: newFn}
}

// IsNil reports whether obj is nil, including a nil pointer held in the
// interface.
func IsNil(obj Object) bool {
	if obj == nil {
		return true
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
