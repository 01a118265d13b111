package content

import (
	"fmt"
	"iter"
)

// Get returns the object of kind k with the given id as a T.
func Get[T Object](c *Collection, k Kind[T], id string) (T, error) {
	obj, err := c.GetByID(k.Type, id)
	if err != nil {
		var zero T
		return zero, err
	}
	return cast[T](k.Type, obj), nil
}

// FirstOf returns the first-inserted object of kind k as a T.
func FirstOf[T Object](c *Collection, k Kind[T]) (T, bool) {
	obj, ok := c.First(k.Type)
	if !ok {
		var zero T
		return zero, false
	}
	return cast[T](k.Type, obj), true
}

// AllOf returns every object of kind k as a T, in insertion order.
func AllOf[T Object](c *Collection, k Kind[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for obj := range c.All(k.Type) {
			if !yield(cast[T](k.Type, obj)) {
				return
			}
		}
	}
}

// cast is the one place a stored Object is converted to a concrete type.
// A mismatch means a kind was registered under another kind's token, which
// is a wiring bug, so it panics instead of handing back a zero value.
func cast[T Object](typ Type, obj Object) T {
	v, ok := obj.(T)
	if !ok {
		var want T
		panic(fmt.Sprintf("content: %s/%s is stored as %T, requested as %T", typ, obj.ContentID(), obj, want))
	}
	return v
}
