package content

import (
	"fmt"
	"iter"
)

// partition holds every object of one Type. order preserves insertion order
// so First and All are deterministic.
type partition struct {
	byID  map[string]Object
	order []string
}

// Collection is the type-partitioned, id-keyed store of loaded content.
type Collection struct {
	parts map[Type]*partition
	types []Type
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{
		parts: make(map[Type]*partition),
	}
}

// Add inserts obj under (typ, obj.ContentID()). A duplicate pair is rejected
// with a *DuplicateIDError and the collection is left unchanged.
func (c *Collection) Add(typ Type, obj Object) error {
	if obj == nil {
		panic(fmt.Sprintf("content: nil object added under type %q", typ))
	}
	id := obj.ContentID()
	if id == "" {
		return fmt.Errorf("content %s: %w", typ, ErrMissingID)
	}

	p, ok := c.parts[typ]
	if !ok {
		p = &partition{byID: make(map[string]Object)}
		c.parts[typ] = p
		c.types = append(c.types, typ)
	}
	if _, exists := p.byID[id]; exists {
		return &DuplicateIDError{Type: typ, ID: id}
	}

	p.byID[id] = obj
	p.order = append(p.order, id)
	return nil
}

// GetByID returns the object stored under (typ, id).
func (c *Collection) GetByID(typ Type, id string) (Object, error) {
	p, ok := c.parts[typ]
	if !ok {
		return nil, &LookupError{Type: typ, Err: ErrNotRegistered}
	}
	obj, ok := p.byID[id]
	if !ok {
		return nil, &LookupError{Type: typ, ID: id, Err: ErrNotFound}
	}
	return obj, nil
}

// First returns the first object inserted under typ.
func (c *Collection) First(typ Type) (Object, bool) {
	p, ok := c.parts[typ]
	if !ok || len(p.order) == 0 {
		return nil, false
	}
	return p.byID[p.order[0]], true
}

// All returns a sequence over every object of typ in insertion order. The
// sequence reads the partition lazily and can be ranged over repeatedly.
func (c *Collection) All(typ Type) iter.Seq[Object] {
	return func(yield func(Object) bool) {
		p, ok := c.parts[typ]
		if !ok {
			return
		}
		for _, id := range p.order {
			if !yield(p.byID[id]) {
				return
			}
		}
	}
}

// Len returns the number of objects stored under typ.
func (c *Collection) Len(typ Type) int {
	if p, ok := c.parts[typ]; ok {
		return len(p.order)
	}
	return 0
}

// Types returns the populated type tokens in the order they were first added.
func (c *Collection) Types() []Type {
	out := make([]Type, len(c.types))
	copy(out, c.types)
	return out
}
