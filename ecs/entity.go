package ecs

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

var nextEntityID atomic.Uint64

// Entity is a bundle of components indexed by kind.
type Entity struct {
	ID    uint64
	comps [kindCount]Component
}

// NewEntity creates an entity holding comps. Later components replace
// earlier ones of the same kind.
func NewEntity(comps ...Component) *Entity {
	e := &Entity{ID: nextEntityID.Add(1)}
	for _, c := range comps {
		e.Add(c)
	}
	return e
}

func (e *Entity) String() string {
	return strconv.FormatUint(e.ID, 10)
}

// Add stores c, replacing any component of the same kind.
func (e *Entity) Add(c Component) {
	if c == nil {
		return
	}
	k := c.Kind()
	if !k.Valid() {
		panic(fmt.Sprintf("ecs: invalid component kind %d", k))
	}
	e.comps[k] = c
}

// Get returns the component of the given kind, if present.
func (e *Entity) Get(k Kind) (Component, bool) {
	if e == nil || !k.Valid() {
		return nil, false
	}
	c := e.comps[k]
	return c, c != nil
}

// MustGet returns the component of the given kind and panics when it is
// missing. Callers are expected to have checked Has or filtered via a query.
func (e *Entity) MustGet(k Kind) Component {
	c, ok := e.Get(k)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %d has no %s component", e.ID, k))
	}
	return c
}

// Has reports whether the entity holds every listed kind.
func (e *Entity) Has(kinds ...Kind) bool {
	if e == nil {
		return false
	}
	for _, k := range kinds {
		if !k.Valid() || e.comps[k] == nil {
			return false
		}
	}
	return true
}

// Remove drops the component of the given kind. Removing an absent kind is a
// no-op.
func (e *Entity) Remove(k Kind) {
	if e == nil || !k.Valid() {
		return
	}
	e.comps[k] = nil
}

// Get returns the component of type T held by e.
func Get[T Component](e *Entity) (T, bool) {
	var zero T
	c, ok := e.Get(zero.Kind())
	if !ok {
		return zero, false
	}
	v, ok := c.(T)
	return v, ok
}

// MustGet returns the component of type T held by e and panics when absent.
func MustGet[T Component](e *Entity) T {
	var zero T
	c := e.MustGet(zero.Kind())
	v, ok := c.(T)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %d: %s component has type %T", e.ID, zero.Kind(), c))
	}
	return v
}
