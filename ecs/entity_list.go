package ecs

import "iter"

// EntityList is an ordered collection of entities.
type EntityList struct {
	entities []*Entity
}

// NewEntityList creates a list holding entities in the given order.
func NewEntityList(entities ...*Entity) *EntityList {
	l := &EntityList{entities: make([]*Entity, 0, len(entities))}
	for _, e := range entities {
		l.Add(e)
	}
	return l
}

// Add appends e to the list.
func (l *EntityList) Add(e *Entity) {
	if e == nil {
		return
	}
	l.entities = append(l.entities, e)
}

// Remove deletes the first occurrence of e, keeping the order of the rest.
// It reports whether e was found.
func (l *EntityList) Remove(e *Entity) bool {
	for i, cur := range l.entities {
		if cur == e {
			l.entities = append(l.entities[:i], l.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entities.
func (l *EntityList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entities)
}

// Entities returns the entities in insertion order. The slice is owned by the
// list.
func (l *EntityList) Entities() []*Entity {
	if l == nil {
		return nil
	}
	return l.entities
}

// Query yields, in insertion order, the entities holding every listed kind.
// Each call starts a fresh pass. The list must not be mutated while a pass is
// in progress.
func (l *EntityList) Query(kinds ...Kind) iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		if l == nil {
			return
		}
		for _, e := range l.entities {
			if e.Has(kinds...) && !yield(e) {
				return
			}
		}
	}
}

// First returns the first entity holding every listed kind.
func (l *EntityList) First(kinds ...Kind) (*Entity, bool) {
	for e := range l.Query(kinds...) {
		return e, true
	}
	return nil, false
}
