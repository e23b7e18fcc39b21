package engine

import (
	"github.com/lixenwraith/star-fighter/core"
)

// Store holds one component type in a dense slice with an entity index.
// Iteration order follows insertion order; removal swaps the tail in,
// so order is stable only between mutations.
type Store[T any] struct {
	components []T
	entities   []core.Entity
	index      map[core.Entity]int
}

// NewStore creates an empty component store
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make([]T, 0, 64),
		entities:   make([]core.Entity, 0, 64),
		index:      make(map[core.Entity]int, 64),
	}
}

// Set adds or replaces the component for an entity
func (s *Store[T]) Set(e core.Entity, c T) {
	if i, ok := s.index[e]; ok {
		s.components[i] = c
		return
	}
	s.index[e] = len(s.components)
	s.components = append(s.components, c)
	s.entities = append(s.entities, e)
}

// Get returns the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if i, ok := s.index[e]; ok {
		return s.components[i], true
	}
	var zero T
	return zero, false
}

// Has reports whether the entity carries this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Remove deletes the component, swapping the last element into its slot
func (s *Store[T]) Remove(e core.Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.components) - 1
	if i != last {
		s.components[i] = s.components[last]
		s.entities[i] = s.entities[last]
		s.index[s.entities[i]] = i
	}
	s.components = s.components[:last]
	s.entities = s.entities[:last]
	delete(s.index, e)
}

// All returns the live entity list. Callers that destroy entities while
// iterating must collect first and mutate after.
func (s *Store[T]) All() []core.Entity {
	return s.entities
}

// Count returns the number of stored components
func (s *Store[T]) Count() int {
	return len(s.components)
}

// Clear removes all components
func (s *Store[T]) Clear() {
	s.components = s.components[:0]
	s.entities = s.entities[:0]
	clear(s.index)
}
