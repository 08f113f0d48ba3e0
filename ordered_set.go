package collections

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OrderedSet is a set that remembers insertion order. Re-adding an element
// does not move it.
type OrderedSet[T comparable] struct {
	m *orderedmap.OrderedMap[T, struct{}]
}

func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{m: orderedmap.New[T, struct{}]()}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s *OrderedSet[T]) Add(t T) {
	s.m.Set(t, struct{}{})
}

func (s *OrderedSet[T]) Has(t T) bool {
	_, ok := s.m.Get(t)
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return s.m.Len()
}

// Values returns the elements in insertion order.
func (s *OrderedSet[T]) Values() []T {
	values := make([]T, 0, s.m.Len())
	for it := s.m.Oldest(); it != nil; it = it.Next() {
		values = append(values, it.Key)
	}
	return values
}
