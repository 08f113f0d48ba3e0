// Package collections provides small generic helpers over slices, sets and
// maps: duplicate detection, distinctness checks, equality checks, and safe
// map lookup.
//
// All operations are pure functions over their inputs. Nothing in this
// package holds global state, so independent calls are safe from concurrent
// goroutines without coordination.
package collections

type Set[T comparable] map[T]struct{}

// NewSet builds a Set from the given items. Duplicates collapse silently;
// use ToSetCheckingDistinct to reject them instead.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(t T) bool {
	_, ok := s[t]
	return ok
}

func (s Set[T]) Add(t T) {
	s[t] = struct{}{}
}

func (s Set[T]) Remove(t T) {
	delete(s, t)
}

// Values returns the elements in unspecified order.
func (s Set[T]) Values() []T {
	values := make([]T, 0, len(s))
	for t := range s {
		values = append(values, t)
	}
	return values
}
