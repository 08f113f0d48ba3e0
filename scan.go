package collections

// scanKeys walks elems in order, deriving a key for each element and
// classifying it as a first occurrence or a repeat. onRepeat fires for every
// occurrence after the first of a given key, not once per distinct duplicate;
// returning false from it stops the scan immediately, which keeps the boolean
// distinctness checks O(first duplicate).
//
// The returned set holds every distinct key observed up to the point the scan
// stopped, in first-occurrence order.
func scanKeys[T any, K comparable](elems []T, key func(T) K, onRepeat func(elem T, k K) bool) *OrderedSet[K] {
	seen := NewOrderedSet[K]()
	for _, elem := range elems {
		k := key(elem)
		if seen.Has(k) {
			if !onRepeat(elem, k) {
				return seen
			}
		}
		seen.Add(k)
	}
	return seen
}

func identity[T comparable](t T) T {
	return t
}
