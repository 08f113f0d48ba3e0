package collections

// RepeatingElements returns the elements that occur two or more times in
// elems. Each repeated element appears once in the result regardless of how
// many times it repeats. An empty input yields an empty set.
func RepeatingElements[T comparable](elems []T) Set[T] {
	seen := Set[T]{}
	repeats := Set[T]{}
	for _, elem := range elems {
		if seen.Has(elem) {
			repeats.Add(elem)
		}
		seen.Add(elem)
	}
	return repeats
}

// ToSetCheckingDistinct converts elems to a set, preserving input order, and
// fails with a *DuplicateElementError naming the first repeated element if
// elems contains any repeats. The scan stops at that first repeat.
func ToSetCheckingDistinct[T comparable](elems []T) (*OrderedSet[T], error) {
	var dupErr error
	seen := scanKeys(elems, identity[T], func(elem T, _ T) bool {
		dupErr = &DuplicateElementError{Element: elem}
		return false
	})
	if dupErr != nil {
		return nil, dupErr
	}
	return seen, nil
}

// AllAreDistinct reports whether no two elements of elems are equal. It stops
// scanning at the first duplicate found. Empty and single-element inputs are
// always distinct.
func AllAreDistinct[T comparable](elems []T) bool {
	return AllAreDistinctBy(elems, identity[T])
}

// AllAreDistinctBy reports whether key derives a different value for every
// element of elems. It stops scanning at the first duplicate key found.
func AllAreDistinctBy[T any, K comparable](elems []T, key func(T) K) bool {
	distinct := true
	scanKeys(elems, key, func(T, K) bool {
		distinct = false
		return false
	})
	return distinct
}

// RequireAllAreDistinct returns nil when no two elements of elems are equal,
// and a *DuplicateElementError naming the first repeated element otherwise.
func RequireAllAreDistinct[T comparable](elems []T) error {
	var dupErr error
	scanKeys(elems, identity[T], func(elem T, _ T) bool {
		dupErr = &DuplicateElementError{Element: elem}
		return false
	})
	return dupErr
}

// RequireAllAreDistinctBy returns nil when key derives a different value for
// every element of elems, and a *DuplicateElementError naming the first
// repeated key and the element that produced it otherwise.
func RequireAllAreDistinctBy[T any, K comparable](elems []T, key func(T) K) error {
	var dupErr error
	scanKeys(elems, key, func(elem T, k K) bool {
		dupErr = &DuplicateElementError{Element: elem, Key: k}
		return false
	})
	return dupErr
}
