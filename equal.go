package collections

import (
	"github.com/sourcegraph/sourcegraph/lib/errors"
)

// AllAreEqual reports whether every element of elems equals the first one.
// Vacuously true for empty and single-element inputs; stops at the first
// mismatch.
func AllAreEqual[T comparable](elems []T) bool {
	if len(elems) < 2 {
		return true
	}
	first := elems[0]
	for _, elem := range elems[1:] {
		if elem != first {
			return false
		}
	}
	return true
}

// RequireAllAreEqual returns nil when AllAreEqual holds for elems, and an
// error carrying the whole collection otherwise.
func RequireAllAreEqual[T comparable](elems []T) error {
	if AllAreEqual(elems) {
		return nil
	}
	return errors.Newf("elements are not all equal: %v", elems)
}
