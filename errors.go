package collections

import "fmt"

// DuplicateElementError reports a distinctness violation: the first element
// whose key matched one already seen. Key is nil when the element itself was
// the comparison key.
type DuplicateElementError struct {
	Element any
	Key     any
}

var _ error = &DuplicateElementError{}

func (e *DuplicateElementError) Error() string {
	if e.Key == nil {
		return fmt.Sprintf("duplicate element: %v", e.Element)
	}
	return fmt.Sprintf("duplicate key %v produced by element %v", e.Key, e.Element)
}

// MissingKeyError reports a GetOrFail lookup of a key absent from the map.
type MissingKeyError struct {
	Key any
}

var _ error = &MissingKeyError{}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key not found: %v", e.Key)
}
