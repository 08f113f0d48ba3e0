package collections

// GetOrFail returns the value stored under key, or a *MissingKeyError naming
// the key when it is absent. Intended for maps whose value type does not
// itself encode absence, so that a missing key is never mistaken for a
// present-but-zero value.
func GetOrFail[K comparable, V any](m map[K]V, key K) (V, error) {
	v, ok := m[key]
	if !ok {
		var zero V
		return zero, &MissingKeyError{Key: key}
	}
	return v, nil
}
