package vars

// FirstNonZero picks the first set value, ordered from most to least specific source.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
