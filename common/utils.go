package common

// Coalesce picks the first of the given values that is not the zero value of
// its type. If every value is zero (or none are given) it returns the zero
// value, which makes it useful for layering defaults under optional settings.
//
// Parameters:
//   - values: candidate values, highest priority first
//
// Returns:
//   - T: the first non-zero value, or the zero value of T
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
