package outcome

import "hash/maphash"

// Equal reports whether a and b are both successes carrying equal
// payloads. Two failures never compare equal, even when their failure
// payloads are identical. This is a different relation from the built-in
// == operator, which compares raw fields and has no failure rule.
func Equal[T comparable, E any](a, b Result[T, E]) bool {
	return a.isSuccess && b.isSuccess && a.value == b.value
}

// EqualFunc is Equal with a caller-supplied comparator, for success
// payload types that are not comparable. The failure rule is the same:
// failures never compare equal.
func EqualFunc[T, E any](a, b Result[T, E], eq func(T, T) bool) bool {
	return a.isSuccess && b.isSuccess && eq(a.value, b.value)
}

// Hash hashes the discriminant together with the success payload. Failure
// payloads do not participate: all failures of an instantiation hash
// alike, consistent with Equal.
func Hash[T comparable, E any](seed maphash.Seed, r Result[T, E]) uint64 {
	var value T
	if r.isSuccess {
		value = r.value
	}
	return maphash.Comparable(seed, struct {
		success bool
		value   T
	}{r.isSuccess, value})
}
