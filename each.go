package floateq

// The helpers below apply an element comparison across arrays. Generated code
// passes arrays as slices (x[:]) so that one helper serves every length; a, b
// and a per-element maxDiff always have the same length there.

// EqEach reports whether eq holds for every element, with a tolerance per
// element. It is true for empty slices.
func EqEach[T, E any](a, b []T, maxDiff []E, eq func(T, T, E) bool) bool {
	for i := range a {
		if !eq(a[i], b[i], maxDiff[i]) {
			return false
		}
	}
	return true
}

// EqEachAll reports whether eq holds for every element, with one tolerance
// shared by all elements. It is true for empty slices.
func EqEachAll[T, E any](a, b []T, maxDiff E, eq func(T, T, E) bool) bool {
	for i := range a {
		if !eq(a[i], b[i], maxDiff) {
			return false
		}
	}
	return true
}

// DiffEach collects diff of every pair of elements.
func DiffEach[T, R any](a, b []T, diff func(T, T) R) []R {
	out := make([]R, len(a))
	for i := range a {
		out[i] = diff(a[i], b[i])
	}
	return out
}

// EpsilonEach collects eps of every pair of elements with their tolerance.
func EpsilonEach[T, E, R any](a, b []T, maxDiff []E, eps func(T, T, E) R) []R {
	out := make([]R, len(a))
	for i := range a {
		out[i] = eps(a[i], b[i], maxDiff[i])
	}
	return out
}

// EpsilonEachAll collects eps of every pair of elements with one shared
// tolerance.
func EpsilonEachAll[T, E, R any](a, b []T, maxDiff E, eps func(T, T, E) R) []R {
	out := make([]R, len(a))
	for i := range a {
		out[i] = eps(a[i], b[i], maxDiff)
	}
	return out
}
