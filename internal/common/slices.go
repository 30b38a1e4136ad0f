package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Duplicates returns the elements that occur more than once, in the order
// their second occurrence is seen.
func Duplicates[S ~[]E, E comparable](s S) []E {
	seen := make(map[E]int, len(s))

	var out []E

	for _, e := range s {
		seen[e]++
		if seen[e] == 2 {
			out = append(out, e)
		}
	}

	return out
}

// Intersect returns the elements of a that are also in b, in a's order,
// each at most once.
func Intersect[S ~[]E, E comparable](a, b S) []E {
	inB := make(map[E]struct{}, len(b))
	for _, e := range b {
		inB[e] = struct{}{}
	}

	var out []E

	for _, e := range a {
		if _, ok := inB[e]; ok {
			out = append(out, e)
			delete(inB, e)
		}
	}

	return out
}
