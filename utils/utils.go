package utils

// Difference returns the elements of a that do not appear in b, preserving
// a's order. Duplicates in a are kept.
func Difference[T comparable](a, b []T) []T {
	exclude := make(map[T]struct{}, len(b))
	for _, v := range b {
		exclude[v] = struct{}{}
	}

	diff := make([]T, 0, len(a))
	for _, v := range a {
		if _, ok := exclude[v]; !ok {
			diff = append(diff, v)
		}
	}
	return diff
}
