package ds

// Repeat returns n copies of initial.
func Repeat[T any](n int, initial T) []T {
	ts := make([]T, 0, max(n, 0))
	for i := 0; i < n; i++ {
		ts = append(ts, initial)
	}
	return ts
}
