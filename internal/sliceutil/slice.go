// Package sliceutil provides generic slice manipulation utilities.
package sliceutil

// Deduplicate removes items whose key was already seen, preserving order.
// Only the first occurrence of each key is kept.
//
// Example:
//
//	rooms := sliceutil.Deduplicate(schedules, func(s directory.Schedule) string { return s.Classroom })
func Deduplicate[T any, K comparable](items []T, keyFunc func(T) K) []T {
	if len(items) == 0 {
		return items
	}

	seen := make(map[K]struct{}, len(items))
	result := make([]T, 0, len(items))

	for _, item := range items {
		key := keyFunc(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, item)
	}

	return result
}

// Filter returns the items for which keep returns true, in order.
// The result never aliases items.
func Filter[T any](items []T, keep func(T) bool) []T {
	var result []T
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// Take returns at most the first n items. The result aliases items.
func Take[T any](items []T, n int) []T {
	if n <= 0 {
		return nil
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}
