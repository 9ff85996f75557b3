package utils

import "iter"

// Powerset yields every combination of items whose length lies in
// [minLen, maxLen], shortest first and in input order within a length.
// Equal values at different positions are distinct members. A negative
// maxLen means len(items). The sequence is lazy and can be ranged over
// any number of times; every yielded slice is freshly allocated.
func Powerset[T any](items []T, minLen, maxLen int) iter.Seq[[]T] {
	n := len(items)
	if maxLen < 0 || maxLen > n {
		maxLen = n
	}
	minLen = max(minLen, 0)

	return func(yield func([]T) bool) {
		for size := minLen; size <= maxLen; size++ {
			if !combinations(items, size, yield) {
				return
			}
		}
	}
}

// combinations yields the size-length combinations of items in
// lexicographic index order. It reports false if yield asked to stop.
func combinations[T any](items []T, size int, yield func([]T) bool) bool {
	n := len(items)
	indices := make([]int, size)
	for i := range indices {
		indices[i] = i
	}

	for {
		combo := make([]T, size)
		for i, idx := range indices {
			combo[i] = items[idx]
		}
		if !yield(combo) {
			return false
		}

		// Rightmost index that has not reached its final position
		i := size - 1
		for i >= 0 && indices[i] == i+n-size {
			i--
		}
		if i < 0 {
			return true
		}
		indices[i]++
		for j := i + 1; j < size; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}

// Intersection returns the values of a that are matched by a value of b,
// each value appearing min(count in a, count in b) times, in the order they
// occur in a.
func Intersection[T comparable](a, b []T) []T {
	available := tally(b)
	out := make([]T, 0, min(len(a), len(b)))
	for _, v := range a {
		if available[v] > 0 {
			available[v]--
			out = append(out, v)
		}
	}
	return out
}

// Difference returns a with one occurrence removed for every occurrence in
// b, so each value appears max(count in a - count in b, 0) times.
func Difference[T comparable](a, b []T) []T {
	removals := tally(b)
	out := make([]T, 0, len(a))
	for _, v := range a {
		if removals[v] > 0 {
			removals[v]--
			continue
		}
		out = append(out, v)
	}
	return out
}

// DifferenceSymmetric is Difference(a, b) followed by Difference(b, a).
func DifferenceSymmetric[T comparable](a, b []T) []T {
	return append(Difference(a, b), Difference(b, a)...)
}

// IsSubset reports whether a is a sub-multiset of b.
func IsSubset[T comparable](a, b []T) bool {
	available := tally(b)
	for _, v := range a {
		if available[v] == 0 {
			return false
		}
		available[v]--
	}
	return true
}

func tally[T comparable](items []T) map[T]int {
	counts := make(map[T]int, len(items))
	for _, v := range items {
		counts[v]++
	}
	return counts
}
