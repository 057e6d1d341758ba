// Package fill provides functions for filling a range of a slice with a value.
//
// The range of all the functions is given by start and end, resolved against
// the length of the slice like this:
//
//   - A start of 0 means the beginning of the slice, an end of 0 means the end
//     of the slice.
//
//   - A negative index counts from the end of the slice, so -1 refers to the
//     last element.
//
// The resolved range is clamped to the bounds of the slice. An empty or
// inverted range leaves the slice unchanged.
package fill

import "maps"

// Fill assigns v to every element of s in the range, and returns s.
func Fill[S ~[]E, E any](s S, v E, start, end int) S {
	i, j := resolve(len(s), start, end)
	for ; i < j; i++ {
		s[i] = v
	}
	return s
}

// Unique assigns a distinct copy of v, made by calling clone, to every element
// of s in the range, and returns s. It is useful when E is a reference type
// and each element needs its own underlying storage.
func Unique[S ~[]E, E any](s S, v E, clone func(E) E, start, end int) S {
	i, j := resolve(len(s), start, end)
	for ; i < j; i++ {
		s[i] = clone(v)
	}
	return s
}

// CloneSlice returns a copy of s with its own backing array. It never returns
// nil.
func CloneSlice[S ~[]E, E any](s S) S {
	return append(make(S, 0, len(s)), s...)
}

// CloneMap returns a shallow copy of m. Unlike maps.Clone, it never returns
// nil.
func CloneMap[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return make(M)
	}
	return maps.Clone(m)
}

// ClonePtr returns a pointer to a shallow copy of *p. It returns nil if p is
// nil.
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func resolve(n, start, end int) (int, int) {
	start = resolveIndex(n, start, 0)
	end = resolveIndex(n, end, n)
	if start > end {
		return start, start
	}
	return start, end
}

func resolveIndex(n, i, zero int) int {
	switch {
	case i == 0:
		return zero
	case i < 0:
		i += n
	}
	return min(max(i, 0), n)
}
