package compare

import "cmp"

// Less reports whether a logically precedes b. It is the comparator contract for
// the comparison-based sorters: an implementation must induce a strict weak
// ordering over its element type. That property is a caller contract and is
// never validated.
//
// Example:
//
//	byLength := compare.Less[string](func(a, b string) bool {
//	    return len(a) < len(b)
//	})
type Less[T any] func(a, b T) bool

// Ascending returns the natural less-than ordering for T.
// It is the default comparator wherever one is not supplied explicitly.
func Ascending[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool {
		return a < b
	}
}

// Descending returns the reverse of the natural ordering for T.
func Descending[T cmp.Ordered]() Less[T] {
	return Reverse(Ascending[T]())
}

// Reverse returns an ordering that inverts less: Reverse(less)(a, b) is
// less(b, a). Reversing twice yields the original ordering.
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}
