// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-sort/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Ordering adapts a Sortable element type into a comparator usable with the
// comparison-based sorters.
//
// Example:
//
//	s := sorters.NewInsertionFunc(sortable.Ordering[sortable.Int]())
//	s.Sort(items)
func Ordering[T Sortable[T]]() compare.Less[T] {
	return func(a, b T) bool {
		return a.LessThan(b)
	}
}
