package sorters

import (
	"cmp"

	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/compare"
)

// NewInsertion returns an insertion Sorter using the natural ascending order
// for T.
func NewInsertion[T cmp.Ordered]() Sorter[T] {
	return NewInsertionFunc(compare.Ascending[T]())
}

// NewInsertionFunc returns an insertion Sorter with an explicit comparator.
//
// Insertion sort runs in O(n²) worst case and O(n) on already-sorted input,
// uses O(1) extra space, and is stable. Stability is load-bearing: callers
// layering it over pre-bucketed data rely on equal elements keeping their
// relative order. A nil comparator is a contract violation caught at
// construction.
func NewInsertionFunc[T any](less compare.Less[T]) Sorter[T] {
	assert.True(less != nil, "insertion sorter requires a comparator")

	return insertion[T]{less: less}
}

type insertion[T any] struct {
	less compare.Less[T]
}

// Sort reorders items in place. Each element shifts left past strictly greater
// predecessors only, which is what keeps equal elements in their original
// relative order.
func (s insertion[T]) Sort(items []T) {
	for i := 1; i < len(items); i++ {
		value := items[i]

		j := i
		for ; j > 0 && s.less(value, items[j-1]); j-- {
			items[j] = items[j-1]
		}

		items[j] = value
	}
}
