package sorters

import (
	"cmp"
	"slices"

	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/compare"
)

// Delegate is the general-purpose sorting routine a Std sorter forwards to.
// It must reorder items in place so that less holds (or equivalence does) for
// every adjacent pair.
type Delegate[T any] func(items []T, less compare.Less[T])

// StdOption configures a Std sorter at construction.
type StdOption[T any] func(*std[T])

// WithDelegate replaces the platform sort with a caller-supplied routine.
// Tuning arguments for the underlying sort belong in the delegate's closure:
//
//	sorters.NewStd(sorters.WithDelegate(func(items []int, less compare.Less[int]) {
//	    sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
//	}))
func WithDelegate[T any](delegate Delegate[T]) StdOption[T] {
	return func(s *std[T]) {
		s.delegate = delegate
	}
}

// NewStd returns a Sorter that delegates to the platform comparison sort using
// the natural ascending order for T.
func NewStd[T cmp.Ordered](opts ...StdOption[T]) Sorter[T] {
	return NewStdFunc(compare.Ascending[T](), opts...)
}

// NewStdFunc is NewStd with an explicit comparator.
//
// The Sorter offers no correctness or stability guarantee of its own beyond
// that of its delegate. A nil comparator or a nil delegate is a contract
// violation caught at construction.
func NewStdFunc[T any](less compare.Less[T], opts ...StdOption[T]) Sorter[T] {
	assert.True(less != nil, "std sorter requires a comparator")

	s := &std[T]{
		less:     less,
		delegate: platformSort[T],
	}

	for _, opt := range opts {
		opt(s)
	}

	assert.True(s.delegate != nil, "std sorter requires a delegate")

	return s
}

type std[T any] struct {
	less     compare.Less[T]
	delegate Delegate[T]
}

// Sort reorders items in place by forwarding the slice and the configured
// comparator to the delegate verbatim.
func (s *std[T]) Sort(items []T) {
	s.delegate(items, s.less)
}

// platformSort adapts the two-way comparator onto slices.SortFunc, which wants
// a three-way comparison.
func platformSort[T any](items []T, less compare.Less[T]) {
	slices.SortFunc(items, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
}
