package sorters

// Sorter sorts a slice in place. Implementations are interchangeable and differ
// only in strategy; every implementation treats a nil or empty slice as a no-op.
//
// A Sorter holds no state across calls, so a single value may be used from
// multiple goroutines as long as each call operates on a distinct slice.
type Sorter[T any] interface {
	Sort(items []T)
}

// Uintish is the set of unsigned integer types usable as radix sort keys.
type Uintish interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// Getter extracts the sort key from an element. The radix sorter orders
// elements by ascending extracted key.
type Getter[T any, K Uintish] func(item T) K

// Identity returns a Getter for slices whose elements are themselves the keys.
func Identity[K Uintish]() Getter[K, K] {
	return func(item K) K {
		return item
	}
}
