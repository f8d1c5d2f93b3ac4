// Package sorters provides interchangeable sorting strategies behind a common
// [Sorter] interface.
//
// # Overview
//
// Three strategies are available, each constructed once and reusable across
// calls:
//
//   - [NewStd] / [NewStdFunc]: a thin adapter over the platform comparison sort
//     (slices.SortFunc). Average O(n log n), not stable. The underlying routine
//     can be replaced with [WithDelegate].
//   - [NewInsertion] / [NewInsertionFunc]: classic insertion sort. O(n²) worst
//     case, O(n) on already-sorted input, O(1) extra space, stable. Best for
//     small or nearly sorted slices.
//   - [NewRadix] / [NewRadixFunc]: least-significant-digit radix sort over
//     unsigned keys extracted by a [Getter]. O(n · KeyBits/PassBits) time,
//     O(n) extra space, stable.
//
// Nothing in this package selects a strategy automatically; callers pick one.
//
// # Usage
//
//	// Comparison sorts take a comparator (defaulting to ascending order).
//	sorters.NewStd[int]().Sort(values)
//	sorters.NewInsertionFunc(byPriority).Sort(tasks)
//
//	// The radix sorter is shaped at construction and keyed by a getter.
//	s := sorters.NewRadixFunc(sorters.RadixConfig{PassBits: 8, KeyBits: 32},
//	    func(e Entity) uint32 { return e.ID })
//	s.Sort(entities)
//
// # Preconditions
//
// Constructors panic on contract violations (nil comparator or getter, invalid
// [RadixConfig]); the earliest possible point, so a constructed Sorter never
// fails at call time. Sort itself returns no errors and performs no validation.
package sorters
