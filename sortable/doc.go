// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use with the ordering-aware pieces of
// this module.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], and [String].
// [Ordering] turns any Sortable type into a comparator consumable by the
// comparison-based sorters (see [github.com/amp-labs/amp-sort/sorters]).
//
// The Sortable interface extends [github.com/amp-labs/amp-sort/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
// Use the provided wrapper types when a sorter needs an ordering for a
// primitive-backed type:
//
//	items := []sortable.Int{42, 10, 25}
//	sorters.NewInsertionFunc(sortable.Ordering[sortable.Int]()).Sort(items)
//	// items is now [10, 25, 42]
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. Sorting a slice of them mutates the slice, so concurrent
// sorts of the same slice require external synchronization.
package sortable
