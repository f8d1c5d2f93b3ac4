// Package assert provides precondition assertions and type assertion utilities.
//
// The panic-based assertions (True, False, Nil, NotNil, Divides) enforce caller
// contracts at the point of violation. They can be compiled out with the
// "assertions_disabled" build tag, in which case a violated contract proceeds
// into undefined behavior instead of panicking.
package assert

import (
	"fmt"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/zero"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error indicating the mismatch.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return zero.Value[T](), fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}
