package sorters

import (
	"fmt"

	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/errors"
)

const (
	// minPassBits and maxPassBits bound the per-pass digit width. The upper
	// bound keeps the bucket table (1<<PassBits entries) at a sane size.
	minPassBits = 1
	maxPassBits = 16

	// maxKeyBits is the widest supported key; keys are widened to uint64
	// before shifting and masking.
	maxKeyBits = 64
)

// RadixConfig fixes the shape of a radix sorter at construction.
type RadixConfig struct {
	// PassBits is the number of key bits examined per counting pass,
	// between 1 and 16. Each pass uses a bucket table of 1<<PassBits entries.
	PassBits int

	// KeyBits is the total key width, an exact multiple of PassBits and at
	// most 64. KeyBits/PassBits passes are performed per Sort call. Keys may
	// be configured wider than the getter ever produces; the extra passes
	// see all-zero digits.
	KeyBits int
}

// Validate reports whether the config satisfies the construction contract.
// Callers taking pass and key widths from external input can check here first
// to surface a clean error instead of the constructor's panic.
func (c RadixConfig) Validate() error {
	switch {
	case c.PassBits < minPassBits || c.PassBits > maxPassBits:
		return fmt.Errorf("%w: pass width %d outside [%d, %d]",
			errors.ErrInvalidConfig, c.PassBits, minPassBits, maxPassBits)
	case c.KeyBits < c.PassBits || c.KeyBits > maxKeyBits:
		return fmt.Errorf("%w: key width %d outside [%d, %d]",
			errors.ErrInvalidConfig, c.KeyBits, c.PassBits, maxKeyBits)
	case c.KeyBits%c.PassBits != 0:
		return fmt.Errorf("%w: key width %d is not a multiple of pass width %d",
			errors.ErrInvalidConfig, c.KeyBits, c.PassBits)
	default:
		return nil
	}
}

// NewRadix returns a radix Sorter for slices whose elements are themselves the
// keys.
func NewRadix[K Uintish](cfg RadixConfig) Sorter[K] {
	return NewRadixFunc(cfg, Identity[K]())
}

// NewRadixFunc returns a least-significant-digit radix Sorter ordering elements
// by ascending key as extracted by getter.
//
// Sorting runs in O(n · KeyBits/PassBits) time and O(n) extra space, and is
// stable: elements with equal keys keep their relative order. Each Sort call
// allocates one scratch slice the length of the input; the scratch never
// escapes the call.
//
// An invalid config or a nil getter is a contract violation caught here, at
// construction. Sort performs no validation of its own.
func NewRadixFunc[T any, K Uintish](cfg RadixConfig, getter Getter[T, K]) Sorter[T] {
	assert.True(getter != nil, "radix sorter requires a getter")

	err := cfg.Validate()
	assert.Nil(err, "radix config rejected: %v", err)

	return &radix[T, K]{
		getter:   getter,
		passBits: uint(cfg.PassBits),
		passes:   cfg.KeyBits / cfg.PassBits,
		mask:     uint64(1)<<cfg.PassBits - 1,
	}
}

type radix[T any, K Uintish] struct {
	getter   Getter[T, K]
	passBits uint
	passes   int
	mask     uint64
}

// Sort reorders items in place by ascending key. Passes alternate between the
// caller's slice and a scratch slice of equal length; at every pass boundary
// the working data lives entirely in one of the two.
func (r *radix[T, K]) Sort(items []T) {
	if len(items) == 0 {
		return
	}

	aux := make([]T, len(items))
	src, dst := items, aux

	for pass := range r.passes {
		r.countingPass(src, dst, uint(pass)*r.passBits)
		src, dst = dst, src
	}

	// An odd pass count leaves the result in the scratch slice.
	if r.passes%2 == 1 {
		copy(items, aux)
	}
}

// countingPass distributes src into dst by the key digit at shift. Both loops
// walk src in order and bucket offsets grow monotonically, so elements within
// a bucket keep their source order; later passes rely on that to refine the
// ordering established by earlier ones.
func (r *radix[T, K]) countingPass(src, dst []T, shift uint) {
	counts := make([]int, 1<<r.passBits)

	for i := range src {
		counts[r.bucket(src[i], shift)]++
	}

	// Exclusive prefix sum: each bucket starts right after all lower buckets.
	total := 0
	for i, count := range counts {
		counts[i] = total
		total += count
	}

	for i := range src {
		b := r.bucket(src[i], shift)
		dst[counts[b]] = src[i]
		counts[b]++
	}
}

func (r *radix[T, K]) bucket(item T, shift uint) uint64 {
	return uint64(r.getter(item)) >> shift & r.mask
}
