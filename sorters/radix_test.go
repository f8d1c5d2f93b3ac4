package sorters_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorters"
)

func TestRadix_ReferenceScenario(t *testing.T) {
	t.Parallel()

	items := []uint32{170, 45, 75, 90, 802, 24, 2, 66}

	sorters.NewRadix[uint32](sorters.RadixConfig{PassBits: 4, KeyBits: 12}).Sort(items)

	assert.Equal(t, []uint32{2, 24, 45, 66, 75, 90, 170, 802}, items)
}

func TestRadix_KeyWidthMasksHighBits(t *testing.T) {
	t.Parallel()

	// With an 8-bit key, 802 sorts by its low byte (34); bits above KeyBits
	// never participate in the ordering.
	items := []uint32{170, 45, 75, 90, 802, 24, 2, 66}

	sorters.NewRadix[uint32](sorters.RadixConfig{PassBits: 4, KeyBits: 8}).Sort(items)

	assert.Equal(t, []uint32{2, 24, 802, 45, 66, 75, 90, 170}, items)
}

func TestRadix_RoundParity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      sorters.RadixConfig
		input    []uint32
		expected []uint32
	}{
		{
			name:     "even round count lands in place",
			cfg:      sorters.RadixConfig{PassBits: 4, KeyBits: 8},
			input:    []uint32{170, 45, 75, 90, 24, 2, 66},
			expected: []uint32{2, 24, 45, 66, 75, 90, 170},
		},
		{
			name:     "odd round count needs move-back",
			cfg:      sorters.RadixConfig{PassBits: 4, KeyBits: 4},
			input:    []uint32{9, 3, 15, 0, 7},
			expected: []uint32{0, 3, 7, 9, 15},
		},
		{
			name:     "three rounds",
			cfg:      sorters.RadixConfig{PassBits: 4, KeyBits: 12},
			input:    []uint32{4095, 0, 2048, 17, 256},
			expected: []uint32{0, 17, 256, 2048, 4095},
		},
		{
			name:     "single wide round",
			cfg:      sorters.RadixConfig{PassBits: 16, KeyBits: 16},
			input:    []uint32{65535, 1, 40000, 0},
			expected: []uint32{0, 1, 40000, 65535},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items := slices.Clone(tt.input)
			sorters.NewRadix[uint32](tt.cfg).Sort(items)

			assert.Equal(t, tt.expected, items)
		})
	}
}

func TestRadix_Boundaries(t *testing.T) {
	t.Parallel()

	s := sorters.NewRadix[uint32](sorters.RadixConfig{PassBits: 4, KeyBits: 8})

	var empty []uint32
	s.Sort(empty)
	assert.Nil(t, empty)

	zeroLen := []uint32{}
	s.Sort(zeroLen)
	assert.Empty(t, zeroLen)

	// A singleton still runs every round and must survive the ping-pong.
	singleton := []uint32{7}
	s.Sort(singleton)
	assert.Equal(t, []uint32{7}, singleton)
}

func TestRadix_AllKeysEqual(t *testing.T) {
	t.Parallel()

	// Full-range single bucket each round; relative order must not change.
	items := make([]record, 64)
	for i := range items {
		items[i] = record{Key: 0, Seq: i}
	}

	s := sorters.NewRadixFunc(sorters.RadixConfig{PassBits: 4, KeyBits: 16}, keyOf)
	s.Sort(items)

	assertStableByKey(t, items)
}

func TestRadix_Stable(t *testing.T) {
	t.Parallel()

	items := []record{
		{Key: 200, Seq: 0},
		{Key: 7, Seq: 1},
		{Key: 200, Seq: 2},
		{Key: 7, Seq: 3},
		{Key: 200, Seq: 4},
		{Key: 0, Seq: 5},
		{Key: 7, Seq: 6},
	}

	sorters.NewRadixFunc(sorters.RadixConfig{PassBits: 4, KeyBits: 8}, keyOf).Sort(items)

	assertStableByKey(t, items)
}

func TestRadixFunc_GetterExtraction(t *testing.T) {
	t.Parallel()

	items := []record{
		{Key: 900000, Seq: 0},
		{Key: 12, Seq: 1},
		{Key: 70000, Seq: 2},
		{Key: 3, Seq: 3},
	}

	sorters.NewRadixFunc(sorters.RadixConfig{PassBits: 8, KeyBits: 32}, keyOf).Sort(items)

	assert.Equal(t, []uint32{3, 12, 70000, 900000}, []uint32{
		items[0].Key, items[1].Key, items[2].Key, items[3].Key,
	})
}

func TestRadix_Uint8Keys(t *testing.T) {
	t.Parallel()

	items := []uint8{255, 0, 128, 1, 64}

	sorters.NewRadix[uint8](sorters.RadixConfig{PassBits: 4, KeyBits: 8}).Sort(items)

	assert.Equal(t, []uint8{0, 1, 64, 128, 255}, items)
}

func TestRadix_Uint64Keys(t *testing.T) {
	t.Parallel()

	items := []uint64{
		1 << 63,
		42,
		1<<40 + 5,
		0,
		1<<63 + 1,
	}

	sorters.NewRadix[uint64](sorters.RadixConfig{PassBits: 16, KeyBits: 64}).Sort(items)

	assert.Equal(t, []uint64{0, 42, 1<<40 + 5, 1 << 63, 1<<63 + 1}, items)
}

func TestRadix_Idempotent(t *testing.T) {
	t.Parallel()

	s := sorters.NewRadix[uint32](sorters.RadixConfig{PassBits: 8, KeyBits: 16})
	items := []uint32{500, 2, 65535, 300}

	s.Sort(items)
	sortedOnce := slices.Clone(items)
	s.Sort(items)

	assert.Equal(t, sortedOnce, items)
}

func TestRadix_PermutationInvariant(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(19, 23))

	items := make([]uint32, 2000)
	for i := range items {
		items[i] = rng.Uint32()
	}

	before := multisetFingerprint(items)
	sorters.NewRadix[uint32](sorters.RadixConfig{PassBits: 8, KeyBits: 32}).Sort(items)

	assert.Equal(t, before, multisetFingerprint(items))
	assert.True(t, slices.IsSorted(items))
}

func TestRadix_MatchesPlatformSort(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(29, 31))

	items := make([]uint32, 1000)
	for i := range items {
		items[i] = rng.Uint32()
	}

	expected := slices.Clone(items)
	slices.Sort(expected)

	sorters.NewRadix[uint32](sorters.RadixConfig{PassBits: 8, KeyBits: 32}).Sort(items)

	assert.Equal(t, expected, items)
}

func TestNewRadix_InvalidConfigPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  sorters.RadixConfig
	}{
		{
			name: "zero pass width",
			cfg:  sorters.RadixConfig{PassBits: 0, KeyBits: 8},
		},
		{
			name: "negative pass width",
			cfg:  sorters.RadixConfig{PassBits: -4, KeyBits: 8},
		},
		{
			name: "pass width too wide",
			cfg:  sorters.RadixConfig{PassBits: 17, KeyBits: 34},
		},
		{
			name: "zero key width",
			cfg:  sorters.RadixConfig{PassBits: 4, KeyBits: 0},
		},
		{
			name: "key width below pass width",
			cfg:  sorters.RadixConfig{PassBits: 8, KeyBits: 4},
		},
		{
			name: "key width too wide",
			cfg:  sorters.RadixConfig{PassBits: 1, KeyBits: 65},
		},
		{
			name: "key width not a multiple",
			cfg:  sorters.RadixConfig{PassBits: 4, KeyBits: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Panics(t, func() {
				sorters.NewRadix[uint32](tt.cfg)
			})
		})
	}
}

func TestRadixConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := []sorters.RadixConfig{
		{PassBits: 1, KeyBits: 1},
		{PassBits: 4, KeyBits: 8},
		{PassBits: 8, KeyBits: 64},
		{PassBits: 16, KeyBits: 16},
	}

	for _, cfg := range valid {
		assert.NoError(t, cfg.Validate(), "%+v", cfg)
	}

	invalid := []sorters.RadixConfig{
		{PassBits: 0, KeyBits: 8},
		{PassBits: -4, KeyBits: 8},
		{PassBits: 17, KeyBits: 34},
		{PassBits: 4, KeyBits: 0},
		{PassBits: 8, KeyBits: 4},
		{PassBits: 1, KeyBits: 65},
		{PassBits: 5, KeyBits: 64},
	}

	for _, cfg := range invalid {
		assert.ErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig, "%+v", cfg)
	}
}

func TestNewRadixFunc_NilGetterPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		sorters.NewRadixFunc[record, uint32](sorters.RadixConfig{PassBits: 4, KeyBits: 8}, nil)
	})
}
