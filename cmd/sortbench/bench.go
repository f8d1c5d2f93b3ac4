package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorters"
)

const (
	algoStd       = "std"
	algoInsertion = "insertion"
	algoRadix     = "radix"

	insertionMaxCount = 50_000
)

var allAlgos = []string{algoStd, algoInsertion, algoRadix}

type benchConfig struct {
	Count    int
	PassBits int
	KeyBits  int
	Seed     uint64
	Algos    []string
}

// runBench generates cfg.Count random keys within the configured key width,
// sorts a fresh copy with each selected strategy, verifies the result, and
// logs per-strategy throughput. Verification failures accumulate and come back
// as a single error.
func runBench(cfg benchConfig, log *slog.Logger) error {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed<<1|1))

	mask := uint64(1)<<cfg.KeyBits - 1

	keys := make([]uint64, cfg.Count)
	for i := range keys {
		keys[i] = rng.Uint64() & mask
	}

	log.Info("generated keys",
		"count", humanize.Comma(int64(cfg.Count)),
		"key_bits", cfg.KeyBits,
		"seed", cfg.Seed,
	)

	var failures errors.Collection

	for _, algo := range cfg.Algos {
		input := capInput(algo, keys)
		if len(input) < len(keys) {
			log.Warn("capping quadratic sorter input",
				"algo", algo,
				"count", humanize.Comma(int64(len(input))),
			)
		}

		items := slices.Clone(input)

		start := time.Now()
		sorterFor(algo, cfg).Sort(items)
		elapsed := time.Since(start)

		if err := verifyOutput(algo, input, items); err != nil {
			failures.Add(err)

			log.Error("verification failed", "algo", algo, "error", err)

			continue
		}

		rate := float64(len(items)) / elapsed.Seconds()

		log.Info("sorted",
			"algo", algo,
			"count", humanize.Comma(int64(len(items))),
			"elapsed", elapsed,
			"keys_per_sec", humanize.CommafWithDigits(rate, 0),
		)
	}

	return failures.GetError()
}

// verifyOutput checks that got is sorted and holds exactly the input multiset:
// a sorter that dropped or duplicated keys could still produce a sorted slice,
// so order alone is not enough. Keys are plain uint64s, so comparing against a
// platform-sorted clone of the input is the cheapest exact check.
func verifyOutput(algo string, input, got []uint64) error {
	if !slices.IsSorted(got) {
		return fmt.Errorf("%w: %s", errors.ErrUnsorted, algo)
	}

	expected := slices.Clone(input)
	slices.Sort(expected)

	if !slices.Equal(expected, got) {
		return fmt.Errorf("%w: %s", errors.ErrMutated, algo)
	}

	return nil
}

// capInput truncates the workload for the quadratic sorter so an "all" run on
// the default count finishes in reasonable time.
func capInput(algo string, keys []uint64) []uint64 {
	if algo == algoInsertion && len(keys) > insertionMaxCount {
		return keys[:insertionMaxCount]
	}

	return keys
}

func sorterFor(algo string, cfg benchConfig) sorters.Sorter[uint64] {
	switch algo {
	case algoInsertion:
		return sorters.NewInsertion[uint64]()
	case algoRadix:
		return sorters.NewRadix[uint64](sorters.RadixConfig{
			PassBits: cfg.PassBits,
			KeyBits:  cfg.KeyBits,
		})
	default:
		return sorters.NewStd[uint64]()
	}
}
