// sortbench benchmarks the sorting strategies against each other on randomly
// generated keys and verifies their output along the way.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/amp-labs/amp-sort/sorters"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("sortbench failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "sortbench",
		Usage: "benchmark and verify the amp-sort sorting strategies",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "count",
				Value: 1_000_000,
				Usage: "number of keys to sort",
			},
			&cli.IntFlag{
				Name:  "pass-bits",
				Value: 8,
				Usage: "radix sorter digit width in bits",
			},
			&cli.IntFlag{
				Name:  "key-bits",
				Value: 64,
				Usage: "radix sorter key width in bits",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "random generator seed",
			},
			&cli.StringFlag{
				Name:  "algo",
				Value: "all",
				Usage: "comma-separated subset of std,insertion,radix, or all",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "log in JSON",
			},
		},
		Action: func(cCtx *cli.Context) error {
			algos, err := parseAlgos(cCtx.String("algo"))
			if err != nil {
				return err
			}

			cfg := benchConfig{
				Count:    cCtx.Int("count"),
				PassBits: cCtx.Int("pass-bits"),
				KeyBits:  cCtx.Int("key-bits"),
				Seed:     cCtx.Uint64("seed"),
				Algos:    algos,
			}

			// Flag mistakes surface as a CLI error here; past this point an
			// invalid radix shape would panic in the constructor.
			if slices.Contains(algos, algoRadix) {
				radixCfg := sorters.RadixConfig{PassBits: cfg.PassBits, KeyBits: cfg.KeyBits}
				if err := radixCfg.Validate(); err != nil {
					return err
				}
			}

			log := newLogger(cCtx.Bool("json")).With("run_id", uuid.New().String())

			return runBench(cfg, log)
		},
	}
}

func newLogger(json bool) *slog.Logger {
	if json {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func parseAlgos(value string) ([]string, error) {
	if value == "all" {
		return slices.Clone(allAlgos), nil
	}

	var algos []string

	for _, algo := range strings.Split(value, ",") {
		algo = strings.TrimSpace(algo)

		if !slices.Contains(allAlgos, algo) {
			return nil, fmt.Errorf("unknown algorithm %q", algo)
		}

		algos = append(algos, algo)
	}

	return algos, nil
}
