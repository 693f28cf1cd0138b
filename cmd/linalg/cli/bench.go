// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/bench"
)

// Default sizes per representation when --size is 0. The decimal domain is
// roughly two orders of magnitude slower, so it gets a smaller matrix.
var defaultSizes = map[bench.Kind]int{
	bench.KindFloat:   1000,
	bench.KindDecimal: 100,
	bench.KindRaw:     1000,
}

func (a *app) benchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time matrix inversion and report GFLOP/s",
		Long: "Inverts fresh random matrices with entries in [-1, 1) and reports\n" +
			"the throughput against the nominal n·(2n + (n−1)·2n) operation count.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBench(cmd)
		},
	}

	kinds := make([]string, len(bench.Kinds))
	for i, k := range bench.Kinds {
		kinds[i] = string(k)
	}
	cmd.Flags().StringSlice(keyKinds, kinds, "representations to time: "+strings.Join(kinds, ", "))
	cmd.Flags().Int(keySize, 0, "matrix size n (0 uses 1000 for float/raw and 100 for decimal)")
	cmd.Flags().Int(keyRuns, 10, "inversions per representation")
	cmd.Flags().Uint64(keySeed, 0, "random seed (0 seeds from the clock)")

	return cmd
}

func (a *app) runBench(cmd *cobra.Command) error {
	names := a.v.GetStringSlice(keyKinds)
	kinds := make([]bench.Kind, 0, len(names))
	for _, name := range names {
		kind, err := bench.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		kinds = append(kinds, kind)
	}

	out := cmd.OutOrStdout()
	for _, kind := range kinds {
		size := a.v.GetInt(keySize)
		if size == 0 {
			size = defaultSizes[kind]
		}
		cfg := bench.Config{
			Kind: kind,
			Size: size,
			Runs: a.v.GetInt(keyRuns),
			Seed: a.v.GetUint64(keySeed),
		}

		a.log.Info("inverse benchmark", "kind", cfg.Kind, "size", cfg.Size, "runs", cfg.Runs)
		rep, err := bench.RunInverse(cmd.Context(), cfg)
		if err != nil {
			a.log.Error("inverse benchmark failed", "kind", cfg.Kind, "err", err)
			return err
		}
		if err = rep.Render(out); err != nil {
			return fmt.Errorf("render %s: %w", kind, err)
		}
		if best, ok := rep.Best(); ok {
			a.log.Info("inverse benchmark done", "kind", kind, "best", best.Elapsed, "gflops", best.GFLOPS(rep.FLOPs))
		}
	}

	return nil
}
