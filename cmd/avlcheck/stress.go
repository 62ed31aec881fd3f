package main

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajwerner/avlmap/internal/workload"
)

type stressConfiguration struct {
	Base       *baseConfiguration
	Seed       int64
	Ops        int
	KeySpace   int
	ClearEvery int
	Workers    int
}

func newStressCmd(config *baseConfiguration) *cobra.Command {
	sc := &stressConfiguration{Base: config}
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run randomized workloads, verifying the tree after every operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress(cmd, sc)
		},
	}
	cmd.Flags().Int64Var(&sc.Seed, "seed", time.Now().UnixNano(), "seed of the first worker, worker i uses seed+i")
	cmd.Flags().IntVar(&sc.Ops, "ops", 10000, "number of operations per worker")
	cmd.Flags().IntVar(&sc.KeySpace, "key-space", 1000, "keys are drawn from [0, key-space)")
	cmd.Flags().IntVar(&sc.ClearEvery, "clear-every", 0, "inverse probability of clearing the map, 0 disables")
	cmd.Flags().IntVar(&sc.Workers, "workers", 4, "number of independent workloads run in parallel")
	return cmd
}

func runStress(cmd *cobra.Command, sc *stressConfiguration) error {
	if sc.Workers <= 0 {
		return errors.Newf("workers must be positive, got %d", sc.Workers)
	}
	log := sc.Base.log
	g, ctx := errgroup.WithContext(cmd.Context())
	for i := 0; i < sc.Workers; i++ {
		cfg := workload.Config{
			Seed:       sc.Seed + int64(i),
			Ops:        sc.Ops,
			KeySpace:   sc.KeySpace,
			ClearEvery: sc.ClearEvery,
		}
		g.Go(func() error {
			start := time.Now()
			stats, err := workload.Run(ctx, cfg)
			if err != nil {
				log.Error().Err(err).Int64("seed", cfg.Seed).Msg("workload failed")
				return errors.Wrapf(err, "seed %d", cfg.Seed)
			}
			log.Info().
				Int64("seed", cfg.Seed).
				Int("ops", cfg.Ops).
				Int("inserts", stats.Count(workload.OpInsert)).
				Int("erases", stats.Count(workload.OpErase)+stats.Count(workload.OpEraseAt)).
				Int("max-len", stats.MaxLen).
				Int("max-height", stats.MaxHeight).
				Dur("took", time.Since(start)).
				Msg("workload passed")
			return nil
		})
	}
	return g.Wait()
}
