package avlmap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajwerner/avlmap/internal/workload"
)

// TestWorkload runs randomized operation sequences against a reference model,
// checking every invariant after every step.
func TestWorkload(t *testing.T) {
	t.Parallel()
	for seed := int64(0); seed < 4; seed++ {
		stats, err := workload.Run(context.Background(), workload.Config{
			Seed:     seed,
			Ops:      10000,
			KeySpace: 1000,
		})
		require.NoError(t, err, "seed %d", seed)
		require.Positive(t, stats.Count(workload.OpEraseAt))
	}
}
