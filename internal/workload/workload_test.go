package workload

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  Config
	}{
		{"dense", Config{Seed: 1, Ops: 10000, KeySpace: 64}},
		{"sparse", Config{Seed: 2, Ops: 10000, KeySpace: 1 << 20}},
		{"clearing", Config{Seed: 3, Ops: 5000, KeySpace: 512, ClearEvery: 500}},
		{"empty", Config{Seed: 4, Ops: 0, KeySpace: 1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			stats, err := Run(context.Background(), tc.cfg)
			require.NoError(t, err)
			total := 0
			for op := OpInsert; op < numOps; op++ {
				total += stats.Count(op)
			}
			assert.Equal(t, tc.cfg.Ops, total)
			assert.LessOrEqual(t, stats.FinalLen, stats.MaxLen)
			assert.LessOrEqual(t, stats.MaxLen, tc.cfg.KeySpace)
		})
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := Config{Seed: 42, Ops: 2000, KeySpace: 300}
	a, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	b, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRunInvalid(t *testing.T) {
	_, err := Run(context.Background(), Config{Ops: 10})
	require.Error(t, err)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Config{Ops: 10, KeySpace: 10})
	require.ErrorIs(t, err, context.Canceled)
}

func TestOpString(t *testing.T) {
	require.Equal(t, "erase-at", OpEraseAt.String())
	require.Equal(t, "Op(42)", Op(42).String())
}
