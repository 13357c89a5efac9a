package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_RunsEveryTile(t *testing.T) {
	tiles := NewTileGrid(100, 100, 10)
	pool := NewWorkerPool(4)

	var count atomic.Int32
	seen := make([]atomic.Bool, len(tiles))
	err := pool.Run(context.Background(), tiles, func(ctx context.Context, tile *Tile) error {
		count.Add(1)
		seen[tile.ID].Store(true)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int32(len(tiles)), count.Load())
	for i := range seen {
		assert.True(t, seen[i].Load(), "tile %d", i)
	}
}

func TestWorkerPool_DefaultsToCPUCount(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), NewWorkerPool(0).NumWorkers())
	assert.Equal(t, 3, NewWorkerPool(3).NumWorkers())
}

func TestWorkerPool_Errors(t *testing.T) {
	errBoom := errors.New("boom")
	tests := []struct {
		name   string
		task   func(tile *Tile) error
		target error
		msg    string
	}{
		{
			name:   "returned error",
			task:   func(tile *Tile) error { return errBoom },
			target: errBoom,
		},
		{
			name: "panic with error keeps the sentinel",
			task: func(tile *Tile) error {
				panic(fmt.Errorf("ConstantMedium.Prob: %w", core.ErrUnsupported))
			},
			target: core.ErrUnsupported,
		},
		{
			name: "panic with a value",
			task: func(tile *Tile) error {
				panic("bad")
			},
			msg: "panic: bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(1, 1, 1)
			err := NewWorkerPool(2).Run(context.Background(), tiles, func(ctx context.Context, tile *Tile) error {
				return tt.task(tile)
			})

			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestWorkerPool_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWorkerPool(2).Run(ctx, NewTileGrid(64, 64, 8), func(ctx context.Context, tile *Tile) error {
		return ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
}
