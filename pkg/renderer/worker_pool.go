package renderer

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs tile tasks on a bounded number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a pool with numWorkers goroutines, or one per CPU when numWorkers <= 0
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run calls task for every tile and waits for all of them. The first error,
// including a recovered panic, cancels the remaining tiles and is returned.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, task func(ctx context.Context, tile *Tile) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for _, tile := range tiles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = panicError(tile, r)
				}
			}()
			return task(gctx, tile)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// panicError converts a recovered panic into an error, keeping wrapped sentinels
// such as core.ErrUnsupported visible to errors.Is
func panicError(tile *Tile, r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("tile %d: %w", tile.ID, err)
	}
	return fmt.Errorf("tile %d: panic: %v", tile.ID, r)
}
