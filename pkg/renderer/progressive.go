package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/scene"
)

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize           int    // Size of each tile (64x64 recommended)
	MaxSamplesPerPixel int    // Total samples per pixel once every pass is done
	MaxDepth           int    // Maximum ray bounce depth
	MaxPasses          int    // Number of passes the samples are spread over
	NumWorkers         int    // Number of parallel workers (0 = use CPU count)
	Seed               uint64 // Base seed for the per-pixel random streams
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           64,
		MaxSamplesPerPixel: 100,
		MaxDepth:           50,
		MaxPasses:          4,
		NumWorkers:         0,
		Seed:               42,
	}
}

// ProgressiveRaytracer renders an image in passes that refine the same film
type ProgressiveRaytracer struct {
	config       ProgressiveConfig
	raytracer    *Raytracer
	film         *Film
	tiles        []*Tile
	tileRenderer *TileRenderer
	workerPool   *WorkerPool
	logger       core.Logger
	currentPass  int
}

// NewProgressiveRaytracer creates a progressive raytracer for world at width x height pixels
func NewProgressiveRaytracer(world *scene.World, width, height int, config ProgressiveConfig, logger core.Logger) *ProgressiveRaytracer {
	config.MaxPasses = max(config.MaxPasses, 1)
	raytracer := NewRaytracer(world, width, height, config.Seed)
	film := NewFilm(width, height)

	return &ProgressiveRaytracer{
		config:       config,
		raytracer:    raytracer,
		film:         film,
		tiles:        NewTileGrid(width, height, config.TileSize),
		tileRenderer: NewTileRenderer(raytracer, film),
		workerPool:   NewWorkerPool(config.NumWorkers),
		logger:       logger,
	}
}

// Film returns the film the passes accumulate into
func (pr *ProgressiveRaytracer) Film() *Film {
	return pr.film
}

// samplesForPass returns the total samples per pixel reached after passNumber passes
func (pr *ProgressiveRaytracer) samplesForPass(passNumber int) int {
	if passNumber >= pr.config.MaxPasses {
		return pr.config.MaxSamplesPerPixel
	}
	return pr.config.MaxSamplesPerPixel * passNumber / pr.config.MaxPasses
}

// RenderPass renders the next pass and returns the image accumulated so far
func (pr *ProgressiveRaytracer) RenderPass(ctx context.Context) (*image.RGBA, RenderStats, error) {
	pass := pr.currentPass + 1
	samples := pr.samplesForPass(pass) - pr.samplesForPass(pass-1)

	pr.logger.Printf("Pass %d: %d samples per pixel (using %d workers)...\n",
		pass, samples, pr.workerPool.NumWorkers())

	start := time.Now()
	if samples > 0 {
		err := pr.workerPool.Run(ctx, pr.tiles, func(ctx context.Context, tile *Tile) error {
			return pr.tileRenderer.RenderTile(ctx, tile, samples, pr.config.MaxDepth, pass)
		})
		if err != nil {
			return nil, RenderStats{}, fmt.Errorf("pass %d: %w", pass, err)
		}
	}
	pr.currentPass = pass

	stats := collectStats(pr.film, time.Since(start))
	pr.logger.Printf("Pass %d completed in %v (%.1f samples/pixel)\n",
		pass, stats.Duration, stats.AverageSamples)

	return pr.film.Image(), stats, nil
}

// Render runs every remaining pass and returns the final image
func (pr *ProgressiveRaytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	var img *image.RGBA
	var stats RenderStats
	start := time.Now()
	for pr.currentPass < pr.config.MaxPasses {
		var err error
		if img, stats, err = pr.RenderPass(ctx); err != nil {
			return nil, RenderStats{}, err
		}
	}
	stats.Duration = time.Since(start)
	return img, stats, nil
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	IsLast     bool
}

// RenderProgressive renders every remaining pass in the background, sending each
// result on the pass channel. Both channels are closed when rendering stops; at most
// one error is sent.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		pr.logger.Printf("Starting progressive rendering with %d passes...\n", pr.config.MaxPasses)

		for pr.currentPass < pr.config.MaxPasses {
			img, stats, err := pr.RenderPass(ctx)
			if err != nil {
				errChan <- err
				return
			}

			result := PassResult{
				PassNumber: pr.currentPass,
				Image:      img,
				Stats:      stats,
				IsLast:     pr.currentPass == pr.config.MaxPasses,
			}
			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return passChan, errChan
}
