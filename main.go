package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/scifi6546/ray-tracing/pkg/config"
	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/renderer"
	"github.com/scifi6546/ray-tracing/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders one image as described by args, writing logs to logOut
func run(ctx context.Context, args []string, stdout, logOut io.Writer) error {
	cfg, verbose, err := parseConfig(args, stdout)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	width, height := cfg.Width, cfg.Height()
	log.Info("building scene", "scene", cfg.Scene, "width", width, "height", height)

	world, err := scene.Build(cfg.Scene, float64(width)/float64(height))
	if err != nil {
		return err
	}
	world, err = scene.Accelerate(world, core.NewSeededSampler(cfg.Seed, 0))
	if err != nil {
		return fmt.Errorf("accelerating scene %s: %w", cfg.Scene, err)
	}

	pr := renderer.NewProgressiveRaytracer(world, width, height, renderer.ProgressiveConfig{
		TileSize:           cfg.TileSize,
		MaxSamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:           cfg.MaxDepth,
		MaxPasses:          cfg.Passes,
		NumWorkers:         cfg.Workers,
		Seed:               cfg.Seed,
	}, renderer.NewSlogLogger(log.With("component", "renderer")))

	img, stats, err := pr.Render(ctx)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", cfg.Scene, err)
	}
	log.Info("render completed",
		"duration", stats.Duration,
		"samples", stats.TotalSamples,
		"average_luminance", renderer.AverageLuminance(pr.Film()))

	if err := renderer.SaveImage(cfg.Output, img); err != nil {
		return err
	}
	log.Info("render saved", "path", cfg.Output)
	return nil
}

// parseConfig loads the optional config file and applies the flags that were set on top of it
func parseConfig(args []string, stdout io.Writer) (config.Config, bool, error) {
	defaults := config.Default()
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stdout)

	configPath := fs.String("config", "", "Configuration file (.toml, .yaml or .yml)")
	sceneName := fs.String("scene", defaults.Scene, "Scene to render: "+strings.Join(scene.Names(), ", "))
	width := fs.Int("width", defaults.Width, "Image width in pixels")
	spp := fs.Int("spp", defaults.SamplesPerPixel, "Samples per pixel")
	depth := fs.Int("depth", defaults.MaxDepth, "Maximum ray bounce depth")
	passes := fs.Int("passes", defaults.Passes, "Number of progressive passes")
	workers := fs.Int("workers", defaults.Workers, "Number of parallel workers (0 = one per CPU)")
	seed := fs.Uint64("seed", defaults.Seed, "Base random seed")
	out := fs.String("out", defaults.Output, "Output image (.png, .jpg, .bmp or .tif)")
	verbose := fs.Bool("v", false, "Enable debug logging")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, false, err
	}
	if *help {
		fmt.Fprintln(stdout, "Progressive Raytracer")
		fmt.Fprintln(stdout, "Usage: raytracer [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Available scenes:")
		for _, name := range scene.Names() {
			fmt.Fprintf(stdout, "  %s\n", name)
		}
		return config.Config{}, false, flag.ErrHelp
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.Config{}, false, err
		}
		cfg = loaded
	}

	// Explicit flags win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneName
		case "width":
			cfg.Width = *width
		case "spp":
			cfg.SamplesPerPixel = *spp
		case "depth":
			cfg.MaxDepth = *depth
		case "passes":
			cfg.Passes = *passes
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		case "out":
			cfg.Output = *out
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, false, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, *verbose, nil
}
