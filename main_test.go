package main

import (
	"bytes"
	"context"
	"flag"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/scifi6546/ray-tracing/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RendersEveryScene(t *testing.T) {
	for _, name := range scene.Names() {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "render.png")
			var logs bytes.Buffer

			err := run(context.Background(), []string{
				"-scene", name, "-width", "16", "-spp", "2", "-depth", "4",
				"-passes", "2", "-workers", "2", "-out", out,
			}, &bytes.Buffer{}, &logs)
			require.NoError(t, err)

			file, err := os.Open(out)
			require.NoError(t, err)
			defer file.Close()
			img, _, err := image.Decode(file)
			require.NoError(t, err)
			assert.Equal(t, 16, img.Bounds().Dx())
			assert.Contains(t, logs.String(), "render saved")
		})
	}
}

func TestParseConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.toml")
	require.NoError(t, os.WriteFile(path, []byte("scene = \"cornell\"\nwidth = 300\nsamples_per_pixel = 8\n"), 0644))

	cfg, verbose, err := parseConfig([]string{"-config", path, "-width", "120", "-v"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "cornell", cfg.Scene)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 8, cfg.SamplesPerPixel)
	assert.True(t, verbose)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"invalid value", []string{"-spp", "0"}, "samples per pixel must be positive"},
		{"unknown flag", []string{"-colour"}, "flag provided but not defined"},
		{"missing config file", []string{"-config", "does-not-exist.toml"}, "reading config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseConfig(tt.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	var stdout bytes.Buffer
	_, _, err := parseConfig([]string{"-help"}, &stdout)

	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stdout.String(), "Available scenes:")
	assert.Contains(t, stdout.String(), "cornell-smoke")
}

func TestRun_UnknownScene(t *testing.T) {
	err := run(context.Background(), []string{"-scene", "nonexistent", "-out", filepath.Join(t.TempDir(), "x.png")}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, scene.ErrUnknownScene)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "render.png")
	err := run(ctx, []string{"-width", "16", "-spp", "2", "-out", out}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, out)
}
