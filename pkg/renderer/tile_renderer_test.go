package renderer

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 128, 64, 64, 2},
		{"partial edge tiles", 100, 70, 64, 4},
		{"single tile", 10, 10, 64, 1},
		{"zero tile size covers the image", 30, 20, 0, 1},
		{"empty image", 0, 0, 16, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			require.Len(t, tiles, tt.expectedTiles)

			// Tiles are disjoint and cover every pixel exactly once
			covered := make(map[image.Point]int)
			for i, tile := range tiles {
				assert.Equal(t, i, tile.ID)
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[image.Pt(x, y)]++
					}
				}
			}
			assert.Len(t, covered, tt.width*tt.height)
			for p, n := range covered {
				assert.Equal(t, 1, n, "pixel %v", p)
			}
		})
	}
}

func TestRenderTile_FillsOnlyItsBounds(t *testing.T) {
	rt := NewRaytracer(newOneSphereWorld(t), 8, 8, 3)
	film := NewFilm(8, 8)
	tile := &Tile{ID: 0, Bounds: image.Rect(2, 2, 5, 4)}

	err := NewTileRenderer(rt, film).RenderTile(context.Background(), tile, 2, 5, 1)
	require.NoError(t, err)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			expected := 0
			if image.Pt(x, y).In(tile.Bounds) {
				expected = 2
			}
			assert.Equal(t, expected, film.Samples(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestRenderTile_Cancelled(t *testing.T) {
	rt := NewRaytracer(newOneSphereWorld(t), 8, 8, 3)
	film := NewFilm(8, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewTileRenderer(rt, film).RenderTile(ctx, &Tile{Bounds: film.Bounds()}, 4, 5, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, collectStats(film, 0).TotalSamples)
}
