package renderer

import (
	"context"
	"image"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image in row-major order
func NewTileGrid(width, height, tileSize int) []*Tile {
	if tileSize <= 0 {
		tileSize = max(width, height, 1)
	}

	var tiles []*Tile
	for y0 := 0; y0 < height; y0 += tileSize {
		for x0 := 0; x0 < width; x0 += tileSize {
			bounds := image.Rect(x0, y0, min(x0+tileSize, width), min(y0+tileSize, height))
			tiles = append(tiles, &Tile{ID: len(tiles), Bounds: bounds})
		}
	}
	return tiles
}

// TileRenderer renders the pixels of one tile into a shared film
type TileRenderer struct {
	raytracer *Raytracer
	film      *Film
}

// NewTileRenderer creates a tile renderer writing into film
func NewTileRenderer(raytracer *Raytracer, film *Film) *TileRenderer {
	return &TileRenderer{raytracer: raytracer, film: film}
}

// RenderTile adds samples estimates to every pixel of tile. Cancellation is
// checked between pixels, never inside one.
func (tr *TileRenderer) RenderTile(ctx context.Context, tile *Tile, samples, maxDepth, pass int) error {
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum := tr.raytracer.samplePixel(x, y, samples, maxDepth, pass)
			tr.film.Add(x, y, sum, samples)
		}
	}
	return nil
}
