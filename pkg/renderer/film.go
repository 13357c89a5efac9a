package renderer

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/scifi6546/ray-tracing/pkg/core"
)

// Film accumulates radiance samples per pixel in single precision.
// Workers may write concurrently as long as no two of them touch the same pixel.
type Film struct {
	width   int
	height  int
	accum   []float32 // RGB sums, three entries per pixel
	samples []int32
}

// NewFilm creates an empty film of width x height pixels
func NewFilm(width, height int) *Film {
	return &Film{
		width:   width,
		height:  height,
		accum:   make([]float32, 3*width*height),
		samples: make([]int32, width*height),
	}
}

// Bounds returns the pixel rectangle covered by the film
func (f *Film) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// Add records sum as the total of n samples taken for pixel (x, y)
func (f *Film) Add(x, y int, sum core.Vec3, n int) {
	i := y*f.width + x
	f.accum[3*i] += float32(sum.X)
	f.accum[3*i+1] += float32(sum.Y)
	f.accum[3*i+2] += float32(sum.Z)
	f.samples[i] += int32(n)
}

// Samples returns the number of samples recorded for pixel (x, y)
func (f *Film) Samples(x, y int) int {
	return int(f.samples[y*f.width+x])
}

// Color returns the average radiance of pixel (x, y), black before any sample
func (f *Film) Color(x, y int) core.Vec3 {
	i := y*f.width + x
	n := f.samples[i]
	if n == 0 {
		return core.Vec3{}
	}
	inv := 1 / float32(n)
	return core.NewVec3(
		float64(f.accum[3*i]*inv),
		float64(f.accum[3*i+1]*inv),
		float64(f.accum[3*i+2]*inv),
	)
}

// Image converts the film to 8-bit sRGB-ish output using gamma 2
func (f *Film) Image() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			img.SetRGBA(x, y, f.pixel(x, y))
		}
	}
	return img
}

// pixel gamma-corrects and clamps one pixel
func (f *Film) pixel(x, y int) color.RGBA {
	i := y*f.width + x
	n := f.samples[i]
	if n == 0 {
		return color.RGBA{A: 255}
	}
	inv := 1 / float32(n)
	return color.RGBA{
		R: toByte(f.accum[3*i] * inv),
		G: toByte(f.accum[3*i+1] * inv),
		B: toByte(f.accum[3*i+2] * inv),
		A: 255,
	}
}

// toByte maps linear radiance to an 8-bit channel. NaN maps to black.
func toByte(v float32) uint8 {
	if math32.IsNaN(v) {
		return 0
	}
	v = math32.Sqrt(math32.Max(v, 0))
	return uint8(256 * math32.Min(v, 0.999))
}
