package renderer

import (
	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/integrator"
	"github.com/scifi6546/ray-tracing/pkg/scene"
)

// Raytracer turns pixel coordinates into radiance estimates for a world.
// It holds no mutable state, so one Raytracer is shared by every worker.
type Raytracer struct {
	world      *scene.World
	integrator integrator.Integrator
	width      int
	height     int
	seed       uint64
}

// NewRaytracer creates a raytracer for an image of width x height pixels.
// seed fixes the per-pixel random streams, so equal seeds give equal images.
func NewRaytracer(world *scene.World, width, height int, seed uint64) *Raytracer {
	return &Raytracer{
		world:      world,
		integrator: integrator.NewPathTracingIntegrator(world),
		width:      width,
		height:     height,
		seed:       seed,
	}
}

// Width returns the image width in pixels
func (rt *Raytracer) Width() int { return rt.width }

// Height returns the image height in pixels
func (rt *Raytracer) Height() int { return rt.height }

// RenderPixel returns the average of samplesPerPixel radiance estimates for pixel (x, y).
// Row 0 is the top of the image.
func (rt *Raytracer) RenderPixel(x, y, samplesPerPixel, maxDepth int) core.Vec3 {
	sum := rt.samplePixel(x, y, samplesPerPixel, maxDepth, 0)
	if samplesPerPixel <= 0 {
		return core.Vec3{}
	}
	return sum.Multiply(1.0 / float64(samplesPerPixel))
}

// samplePixel returns the sum of n estimates for pixel (x, y) drawn from the random
// stream of the given pass
func (rt *Raytracer) samplePixel(x, y, n, maxDepth, pass int) core.Vec3 {
	pixelIndex := y*rt.width + x
	sampler := core.NewSeededSampler(core.PixelSeed(rt.seed, pixelIndex, pass), uint64(pixelIndex))

	var sum core.Vec3
	for i := 0; i < n; i++ {
		jitter := sampler.Get2D()
		s := (float64(x) + jitter.X) / float64(rt.width)
		t := 1 - (float64(y)+jitter.Y)/float64(rt.height)

		ray := rt.world.Camera.GetRay(s, t, sampler)
		sum = sum.Add(rt.integrator.RayColor(ray, sampler, maxDepth))
	}
	return sum
}
