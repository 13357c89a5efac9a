package renderer

import (
	"testing"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/integrator"
	"github.com/scifi6546/ray-tracing/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOneSphereWorld(t *testing.T) *scene.World {
	t.Helper()
	world, err := scene.NewOneSphereScene(1.0)
	require.NoError(t, err)
	return world
}

func TestRenderPixel_MissReturnsSky(t *testing.T) {
	world := newOneSphereWorld(t)
	pt := integrator.NewPathTracingIntegrator(world)
	sampler := core.NewSeededSampler(1, 2)

	// The image corners lie well outside the sphere's silhouette
	for _, st := range [][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		ray := world.Camera.GetRay(st[0], st[1], sampler)
		assert.Equal(t, scene.Sky{}.Color(ray), pt.RayColor(ray, sampler, 50))
	}

	rt := NewRaytracer(world, 40, 40, 7)
	corner := rt.RenderPixel(0, 0, 16, 50)
	center := world.Camera.GetRay(0.5/40, 1-0.5/40, sampler)
	assertColorNear(t, scene.Sky{}.Color(center), corner, 0.01)
}

func TestRenderPixel_SphereCenterIsTinted(t *testing.T) {
	world := newOneSphereWorld(t)
	rt := NewRaytracer(world, 40, 40, 7)

	color := rt.RenderPixel(20, 20, 64, 50)
	sky := scene.Sky{}.Color(world.Camera.GetRay(0.5, 0.5, core.NewSeededSampler(0, 0)))

	// Albedo (0.1, 0.2, 0.5) under a sky whose blue channel is 1 everywhere;
	// a convex sphere never shadows itself.
	assert.InDelta(t, 0.5, color.Z, 1e-6)
	assert.Greater(t, color.Z, color.Y)
	assert.Greater(t, color.Y, color.X)
	assert.Less(t, color.Luminance(), sky.Luminance())
	assert.Greater(t, color.Luminance(), 0.0)
}

func TestRenderPixel_Deterministic(t *testing.T) {
	world := newOneSphereWorld(t)

	a := NewRaytracer(world, 40, 40, 11).RenderPixel(21, 19, 8, 10)
	b := NewRaytracer(world, 40, 40, 11).RenderPixel(21, 19, 8, 10)
	c := NewRaytracer(world, 40, 40, 12).RenderPixel(21, 19, 8, 10)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestRenderPixel_NoSamples(t *testing.T) {
	rt := NewRaytracer(newOneSphereWorld(t), 4, 4, 0)
	assert.Equal(t, core.Vec3{}, rt.RenderPixel(2, 2, 0, 10))
	assert.Equal(t, 4, rt.Width())
	assert.Equal(t, 4, rt.Height())
}

func assertColorNear(t *testing.T, expected, actual core.Vec3, tolerance float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance, "red")
	assert.InDelta(t, expected.Y, actual.Y, tolerance, "green")
	assert.InDelta(t, expected.Z, actual.Z, tolerance, "blue")
}
