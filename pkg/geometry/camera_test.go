package geometry

import (
	"math"
	"testing"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/stretchr/testify/assert"
)

func testCameraConfig(aperture float64) CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(3, 3, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 16.0 / 9.0,
		Aperture:    aperture,
	}
}

func TestCamera_PinholeIsDeterministic(t *testing.T) {
	camera := NewCamera(testCameraConfig(0))
	sampler := core.NewSeededSampler(1, 0)

	first := camera.GetRay(0.3, 0.7, sampler)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, camera.GetRay(0.3, 0.7, sampler))
	}
}

func TestCamera_ApertureJittersOriginWithinLens(t *testing.T) {
	cfg := testCameraConfig(0.5)
	camera := NewCamera(cfg)
	sampler := core.NewSeededSampler(2, 0)

	first := camera.GetRay(0.5, 0.5, sampler)
	differing := 0
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		if ray.Origin != first.Origin {
			differing++
		}
		assert.Less(t, ray.Origin.Subtract(cfg.LookFrom).Length(), cfg.Aperture/2+1e-12)
	}
	assert.Greater(t, differing, 90)
}

func TestCamera_CenterRayHitsLookAt(t *testing.T) {
	for _, aperture := range []float64{0, 0.4} {
		cfg := testCameraConfig(aperture)
		camera := NewCamera(cfg)
		sampler := core.NewSeededSampler(3, 0)

		// Every lens sample converges on the look-at point, which lies on the focus plane
		for i := 0; i < 20; i++ {
			ray := camera.GetRay(0.5, 0.5, sampler)
			assertVecEqual(t, cfg.LookAt, ray.At(1))
		}
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	cfg := CameraConfig{
		LookFrom:    core.Vec3{},
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2,
	}
	camera := NewCamera(cfg)
	sampler := core.NewSeededSampler(0, 0)

	top := camera.GetRay(0.5, 1, sampler).Direction.Normalize()
	assert.InDelta(t, math.Pi/4, math.Acos(top.Dot(core.NewVec3(0, 0, -1))), 1e-9)
	right := camera.GetRay(1, 0.5, sampler).Direction
	assert.InDelta(t, 2.0, right.X, 1e-9)
}

func TestCamera_ShutterTime(t *testing.T) {
	cfg := testCameraConfig(0)
	cfg.Time0, cfg.Time1 = 0.25, 0.75
	camera := NewCamera(cfg)
	sampler := core.NewSeededSampler(4, 0)

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.1, 0.9, sampler)
		assert.GreaterOrEqual(t, ray.Time, 0.25)
		assert.Less(t, ray.Time, 0.75)
	}
}
