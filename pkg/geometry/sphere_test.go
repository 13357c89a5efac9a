package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphere_HitThroughCenter(t *testing.T) {
	tests := []struct {
		name     string
		center   core.Vec3
		radius   float64
		origin   core.Vec3
		expected float64
	}{
		{"unit sphere on -z", core.NewVec3(0, 0, -5), 1, core.Vec3{}, 4},
		{"small sphere far away", core.NewVec3(10, 0, 0), 0.5, core.NewVec3(-3, 0, 0), 12.5},
		{"diagonal", core.NewVec3(3, 3, 3), 2, core.NewVec3(-1, -1, -1), math.Sqrt(48) - 2},
	}

	lambertian := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, lambertian)
			toCenter := tt.center.Subtract(tt.origin)
			ray := core.NewRay(tt.origin, toCenter.Normalize())

			near, ok := sphere.Hit(ray, 0.001, math.Inf(1))
			require.True(t, ok)
			assert.InDelta(t, tt.expected, near.T, 1e-9)
			assert.True(t, near.FrontFace)
			assert.Same(t, lambertian, near.Material)

			// Starting just past the near hit finds the far side
			far, ok := sphere.Hit(ray, near.T+0.001, math.Inf(1))
			require.True(t, ok)
			assert.InDelta(t, toCenter.Length()+tt.radius, far.T, 1e-9)
			assert.False(t, far.FrontFace)
			assert.InDelta(t, -1.0, far.Normal.Dot(ray.Direction)/ray.Direction.Length(), 1e-9)
		})
	}
}

func TestSphere_OpenInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -2), 1, nil)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	_, ok := sphere.Hit(ray, 0, 1)
	assert.False(t, ok, "t equal to tMax is excluded")
	_, ok = sphere.Hit(ray, 1, 3)
	assert.False(t, ok, "both roots on the interval boundary are excluded")
	_, ok = sphere.Hit(core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, -1)), 0, math.Inf(1))
	assert.False(t, ok)
}

func TestSphere_UV(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1, nil)
	hit, ok := sphere.Hit(core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)), 0, math.Inf(1))
	require.True(t, ok)
	assert.InDelta(t, 1.0, hit.UV.Y, 1e-9, "north pole maps to v=1")
}

func TestSphere_ProbMatchesGenerate(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 5, 0), 1, nil)
	origin := core.Vec3{}
	sampler := core.NewSeededSampler(1, 1)
	expected := 1 / (2 * math.Pi * (1 - math.Sqrt(1-1.0/25)))

	for i := 0; i < 200; i++ {
		info := sphere.GenerateRayInArea(origin, 0, sampler)
		assert.InDelta(t, 1.0, info.Direction.Length(), 1e-9)
		assert.InDelta(t, 1.0/expected, info.Area, 1e-9)
		assert.InDelta(t, expected, sphere.Prob(core.NewRay(origin, info.Direction)), 1e-6)
		// The sampled point lies on the sphere
		assert.InDelta(t, 1.0, info.ToArea.At(1).Subtract(sphere.Center).Length(), 1e-6)
	}

	assert.Equal(t, 0.0, sphere.Prob(core.NewRay(origin, core.NewVec3(0, -1, 0))))
}

func TestSphere_ProbFromInside(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 2, nil)
	assert.InDelta(t, 1/(4*math.Pi), sphere.Prob(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0))), 1e-12)
	info := sphere.GenerateRayInArea(core.Vec3{}, 0, core.NewSeededSampler(2, 2))
	assert.InDelta(t, 2.0, info.ToArea.At(1).Length(), 1e-6)
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, -2), core.NewVec3(2, 0, -2), 0, 1, 0.5, nil)
	assertVecEqual(t, core.NewVec3(1, 0, -2), sphere.Center(0.5))

	ray := core.NewRayAtTime(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1), 1)
	hit, ok := sphere.Hit(ray, 0, math.Inf(1))
	require.True(t, ok)
	assert.InDelta(t, 1.5, hit.T, 1e-9)

	_, ok = sphere.Hit(core.NewRayAtTime(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1), 0), 0, math.Inf(1))
	assert.False(t, ok, "sphere has not arrived at time 0")

	box, ok := sphere.BoundingBox(0, 1)
	require.True(t, ok)
	assertVecEqual(t, core.NewVec3(-0.5, -0.5, -2.5), box.Min)
	assertVecEqual(t, core.NewVec3(2.5, 0.5, -1.5), box.Max)
}

func TestMovingSphere_LightSamplingUnsupported(t *testing.T) {
	sphere := NewMovingSphere(core.Vec3{}, core.NewVec3(1, 0, 0), 0, 1, 0.5, nil)
	assertUnsupported(t, func() { sphere.Prob(core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0))) })
	assertUnsupported(t, func() { sphere.GenerateRayInArea(core.NewVec3(5, 0, 0), 0, core.NewSeededSampler(0, 0)) })
}

func assertUnsupported(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error")
		assert.True(t, errors.Is(err, core.ErrUnsupported))
	}()
	fn()
}

func assertVecEqual(t *testing.T, expected, actual core.Vec3) {
	t.Helper()
	assert.InDelta(t, 0.0, expected.Subtract(actual).Length(), 1e-9, "expected %v, got %v", expected, actual)
}
