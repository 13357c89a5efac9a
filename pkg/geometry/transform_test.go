package geometry

import (
	"math"
	"testing"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1, nil)
	moved := NewTranslate(sphere, core.NewVec3(0, 0, -5))

	hit, ok := moved.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	require.True(t, ok)
	assert.InDelta(t, 4.0, hit.T, 1e-9)
	assertVecEqual(t, core.NewVec3(0, 0, -4), hit.Point)
	assertVecEqual(t, core.NewVec3(0, 0, 1), hit.Normal)

	box, ok := moved.BoundingBox(0, 1)
	require.True(t, ok)
	assertVecEqual(t, core.NewVec3(-1, -1, -6), box.Min)

	info := moved.GenerateRayInArea(core.Vec3{}, 0, core.NewSeededSampler(1, 0))
	assertVecEqual(t, core.Vec3{}, info.ToArea.Origin)
	assert.InDelta(t, 1.0, info.ToArea.At(1).Subtract(core.NewVec3(0, 0, -5)).Length(), 1e-6)
	assert.InDelta(t, sphere.Prob(core.NewRay(core.NewVec3(0, 0, 5), info.Direction)), moved.Prob(core.NewRay(core.Vec3{}, info.Direction)), 1e-12)
}

func TestRotateY(t *testing.T) {
	// A unit rectangle facing +Z, rotated 90 degrees, faces +X
	rect := NewXYRect(-1, 1, -1, 1, 0, nil)
	rotated := NewRotateY(rect, 90)

	hit, ok := rotated.Hit(core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0)), 0.001, math.Inf(1))
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.T, 1e-9)
	assert.True(t, hit.FrontFace)
	assertVecEqual(t, core.NewVec3(1, 0, 0), hit.Normal)
	assertVecEqual(t, core.Vec3{}, hit.Point)

	_, ok = rotated.Hit(core.NewRay(core.NewVec3(5, 3, 0), core.NewVec3(-1, 0, 0)), 0.001, math.Inf(1))
	assert.False(t, ok)

	box, ok := rotated.BoundingBox(0, 1)
	require.True(t, ok)
	assert.InDelta(t, 1.0, box.Max.Z, 1e-9)
	assert.Less(t, box.Max.X, 0.01)
}

func TestRotateY_SamplingRoundTrip(t *testing.T) {
	light := NewRotateY(NewXZRect(-1, 1, -1, 1, 3, nil), 30)
	sampler := core.NewSeededSampler(5, 0)
	for i := 0; i < 50; i++ {
		info := light.GenerateRayInArea(core.Vec3{}, 0, sampler)
		assert.InDelta(t, 3.0, info.ToArea.At(1).Y, 1e-9)
		assert.Greater(t, light.Prob(core.NewRay(core.Vec3{}, info.Direction)), 0.0)
	}
}

func TestFlipNormals(t *testing.T) {
	rect := NewXZRect(-1, 1, -1, 1, 5, nil)
	flipped := NewFlipNormals(rect)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))

	plain, ok := rect.Hit(ray, 0.001, math.Inf(1))
	require.True(t, ok)
	hit, ok := flipped.Hit(ray, 0.001, math.Inf(1))
	require.True(t, ok)

	assert.False(t, plain.FrontFace)
	assert.True(t, hit.FrontFace)
	assertVecEqual(t, plain.Normal, hit.Normal)

	info := flipped.GenerateRayInArea(core.Vec3{}, 0, core.NewSeededSampler(0, 0))
	assertVecEqual(t, core.NewVec3(0, -1, 0), info.Normal)
	assert.Same(t, rect, flipped.Unwrap())
}

func TestObject_RigidTransform(t *testing.T) {
	transform := RotationY(90).Then(Translation(core.NewVec3(0, 0, -5)))
	object := NewObject(NewXYRect(-1, 1, -1, 1, 0, nil), transform)

	// +Z normal rotated about Y by 90 degrees points along +X
	assertVecEqual(t, core.NewVec3(1, 0, 0), transform.Vector(core.NewVec3(0, 0, 1)))
	p := core.NewVec3(0.3, -0.2, 0.7)
	assertVecEqual(t, p, transform.InversePoint(transform.Point(p)))

	hit, ok := object.Hit(core.NewRay(core.NewVec3(5, 0, -5), core.NewVec3(-1, 0, 0)), 0.001, math.Inf(1))
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.T, 1e-9)
	assertVecEqual(t, core.NewVec3(0, 0, -5), hit.Point)
	assertVecEqual(t, core.NewVec3(1, 0, 0), hit.Normal)

	box, ok := object.BoundingBox(0, 1)
	require.True(t, ok)
	assert.InDelta(t, -6.0, box.Min.Z, 1e-9)
	assert.InDelta(t, -4.0, box.Max.Z, 1e-9)
}

func TestObject_MatchesRotateYAndTranslate(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 1), nil)
	decorated := NewTranslate(NewRotateY(box, 25), core.NewVec3(3, 0, -2))
	object := NewObject(box, RotationY(25).Then(Translation(core.NewVec3(3, 0, -2))))
	sampler := core.NewSeededSampler(8, 0)

	for i := 0; i < 500; i++ {
		origin := sampler.Get3D().Multiply(10).Subtract(core.NewVec3(2, 5, 7))
		ray := core.NewRay(origin, core.SampleOnUnitSphere(sampler.Get2D()))
		a, okA := decorated.Hit(ray, 0.001, math.Inf(1))
		b, okB := object.Hit(ray, 0.001, math.Inf(1))
		require.Equal(t, okA, okB)
		if okA {
			assert.InDelta(t, a.T, b.T, 1e-9)
		}
	}
}

func TestContains(t *testing.T) {
	light := NewXZRect(-1, 1, -1, 1, 5, nil)
	other := NewSphere(core.Vec3{}, 1, nil)
	world := NewHittableList(other, NewTranslate(NewFlipNormals(light), core.NewVec3(1, 0, 0)))

	assert.True(t, Contains(world, light))
	assert.True(t, Contains(world, other))
	assert.False(t, Contains(world, NewSphere(core.Vec3{}, 1, nil)))
	assert.False(t, Contains(nil, light))
}
