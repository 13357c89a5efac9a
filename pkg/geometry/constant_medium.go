package geometry

import (
	"math"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// ConstantMedium is a participating medium of uniform density filling a closed boundary
type ConstantMedium struct {
	Boundary      Hittable
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium fills boundary with a medium of the given density and albedo
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropic(albedo),
		negInvDensity: -1 / density,
	}
}

// Unwrap returns the medium's boundary
func (m *ConstantMedium) Unwrap() Hittable {
	return m.Boundary
}

// Hit samples a scattering distance inside the boundary. The distance is drawn from a
// hash of the ray, so repeated queries with the same ray agree.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	enter, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, enter.T+hitEpsilon, math.Inf(1))
	if !ok {
		return nil, false
	}

	t0 := max(enter.T, tMin, 0)
	t1 := min(exit.T, tMax)
	if t0 >= t1 {
		return nil, false
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t1 - t0) * rayLength
	hitDistance := m.negInvDensity * math.Log(1-core.HashRay(ray))
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	if t <= tMin || t >= tMax {
		return nil, false
	}
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}

// Prob is not supported for participating media
func (m *ConstantMedium) Prob(ray core.Ray) float64 {
	unsupported("ConstantMedium", "Prob")
	return 0
}

// GenerateRayInArea is not supported for participating media
func (m *ConstantMedium) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	unsupported("ConstantMedium", "GenerateRayInArea")
	return core.RayAreaInfo{}
}
