package geometry

import (
	"math"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// rectThickness pads the flat axis of a rectangle's bounding box
const rectThickness = 0.0001

// Rect is an axis-aligned rectangle lying in the plane axisK = K and spanning
// [A0, A1] x [B0, B1] along the two other axes. Its outward normal points along +K.
type Rect struct {
	A0, A1, B0, B1 float64
	K              float64
	Material       material.Material

	axisA, axisB, axisK int
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *Rect {
	return &Rect{A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material, axisA: 0, axisB: 1, axisK: 2}
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *Rect {
	return &Rect{A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material, axisA: 0, axisB: 2, axisK: 1}
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *Rect {
	return &Rect{A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material, axisA: 1, axisB: 2, axisK: 0}
}

// Normal returns the rectangle's outward normal
func (r *Rect) Normal() core.Vec3 {
	return core.Vec3{}.WithAxis(r.axisK, 1)
}

// Area returns the rectangle's surface area
func (r *Rect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// point builds a world-space point from in-plane coordinates
func (r *Rect) point(a, b float64) core.Vec3 {
	return core.Vec3{}.WithAxis(r.axisA, a).WithAxis(r.axisB, b).WithAxis(r.axisK, r.K)
}

// Hit tests if a ray intersects with the rectangle
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	dk := ray.Direction.Axis(r.axisK)
	// Parallel rays never cross the plane
	if dk == 0 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(r.axisK)) / dk
	if t <= tMin || t >= tMax {
		return nil, false
	}

	a := ray.Origin.Axis(r.axisA) + t*ray.Direction.Axis(r.axisA)
	b := ray.Origin.Axis(r.axisB) + t*ray.Direction.Axis(r.axisB)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    r.point(a, b),
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, r.Normal())

	return hitRecord, true
}

// BoundingBox returns the rectangle's box, padded along its flat axis
func (r *Rect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		r.point(r.A0, r.B0).WithAxis(r.axisK, r.K-rectThickness),
		r.point(r.A1, r.B1).WithAxis(r.axisK, r.K+rectThickness),
	), true
}

// Prob converts the uniform area density of the rectangle to solid angle at ray's origin
func (r *Rect) Prob(ray core.Ray) float64 {
	hit, ok := r.Hit(ray, hitEpsilon, math.Inf(1))
	if !ok {
		return 0
	}

	length := ray.Direction.Length()
	distanceSquared := hit.T * hit.T * ray.Direction.LengthSquared()
	cosine := math.Abs(ray.Direction.Axis(r.axisK)) / length
	if cosine == 0 {
		return 0
	}

	return distanceSquared / (cosine * r.Area())
}

// GenerateRayInArea samples a point uniformly on the rectangle
func (r *Rect) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	s := sampler.Get2D()
	target := r.point(r.A0+s.X*(r.A1-r.A0), r.B0+s.Y*(r.B1-r.B0))
	toTarget := target.Subtract(origin)

	return core.RayAreaInfo{
		ToArea:    core.NewRayAtTime(origin, toTarget, time),
		Direction: toTarget.Normalize(),
		Normal:    r.Normal(),
		Area:      r.Area(),
	}
}
