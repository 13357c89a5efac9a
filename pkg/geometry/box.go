package geometry

import (
	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// Box is an axis-aligned box made of six rectangles with outward-facing normals
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates the box spanning the corners p0 and p1
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	bounds := core.NewAABBFromPoints(p0, p1)
	lo, hi := bounds.Min, bounds.Max

	sides := NewHittableList(
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, hi.Z, mat),
		NewFlipNormals(NewXYRect(lo.X, hi.X, lo.Y, hi.Y, lo.Z, mat)),
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, hi.Y, mat),
		NewFlipNormals(NewXZRect(lo.X, hi.X, lo.Z, hi.Z, lo.Y, mat)),
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, hi.X, mat),
		NewFlipNormals(NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, lo.X, mat)),
	)

	return &Box{Min: lo, Max: hi, sides: sides}
}

// Children returns the six faces
func (b *Box) Children() []Hittable {
	return b.sides.Objects
}

// Hit tests the ray against the box faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Cheap rejection before testing all six faces
	if !core.NewAABB(b.Min, b.Max).Expand(rectThickness).Hit(ray, tMin, tMax) {
		return nil, false
	}
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}

// Prob averages the densities of the faces
func (b *Box) Prob(ray core.Ray) float64 {
	return b.sides.Prob(ray)
}

// GenerateRayInArea samples a point on one of the faces
func (b *Box) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	return b.sides.GenerateRayInArea(origin, time, sampler)
}
