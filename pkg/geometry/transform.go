package geometry

import (
	"math"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// Translate moves an object by Offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate wraps object so that it appears displaced by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Unwrap returns the translated object
func (t *Translate) Unwrap() Hittable {
	return t.Object
}

func (t *Translate) toLocal(ray core.Ray) core.Ray {
	return core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
}

// Hit intersects the ray moved into the object's frame
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := t.Object.Hit(t.toLocal(ray), tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the object's box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

// Prob evaluates the object's density for the ray in the object's frame
func (t *Translate) Prob(ray core.Ray) float64 {
	return t.Object.Prob(t.toLocal(ray))
}

// GenerateRayInArea samples the object from origin moved into the object's frame
func (t *Translate) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	info := t.Object.GenerateRayInArea(origin.Subtract(t.Offset), time, sampler)
	info.ToArea.Origin = info.ToArea.Origin.Add(t.Offset)
	return info
}

// RotateY rotates an object about the Y axis
type RotateY struct {
	Object             Hittable
	sinTheta, cosTheta float64
}

// NewRotateY wraps object so that it appears rotated by angle degrees about +Y
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	return &RotateY{Object: object, sinTheta: math.Sin(radians), cosTheta: math.Cos(radians)}
}

// Unwrap returns the rotated object
func (r *RotateY) Unwrap() Hittable {
	return r.Object
}

// toLocal rotates a world vector by -θ
func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X-r.sinTheta*v.Z, v.Y, r.sinTheta*v.X+r.cosTheta*v.Z)
}

// toWorld rotates a local vector by +θ
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X+r.sinTheta*v.Z, v.Y, -r.sinTheta*v.X+r.cosTheta*v.Z)
}

func (r *RotateY) localRay(ray core.Ray) core.Ray {
	return core.NewRayAtTime(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)
}

// Hit intersects the ray rotated into the object's frame
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := r.Object.Hit(r.localRay(ray), tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box enclosing the rotated corners of the object's box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := r.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return transformBox(box, r.toWorld), true
}

// Prob evaluates the object's density for the ray in the object's frame
func (r *RotateY) Prob(ray core.Ray) float64 {
	return r.Object.Prob(r.localRay(ray))
}

// GenerateRayInArea samples the object from origin rotated into the object's frame
func (r *RotateY) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	info := r.Object.GenerateRayInArea(r.toLocal(origin), time, sampler)
	return core.RayAreaInfo{
		ToArea:    core.NewRayAtTime(r.toWorld(info.ToArea.Origin), r.toWorld(info.ToArea.Direction), time),
		Direction: r.toWorld(info.Direction),
		Normal:    r.toWorld(info.Normal),
		Area:      info.Area,
	}
}

// FlipNormals turns an object's surface inside out, so its front face becomes the back face
type FlipNormals struct {
	Object Hittable
}

// NewFlipNormals wraps object with its faces reversed
func NewFlipNormals(object Hittable) *FlipNormals {
	return &FlipNormals{Object: object}
}

// Unwrap returns the flipped object
func (f *FlipNormals) Unwrap() Hittable {
	return f.Object
}

// Hit reports the inner hit with the front face flag reversed.
// The normal keeps facing the incoming ray.
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := f.Object.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox returns the object's box
func (f *FlipNormals) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Object.BoundingBox(time0, time1)
}

// Prob returns the object's density
func (f *FlipNormals) Prob(ray core.Ray) float64 {
	return f.Object.Prob(ray)
}

// GenerateRayInArea samples the object and reverses the reported normal
func (f *FlipNormals) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	info := f.Object.GenerateRayInArea(origin, time, sampler)
	info.Normal = info.Normal.Negate()
	return info
}

// transformBox returns the axis-aligned box enclosing the eight mapped corners of box
func transformBox(box core.AABB, mapPoint func(core.Vec3) core.Vec3) core.AABB {
	result := core.EmptyAABB()
	for i := 0; i < 8; i++ {
		corner := core.NewVec3(
			pick(i&1 != 0, box.Max.X, box.Min.X),
			pick(i&2 != 0, box.Max.Y, box.Min.Y),
			pick(i&4 != 0, box.Max.Z, box.Min.Z),
		)
		p := mapPoint(corner)
		result = result.Union(core.NewAABB(p, p))
	}
	return result
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
