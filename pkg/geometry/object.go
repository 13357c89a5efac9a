package geometry

import (
	"math"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// Transform is a rigid transform: a rotation followed by a translation
type Transform struct {
	rotation    [3][3]float64 // row-major, orthonormal
	translation core.Vec3
}

// Identity returns the transform that leaves every point in place
func Identity() Transform {
	return Transform{rotation: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Translation returns a pure translation by offset
func Translation(offset core.Vec3) Transform {
	t := Identity()
	t.translation = offset
	return t
}

// RotationX returns a rotation of angle degrees about +X
func RotationX(angle float64) Transform {
	s, c := math.Sincos(angle * math.Pi / 180)
	return Transform{rotation: [3][3]float64{{1, 0, 0}, {0, c, -s}, {0, s, c}}}
}

// RotationY returns a rotation of angle degrees about +Y
func RotationY(angle float64) Transform {
	s, c := math.Sincos(angle * math.Pi / 180)
	return Transform{rotation: [3][3]float64{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}}
}

// RotationZ returns a rotation of angle degrees about +Z
func RotationZ(angle float64) Transform {
	s, c := math.Sincos(angle * math.Pi / 180)
	return Transform{rotation: [3][3]float64{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}}
}

// Then returns the transform that applies t first and next second
func (t Transform) Then(next Transform) Transform {
	var rotation [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				rotation[i][j] += next.rotation[i][k] * t.rotation[k][j]
			}
		}
	}
	return Transform{
		rotation:    rotation,
		translation: next.Vector(t.translation).Add(next.translation),
	}
}

// Vector rotates v without translating it
func (t Transform) Vector(v core.Vec3) core.Vec3 {
	r := &t.rotation
	return core.NewVec3(
		r[0][0]*v.X+r[0][1]*v.Y+r[0][2]*v.Z,
		r[1][0]*v.X+r[1][1]*v.Y+r[1][2]*v.Z,
		r[2][0]*v.X+r[2][1]*v.Y+r[2][2]*v.Z,
	)
}

// Point maps a local point to world space
func (t Transform) Point(p core.Vec3) core.Vec3 {
	return t.Vector(p).Add(t.translation)
}

// InverseVector rotates a world vector back into local space
func (t Transform) InverseVector(v core.Vec3) core.Vec3 {
	r := &t.rotation
	return core.NewVec3(
		r[0][0]*v.X+r[1][0]*v.Y+r[2][0]*v.Z,
		r[0][1]*v.X+r[1][1]*v.Y+r[2][1]*v.Z,
		r[0][2]*v.X+r[1][2]*v.Y+r[2][2]*v.Z,
	)
}

// InversePoint maps a world point back into local space
func (t Transform) InversePoint(p core.Vec3) core.Vec3 {
	return t.InverseVector(p.Subtract(t.translation))
}

// Object pairs a shape with the rigid transform that places it in the world
type Object struct {
	Shape     Hittable
	Transform Transform
}

// NewObject places shape in the world with transform
func NewObject(shape Hittable, transform Transform) *Object {
	return &Object{Shape: shape, Transform: transform}
}

// Unwrap returns the placed shape
func (o *Object) Unwrap() Hittable {
	return o.Shape
}

func (o *Object) localRay(ray core.Ray) core.Ray {
	return core.NewRayAtTime(o.Transform.InversePoint(ray.Origin), o.Transform.InverseVector(ray.Direction), ray.Time)
}

// Hit intersects the ray mapped into the shape's frame
func (o *Object) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := o.Shape.Hit(o.localRay(ray), tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = o.Transform.Point(hit.Point)
	hit.Normal = o.Transform.Vector(hit.Normal)
	return hit, true
}

// BoundingBox returns the box enclosing the transformed corners of the shape's box
func (o *Object) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := o.Shape.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return transformBox(box, o.Transform.Point), true
}

// Prob evaluates the shape's density for the ray in the shape's frame
func (o *Object) Prob(ray core.Ray) float64 {
	return o.Shape.Prob(o.localRay(ray))
}

// GenerateRayInArea samples the shape from origin mapped into the shape's frame
func (o *Object) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	info := o.Shape.GenerateRayInArea(o.Transform.InversePoint(origin), time, sampler)
	return core.RayAreaInfo{
		ToArea:    core.NewRayAtTime(o.Transform.Point(info.ToArea.Origin), o.Transform.Vector(info.ToArea.Direction), time),
		Direction: o.Transform.Vector(info.Direction),
		Normal:    o.Transform.Vector(info.Normal),
		Area:      info.Area,
	}
}
