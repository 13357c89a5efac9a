package geometry

import (
	"math"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// hitSphere intersects a ray with a sphere at a given center, shared with MovingSphere
func hitSphere(center core.Vec3, radius float64, mat material.Material, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2ht + c = 0
	a := ray.Direction.LengthSquared()
	if a == 0 {
		return nil, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: mat,
	}

	// Outward normal (from center to hit point)
	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = sphereUV(outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to longitude/latitude texture coordinates
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1, min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius)), true
}

// Prob returns the density of sampling ray's direction with GenerateRayInArea.
// From outside the sphere directions are uniform within the subtended cone.
func (s *Sphere) Prob(ray core.Ray) float64 {
	distSq := s.Center.Subtract(ray.Origin).LengthSquared()
	if distSq <= s.Radius*s.Radius {
		return 1 / (4 * math.Pi)
	}
	if _, ok := s.Hit(ray, hitEpsilon, math.Inf(1)); !ok {
		return 0
	}
	return 1 / s.solidAngle(distSq)
}

// GenerateRayInArea samples a direction toward the visible cap of the sphere
func (s *Sphere) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	toCenter := s.Center.Subtract(origin)
	distSq := toCenter.LengthSquared()

	var direction core.Vec3
	var area float64
	if distSq <= s.Radius*s.Radius {
		direction = core.SampleOnUnitSphere(sampler.Get2D())
		area = 4 * math.Pi
	} else {
		direction = core.NewONB(toCenter).Local(core.SampleToSphere(s.Radius, distSq, sampler.Get2D())).Normalize()
		area = s.solidAngle(distSq)
	}

	ray := core.NewRayAtTime(origin, direction, time)
	normal := direction.Negate()
	if hit, ok := hitSphere(s.Center, s.Radius, nil, ray, 0, math.Inf(1)); ok {
		ray.Direction = hit.Point.Subtract(origin)
		normal = hit.Point.Subtract(s.Center).Multiply(1 / s.Radius)
	}

	return core.RayAreaInfo{
		ToArea:    ray,
		Direction: direction,
		Normal:    normal,
		Area:      area,
	}
}

// solidAngle returns the solid angle subtended by the sphere from distance sqrt(distSq)
func (s *Sphere) solidAngle(distSq float64) float64 {
	cosThetaMax := math.Sqrt(max(0, 1-s.Radius*s.Radius/distSq))
	return 2 * math.Pi * (1 - cosThetaMax)
}
