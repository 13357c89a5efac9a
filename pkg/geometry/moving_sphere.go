package geometry

import (
	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0
// to Center1 at Time1
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a sphere in linear motion
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// Center returns the sphere's center at the given time
func (s *MovingSphere) Center(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	f := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(f))
}

// Hit intersects the sphere at the position it occupies at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(s.Center(ray.Time), s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the box swept by the sphere over [time0, time1]
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	c0, c1 := s.Center(time0), s.Center(time1)
	box0 := core.NewAABB(c0.Subtract(radius), c0.Add(radius))
	box1 := core.NewAABB(c1.Subtract(radius), c1.Add(radius))
	return box0.Union(box1), true
}

// Prob is not supported for moving spheres
func (s *MovingSphere) Prob(ray core.Ray) float64 {
	unsupported("MovingSphere", "Prob")
	return 0
}

// GenerateRayInArea is not supported for moving spheres
func (s *MovingSphere) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	unsupported("MovingSphere", "GenerateRayInArea")
	return core.RayAreaInfo{}
}
