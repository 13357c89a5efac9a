package geometry

import (
	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// HittableList is an unaccelerated collection of objects tested linearly
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list holding objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Children returns the list's members
func (l *HittableList) Children() []Hittable {
	return l.Objects
}

// Hit returns the closest hit among all members. On exactly equal t the
// earlier member wins.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitClosest(l.Objects, ray, tMin, tMax)
}

func hitClosest(objects []Hittable, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, object := range objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of every member's box. An empty list or any
// unbounded member makes the list unbounded.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return unionBoxes(l.Objects, time0, time1)
}

func unionBoxes(objects []Hittable, time0, time1 float64) (core.AABB, bool) {
	if len(objects) == 0 {
		return core.AABB{}, false
	}
	box := core.EmptyAABB()
	for _, object := range objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		box = box.Union(objectBox)
	}
	return box, true
}

// Prob averages the members' densities, matching the uniform member choice of GenerateRayInArea
func (l *HittableList) Prob(ray core.Ray) float64 {
	return averageProb(l.Objects, ray)
}

func averageProb(objects []Hittable, ray core.Ray) float64 {
	if len(objects) == 0 {
		return 0
	}
	sum := 0.0
	for _, object := range objects {
		sum += object.Prob(ray)
	}
	return sum / float64(len(objects))
}

// GenerateRayInArea samples a member uniformly, then a point on it
func (l *HittableList) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	return generateFromOne(l.Objects, origin, time, sampler)
}

func generateFromOne(objects []Hittable, origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	if len(objects) == 0 {
		return core.RayAreaInfo{ToArea: core.NewRayAtTime(origin, core.Vec3{}, time)}
	}
	return objects[core.SampleIndex(sampler, len(objects))].GenerateRayInArea(origin, time, sampler)
}
