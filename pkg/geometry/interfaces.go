package geometry

import (
	"fmt"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the nearest intersection with t strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns the box enclosing the object over [time0, time1], or false if unbounded
	BoundingBox(time0, time1 float64) (core.AABB, bool)

	// Prob returns the solid angle density of sampling ray's direction from ray's origin
	// with GenerateRayInArea
	Prob(ray core.Ray) float64

	// GenerateRayInArea samples a point on the surface visible from origin
	GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo
}

// Decorator is a Hittable that wraps exactly one other Hittable
type Decorator interface {
	Hittable
	Unwrap() Hittable
}

// Aggregate is a Hittable composed of other Hittables
type Aggregate interface {
	Hittable
	Children() []Hittable
}

// Contains reports whether target is root itself or is reachable from root through
// decorators and aggregates.
func Contains(root, target Hittable) bool {
	if root == nil {
		return false
	}
	if root == target {
		return true
	}
	switch h := root.(type) {
	case Decorator:
		return Contains(h.Unwrap(), target)
	case Aggregate:
		for _, child := range h.Children() {
			if Contains(child, target) {
				return true
			}
		}
	}
	return false
}

// unsupported fails loudly for light sampling on objects that cannot be sampled.
// The render driver recovers the panic and reports it as an error.
func unsupported(kind, op string) {
	panic(fmt.Errorf("%s.%s: %w", kind, op, core.ErrUnsupported))
}

// hitEpsilon is the parametric offset used when probing an object for light sampling
const hitEpsilon = 0.001
