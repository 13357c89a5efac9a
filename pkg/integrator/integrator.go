package integrator

import (
	"github.com/scifi6546/ray-tracing/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray, following at most depth bounces
	RayColor(ray core.Ray, sampler core.Sampler, depth int) core.Vec3
}
