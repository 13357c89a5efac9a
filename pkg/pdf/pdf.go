package pdf

import (
	"math"

	"github.com/scifi6546/ray-tracing/pkg/core"
)

// PDF is a probability density over directions leaving a shading point
type PDF interface {
	// Value returns the density (per unit solid angle) of sampling direction
	Value(direction core.Vec3) float64

	// Generate draws a direction from the distribution
	Generate(sampler core.Sampler) core.Vec3
}

// CosinePDF samples directions proportionally to the cosine with a surface normal
type CosinePDF struct {
	onb core.ONB
}

// NewCosinePDF creates a cosine-weighted hemisphere distribution around normal
func NewCosinePDF(normal core.Vec3) CosinePDF {
	return CosinePDF{onb: core.NewONB(normal)}
}

// Value returns cos(θ)/π above the surface and zero below it
func (p CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.onb.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate returns a cosine-weighted direction in the normal's hemisphere
func (p CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.onb.Local(core.SampleCosineDirection(sampler.Get2D()))
}

// SpherePDF samples all directions uniformly
type SpherePDF struct{}

// Value returns 1/(4π) for every direction
func (SpherePDF) Value(direction core.Vec3) float64 {
	return 1 / (4 * math.Pi)
}

// Generate returns a uniformly distributed unit direction
func (SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// Target is anything whose surface can be sampled as seen from a point.
// Scene geometry satisfies it.
type Target interface {
	Prob(ray core.Ray) float64
	GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo
}

// HittablePDF samples directions toward the visible surface of a target, typically a light
type HittablePDF struct {
	target Target
	origin core.Vec3
	time   float64
}

// NewHittablePDF creates a distribution of directions from origin toward target
func NewHittablePDF(target Target, origin core.Vec3, time float64) HittablePDF {
	return HittablePDF{target: target, origin: origin, time: time}
}

// Value returns the target's solid angle density along direction
func (p HittablePDF) Value(direction core.Vec3) float64 {
	return p.target.Prob(core.NewRayAtTime(p.origin, direction, p.time))
}

// Generate returns the direction toward a point sampled on the target
func (p HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.target.GenerateRayInArea(p.origin, p.time, sampler).Direction
}

// MixturePDF chooses between two distributions with equal probability
type MixturePDF struct {
	a, b PDF
}

// NewMixturePDF creates a 50/50 mixture of a and b
func NewMixturePDF(a, b PDF) MixturePDF {
	return MixturePDF{a: a, b: b}
}

// Value returns the average of both densities
func (p MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*p.a.Value(direction) + 0.5*p.b.Value(direction)
}

// Generate draws from either distribution with probability one half
func (p MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return p.a.Generate(sampler)
	}
	return p.b.Generate(sampler)
}
