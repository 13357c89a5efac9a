package integrator

import (
	"math"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
	"github.com/scifi6546/ray-tracing/pkg/pdf"
	"github.com/scifi6546/ray-tracing/pkg/scene"
)

// minHitDistance offsets every bounce so a ray does not hit the surface it leaves
const minHitDistance = 0.001

// PathTracingIntegrator implements unidirectional path tracing with one-sample
// multiple importance sampling between the material and the lights
type PathTracingIntegrator struct {
	world  *scene.World
	lights pdf.Target // nil when the world has no lights
}

// NewPathTracingIntegrator creates a new path tracing integrator for world
func NewPathTracingIntegrator(world *scene.World) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		world:  world,
		lights: world.LightTarget(),
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := pt.world.NearestHit(ray, minHitDistance, math.Inf(1))
	if !isHit {
		return pt.world.Background.Color(ray)
	}
	if hit.Material == nil {
		return core.Vec3{}
	}

	// Start with emitted light from the hit material
	colorEmitted := finiteOrZero(hit.Material.Emitted(ray, hit, hit.UV, hit.Point))

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	if scatter.IsSpecular {
		incoming := pt.RayColor(scatter.SpecularRay, sampler, depth-1)
		return colorEmitted.Add(finiteOrZero(scatter.Attenuation.MultiplyVec(incoming)))
	}
	if scatter.PDF == nil {
		return colorEmitted
	}

	return colorEmitted.Add(pt.calculateDiffuseColor(ray, scatter, hit, sampler, depth))
}

// calculateDiffuseColor draws one direction from the mixture of the material and light
// distributions and weights the incoming radiance by scattering_pdf / mixture_pdf
func (pt *PathTracingIntegrator) calculateDiffuseColor(ray core.Ray, scatter material.ScatterRecord, hit *material.HitRecord, sampler core.Sampler, depth int) core.Vec3 {
	var sampling pdf.PDF = scatter.PDF
	if pt.lights != nil {
		sampling = pdf.NewMixturePDF(pdf.NewHittablePDF(pt.lights, hit.Point, ray.Time), scatter.PDF)
	}

	direction := sampling.Generate(sampler)
	if direction.NearZero() || !direction.IsFinite() {
		return core.Vec3{}
	}
	scattered := core.NewRayAtTime(hit.Point, direction, ray.Time)

	// Zero or non-finite densities contribute nothing rather than dividing
	pdfValue := sampling.Value(direction)
	if !(pdfValue > 0) || math.IsInf(pdfValue, 0) {
		return core.Vec3{}
	}
	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	if !(scatteringPDF > 0) || math.IsInf(scatteringPDF, 0) {
		return core.Vec3{}
	}

	incoming := pt.RayColor(scattered, sampler, depth-1)
	contribution := scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue)
	return finiteOrZero(contribution)
}

// finiteOrZero replaces a NaN or infinite estimate with black
func finiteOrZero(v core.Vec3) core.Vec3 {
	if !v.IsFinite() {
		return core.Vec3{}
	}
	return v
}
