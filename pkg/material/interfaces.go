package material

import (
	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/pdf"
)

// Material decides how light scatters and is emitted at a surface point.
// Materials are immutable once built and shared by every render worker.
type Material interface {
	// Scatter produces the continuation of rayIn at hit, or false when the ray is absorbed
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool)

	// ScatteringPDF returns the material's own density for having produced scattered
	ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64

	// Emitted returns the radiance emitted at point toward rayIn's origin
	Emitted(rayIn core.Ray, hit *HitRecord, uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterRecord contains the result of material scattering.
// Exactly one of SpecularRay (when IsSpecular) or PDF is meaningful.
type ScatterRecord struct {
	IsSpecular  bool      // Follow SpecularRay deterministically, skipping PDF weighting
	SpecularRay core.Ray  // Continuation ray for mirror and dielectric surfaces
	Attenuation core.Vec3 // Albedo or throughput of this bounce
	PDF         pdf.PDF   // Sampling distribution for diffuse surfaces
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, facing the incoming ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface texture coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// nonEmissive provides the black emission shared by every material that does not glow
type nonEmissive struct{}

func (nonEmissive) Emitted(rayIn core.Ray, hit *HitRecord, uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// deltaScattering provides the zero density of specular and non-scattering materials
type deltaScattering struct{}

func (deltaScattering) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// Palette is an arena of materials addressed by index, used by voxel volumes
type Palette []Material

// At returns the material at index, or nil when the index is out of range
func (p Palette) At(index uint16) Material {
	if int(index) >= len(p) {
		return nil
	}
	return p[index]
}
