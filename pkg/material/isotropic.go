package material

import (
	"math"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/pdf"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in every direction.
type Isotropic struct {
	nonEmissive
	Albedo ColorSource
}

// NewIsotropic creates an isotropic phase function with a solid albedo
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// Scatter samples the whole sphere of directions
func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
		PDF:         pdf.SpherePDF{},
	}, true
}

// ScatteringPDF is 1/(4π) for every direction
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}
