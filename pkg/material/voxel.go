package material

import (
	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/pdf"
)

// Voxel is the flat-colored diffuse surface of voxel world blocks
type Voxel struct {
	nonEmissive
	Albedo core.Vec3
}

// NewVoxel creates a voxel material with the given albedo
func NewVoxel(albedo core.Vec3) *Voxel {
	return &Voxel{Albedo: albedo}
}

// Scatter scatters diffusely with a cosine-weighted distribution
func (v *Voxel) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: v.Albedo,
		PDF:         pdf.NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF returns cos(θ)/π for directions above the face
func (v *Voxel) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return cosineDensity(hit.Normal, scattered.Direction)
}
