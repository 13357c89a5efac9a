package material

import (
	"github.com/scifi6546/ray-tracing/pkg/core"
)

// DiffuseLight is an emitter that never scatters.
// It emits only from its front face, so one-sided area lights can be built with FlipNormals.
type DiffuseLight struct {
	deltaScattering
	Emit ColorSource
}

// NewDiffuseLight creates a uniformly emitting light material
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// Scatter absorbs every incoming ray
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the emission on the front face and black behind it
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit *HitRecord, uv core.Vec2, point core.Vec3) core.Vec3 {
	if hit != nil && !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emit.Evaluate(uv, point)
}
