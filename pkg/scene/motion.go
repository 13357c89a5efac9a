package scene

import (
	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/geometry"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// NewMotionScene creates a field of small bouncing spheres around three large ones,
// rendered with an open shutter for motion blur
func NewMotionScene(aspectRatio float64) (*World, error) {
	camera := geometry.NewCamera(geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})

	w := NewWorld(camera, Sky{})
	w.SamplingConfig = SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}

	checker := material.NewChecker(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9), 1)
	w.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	// Fixed seed so the layout is the same on every run
	sampler := core.NewSeededSampler(2024, 0)
	glass := material.NewDielectric(1.5)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				bounce := core.NewVec3(0, 0.5*sampler.Get1D(), 0)
				w.Add(geometry.NewMovingSphere(center, center.Add(bounce), 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				albedo := sampler.Get3D().Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				w.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.5*sampler.Get1D())))
			default:
				w.Add(geometry.NewSphere(center, 0.2, glass))
			}
		}
	}

	w.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	return w, nil
}
