package scene

import (
	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/geometry"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// NewOneSphereScene creates a single diffuse sphere under the sky
func NewOneSphereScene(aspectRatio float64) (*World, error) {
	camera := geometry.NewCamera(geometry.CameraConfig{
		LookFrom:    core.NewVec3(3, 3, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
		Aperture:    0,
	})

	w := NewWorld(camera, Sky{})
	w.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))))
	return w, nil
}
