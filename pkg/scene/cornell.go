package scene

import (
	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/geometry"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellCamera looks into the open side of the box
func cornellCamera(aspectRatio float64) *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: aspectRatio,
	})
}

// cornellWalls adds the five walls and returns the white material for reuse
func cornellWalls(w *World) material.Material {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Walls face into the box, so the ones whose rect normal points outward are flipped
	w.Add(
		geometry.NewFlipNormals(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green)),
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),
		geometry.NewFlipNormals(geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white)),
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),
		geometry.NewFlipNormals(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white)),
	)
	return white
}

// NewCornellScene creates a classic Cornell box with two rotated blocks and a ceiling light
func NewCornellScene(aspectRatio float64) (*World, error) {
	w := NewWorld(cornellCamera(aspectRatio), SolidBackground{})
	w.SamplingConfig = SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50}

	white := cornellWalls(w)

	// The light faces down into the box
	w.AddLight(geometry.NewFlipNormals(
		geometry.NewXZRect(213, 343, 227, 332, boxSize-1, material.NewDiffuseLight(core.NewVec3(15, 15, 15))),
	))

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	w.Add(
		geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295)),
		geometry.NewObject(short, geometry.RotationY(-18).Then(geometry.Translation(core.NewVec3(130, 0, 65)))),
	)

	return w, nil
}

// NewCornellSmokeScene replaces the Cornell blocks with white and black smoke
func NewCornellSmokeScene(aspectRatio float64) (*World, error) {
	w := NewWorld(cornellCamera(aspectRatio), SolidBackground{})
	w.SamplingConfig = SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50}

	white := cornellWalls(w)

	w.AddLight(geometry.NewFlipNormals(
		geometry.NewXZRect(113, 443, 127, 432, boxSize-1, material.NewDiffuseLight(core.NewVec3(7, 7, 7))),
	))

	tall := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295),
	)
	short := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65),
	)
	w.Add(
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return w, nil
}
