package scene

import (
	"errors"
	"fmt"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/geometry"
	"github.com/scifi6546/ray-tracing/pkg/material"
	"github.com/scifi6546/ray-tracing/pkg/pdf"
)

// World contains all the elements needed for rendering
type World struct {
	Camera         *geometry.Camera
	Objects        []geometry.Hittable // Objects in the scene, lights included
	Lights         []geometry.Hittable // Subset of objects sampled for direct lighting
	Background     Background
	SamplingConfig SamplingConfig
}

// SamplingConfig contains the rendering defaults a scene was designed for
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// NewWorld creates an empty world seen through camera against background
func NewWorld(camera *geometry.Camera, background Background) *World {
	return &World{
		Camera:     camera,
		Background: background,
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}
}

// Add appends objects to the world
func (w *World) Add(objects ...geometry.Hittable) {
	w.Objects = append(w.Objects, objects...)
}

// AddLight appends a light to both the objects and the lights, so it emits and occludes
func (w *World) AddLight(light geometry.Hittable) {
	w.Objects = append(w.Objects, light)
	w.Lights = append(w.Lights, light)
}

// NearestHit returns the closest hit among all objects. On exactly equal t the
// earlier object wins.
func (w *World) NearestHit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	for _, object := range w.Objects {
		if hit, ok := object.Hit(ray, tMin, tMax); ok {
			closest = hit
			tMax = hit.T
		}
	}
	return closest, closest != nil
}

// LightTarget returns the lights as a single sampling target, or nil when the world has none
func (w *World) LightTarget() pdf.Target {
	switch len(w.Lights) {
	case 0:
		return nil
	case 1:
		return w.Lights[0]
	default:
		return geometry.NewHittableList(w.Lights...)
	}
}

// Validate checks that the world can be rendered: it needs a camera, a background,
// and every light must be reachable through the objects.
func (w *World) Validate() error {
	var errs []error
	if w.Camera == nil {
		errs = append(errs, errors.New("world has no camera"))
	}
	if w.Background == nil {
		errs = append(errs, errors.New("world has no background"))
	}

	root := geometry.NewHittableList(w.Objects...)
	for i, light := range w.Lights {
		if !geometry.Contains(root, light) {
			errs = append(errs, fmt.Errorf("light %d (%T): %w", i, light, core.ErrLightNotInObjects))
		}
	}
	return errors.Join(errs...)
}

// Accelerate returns a copy of world whose objects are wrapped in a single BVH.
// Lights are kept as they are; they stay reachable through the hierarchy.
func Accelerate(world *World, sampler core.Sampler) (*World, error) {
	if err := world.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}

	var time0, time1 float64
	if world.Camera != nil {
		cfg := world.Camera.Config()
		time0, time1 = cfg.Time0, cfg.Time1
	}

	bvh, err := geometry.NewBVH(world.Objects, time0, time1, sampler)
	if err != nil {
		return nil, fmt.Errorf("accelerating world: %w", err)
	}

	accelerated := *world
	accelerated.Objects = []geometry.Hittable{bvh}
	accelerated.Lights = append([]geometry.Hittable(nil), world.Lights...)
	return &accelerated, nil
}
