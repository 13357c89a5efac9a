package scene

import (
	"fmt"
	"math"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/geometry"
	"github.com/scifi6546/ray-tracing/pkg/material"
	"github.com/scifi6546/ray-tracing/pkg/voxel"
)

// Voxel palette indices
const (
	voxelGrass uint16 = iota
	voxelDirt
	voxelStone
	voxelGlow
)

// NewVoxelScene creates a small voxel landscape with a stone dome and glowing blocks,
// lit by the sky and a spherical lamp
func NewVoxelScene(aspectRatio float64) (*World, error) {
	const size = 64

	camera := geometry.NewCamera(geometry.CameraConfig{
		LookFrom:    core.NewVec3(70, 45, 90),
		LookAt:      core.NewVec3(32, 10, 32),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        35,
		AspectRatio: aspectRatio,
	})

	w := NewWorld(camera, Sky{})
	w.SamplingConfig = SamplingConfig{SamplesPerPixel: 64, MaxDepth: 20}

	palette := material.Palette{
		voxelGrass: material.NewVoxel(core.NewVec3(0.3, 0.6, 0.2)),
		voxelDirt:  material.NewVoxel(core.NewVec3(0.45, 0.3, 0.2)),
		voxelStone: material.NewVoxel(core.NewVec3(0.5, 0.5, 0.55)),
		voxelGlow:  material.NewDiffuseLight(core.NewVec3(4, 3, 2)),
	}

	// Upper half of a stone sphere resting on the terrain in the middle of the volume
	const radius = size / 4
	const base = 6
	dome := voxel.Sphere(2*radius, voxelStone)

	terrain, err := voxel.New(size, core.Vec3{}, 1, palette, func(x, y, z int) (uint16, bool) {
		height := base + int(3*math.Sin(float64(x)/7)+3*math.Cos(float64(z)/9))
		switch {
		case y < height-2:
			return voxelDirt, true
		case y < height-1:
			return voxelGrass, true
		case y < height:
			if (x*7+z*13)%37 == 0 {
				return voxelGlow, true
			}
			return voxelGrass, true
		}

		dx, dy, dz := x-(size/2-radius), y-(base-radius), z-(size/2-radius)
		if dy < radius || dx < 0 || dz < 0 || dx >= 2*radius || dy >= 2*radius || dz >= 2*radius {
			return 0, false
		}
		return dome(dx, dy, dz)
	})
	if err != nil {
		return nil, fmt.Errorf("building voxel terrain: %w", err)
	}
	w.Add(terrain)

	w.AddLight(geometry.NewSphere(core.NewVec3(10, 40, 60), 4, material.NewDiffuseLight(core.NewVec3(6, 6, 6))))
	return w, nil
}
