package scene

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Builder creates a demo world for an image of the given aspect ratio
type Builder func(aspectRatio float64) (*World, error)

var builders = map[string]Builder{
	"one-sphere":    NewOneSphereScene,
	"cornell":       NewCornellScene,
	"cornell-smoke": NewCornellSmokeScene,
	"motion":        NewMotionScene,
	"voxel":         NewVoxelScene,
}

// Names returns the registered scene names in alphabetical order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build creates the named scene
func Build(name string, aspectRatio float64) (*World, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%q (available: %s): %w", name, strings.Join(Names(), ", "), ErrUnknownScene)
	}
	return builder(aspectRatio)
}
