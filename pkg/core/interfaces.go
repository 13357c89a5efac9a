package core

import "errors"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Construction-time errors. Run-time queries never fail; a missed ray is not an error.
var (
	// ErrEmptyObjectList is returned when an acceleration structure is built from nothing
	ErrEmptyObjectList = errors.New("empty object list")

	// ErrUnbounded is returned when an object without a bounding box is placed in a BVH
	ErrUnbounded = errors.New("object has no bounding box")

	// ErrUnsupported marks operations an object does not implement, such as
	// light sampling on a participating medium
	ErrUnsupported = errors.New("unsupported operation")

	// ErrLightNotInObjects is returned when a light cannot be reached through the scene objects
	ErrLightNotInObjects = errors.New("light is not part of the scene objects")

	// ErrInvalidSize is returned for voxel volumes whose edge is not a power of two
	ErrInvalidSize = errors.New("invalid volume size")
)
