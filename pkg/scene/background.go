package scene

import (
	"github.com/scifi6546/ray-tracing/pkg/core"
)

// Background gives the radiance arriving along rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// Sky is a vertical gradient from white at the horizon below to light blue overhead
type Sky struct{}

// Color blends white and blue by the height of the ray direction
func (Sky) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	white := core.NewVec3(1.0, 1.0, 1.0)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1.0 - t).Add(blue.Multiply(t))
}

// SolidBackground returns the same radiance in every direction
type SolidBackground struct {
	Radiance core.Vec3
}

// Color returns the constant radiance
func (b SolidBackground) Color(ray core.Ray) core.Vec3 {
	return b.Radiance
}
