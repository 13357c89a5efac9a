package material

import (
	"math"

	"github.com/scifi6546/ray-tracing/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for surface textures, point for solid procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker is a solid 3D checkerboard alternating between two color sources
type Checker struct {
	Even  ColorSource
	Odd   ColorSource
	Scale float64 // Cells per world unit
}

// NewChecker creates a checkerboard of two solid colors
func NewChecker(even, odd core.Vec3, scale float64) *Checker {
	return &Checker{Even: NewSolidColor(even), Odd: NewSolidColor(odd), Scale: scale}
}

// Evaluate picks the color of the cell containing point
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.Scale * point.X))
	y := int(math.Floor(c.Scale * point.Y))
	z := int(math.Floor(c.Scale * point.Z))
	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
