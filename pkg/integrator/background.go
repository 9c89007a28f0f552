package integrator

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// Background gives the radiance of rays that leave the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// GradientBackground blends from Bottom to Top by the ray's vertical direction
type GradientBackground struct {
	Bottom core.Vec3 // Color looking straight down
	Top    core.Vec3 // Color looking straight up
}

// NewGradientBackground creates a vertical sky gradient
func NewGradientBackground(bottom, top core.Vec3) *GradientBackground {
	return &GradientBackground{Bottom: bottom, Top: top}
}

// NewSkyBackground creates the default white-to-light-blue sky
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.7, 1.0))
}

// Color maps the unit direction's Y from [-1,1] to a blend factor in [0,1]
func (g *GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(g.Bottom, g.Top, t)
}

// SolidBackground is a uniform background color
type SolidBackground struct {
	Value core.Vec3
}

// NewSolidBackground creates a uniform background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Value: color}
}

// Color returns the background color for every direction
func (s *SolidBackground) Color(ray core.Ray) core.Vec3 {
	return s.Value
}
