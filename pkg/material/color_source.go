package material

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
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

// CheckerTexture alternates between two color sources in a 3D checker pattern
type CheckerTexture struct {
	Odd  ColorSource
	Even ColorSource
}

// NewCheckerTexture creates a checker pattern from two color sources
func NewCheckerTexture(odd, even ColorSource) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even}
}

// NewSolidCheckerTexture creates a checker pattern from two solid colors
func NewSolidCheckerTexture(oddColor, evenColor core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(oddColor), NewSolidColor(evenColor))
}

// Evaluate picks the odd or even source by the sign of the spatial sine product
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}

// NoiseTexture is a grey Perlin noise pattern
type NoiseTexture struct {
	noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture whose lattice is drawn from sampler
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(sampler), Scale: scale}
}

// Evaluate returns the grey level 0.5*(1+noise) at the scaled point
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	grey := 0.5 * (1.0 + n.noise.Noise(point.Multiply(n.Scale)))
	return core.NewVec3(grey, grey, grey)
}
