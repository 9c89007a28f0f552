package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// ConstantMedium is a homogeneous participating medium (fog, smoke) filling
// a convex boundary shape. Non-convex boundaries are not supported.
type ConstantMedium struct {
	Boundary      Shape
	Density       float64
	PhaseFunction material.Material
}

// NewConstantMedium fills boundary with an isotropic medium of the given density and color
func NewConstantMedium(boundary Shape, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium fills boundary with an isotropic medium whose albedo is a texture
func NewTexturedConstantMedium(boundary Shape, density float64, albedo material.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// Hit samples a scattering event inside the medium along the ray.
// The ray passes through unscattered when the sampled free path exceeds the
// distance it travels inside the boundary.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.SurfaceInteraction, bool) {
	entry, isHit := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}
	exit, isHit := m.Boundary.Hit(ray, entry.T+0.0001, math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}

	t1 := math.Max(entry.T, tMin)
	t2 := math.Min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := core.SampleFreePath(m.Density, sampler)
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.SurfaceInteraction{
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		T:         t,
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
