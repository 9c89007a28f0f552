package geometry

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Shapes are immutable once built and safe to share across render workers.
type Shape interface {
	// Hit returns the nearest intersection with t in [tMin, tMax].
	// The sampler is only consumed by shapes with stochastic intersection (participating media).
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.SurfaceInteraction, bool)

	// BoundingBox returns a box enclosing the shape over the shutter interval [time0, time1]
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
