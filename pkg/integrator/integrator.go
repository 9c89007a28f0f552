package integrator

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from the world.
	// Rays that escape the world take their color from background.
	RayColor(ray core.Ray, world geometry.Shape, background Background, sampler core.Sampler) core.Vec3
}

// Config controls the light transport estimate
type Config struct {
	MaxDepth int // Maximum number of bounces; paths longer than this gather nothing

	// IgnoreEmission drops emitted light from the estimate so that only
	// scattered background light is gathered
	IgnoreEmission bool
}
