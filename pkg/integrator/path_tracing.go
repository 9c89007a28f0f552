package integrator

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
)

// shadowAcneEpsilon is the minimum hit distance, keeping a bounce from
// re-hitting the surface it left
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: config}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, background Background, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, background, pt.config.MaxDepth, sampler)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world geometry.Shape, background Background, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, shadowAcneEpsilon, math.Inf(1), sampler)
	if !isHit {
		return background.Color(ray)
	}

	// A shape without a material absorbs everything and emits nothing
	if hit.Material == nil {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	var colorEmitted core.Vec3
	if !pt.config.IgnoreEmission {
		colorEmitted = hit.EmittedLight()
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	incoming := pt.rayColor(scatter.Scattered, world, background, depth-1, sampler)
	return colorEmitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
