package material

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// Material interface for objects that can scatter rays.
// Implementations are immutable and safe to share across goroutines.
type Material interface {
	// Scatter samples an outgoing ray for rayIn arriving at hit.
	// It returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit *SurfaceInteraction, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// SurfaceInteraction contains information about a ray-object intersection
type SurfaceInteraction struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, always facing against the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Texture coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object; nil means none
}

// NewSurfaceInteraction builds the record for a hit at parameter t along ray.
// outwardNormal must point away from the primitive's interior.
func NewSurfaceInteraction(ray core.Ray, outwardNormal core.Vec3, t float64, uv core.Vec2, material Material) *SurfaceInteraction {
	hit := &SurfaceInteraction{
		Point:    ray.At(t),
		T:        t,
		UV:       uv,
		Material: material,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *SurfaceInteraction) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// EmittedLight returns the emission of the hit material, or black if it does not emit
func (h *SurfaceInteraction) EmittedLight() core.Vec3 {
	if emitter, isEmissive := h.Material.(Emitter); isEmissive {
		return emitter.Emitted(h.UV, h.Point)
	}
	return core.Vec3{X: 0, Y: 0, Z: 0}
}
