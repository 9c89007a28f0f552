package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// Translate moves a child shape by a fixed offset
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

// NewTranslate wraps shape so that it appears displaced by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

// Hit intersects the child with the ray moved into the child's frame
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.SurfaceInteraction, bool) {
	movedRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, isHit := t.Shape.Hit(movedRay, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	// Translation leaves directions, and so the normal and face flag, unchanged
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the child's box moved by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Shape.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}

// Default shutter interval the RotateY box is cached for
const (
	defaultShutterOpen  = 0.0
	defaultShutterClose = 1.0
)

// RotateY rotates a child shape about the Y axis
type RotateY struct {
	Shape    Shape
	Angle    float64 // Degrees
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
	hasBox   bool
}

// NewRotateY wraps shape rotated by angle degrees about the Y axis
func NewRotateY(shape Shape, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Shape:    shape,
		Angle:    angle,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
	r.bbox, r.hasBox = r.rotatedBox(defaultShutterOpen, defaultShutterClose)
	return r
}

// Hit rotates the ray into the child's frame, delegates, and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.SurfaceInteraction, bool) {
	rotatedRay := core.NewRayAtTime(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)

	hit, isHit := r.Shape.Hit(rotatedRay, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	// The child oriented the normal against the local ray; rotation preserves
	// that orientation and the front-face flag
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox encloses the rotated child's box. The box for the default
// shutter interval is computed once; other intervals are computed on demand.
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if time0 == defaultShutterOpen && time1 == defaultShutterClose {
		return r.bbox, r.hasBox
	}
	return r.rotatedBox(time0, time1)
}

func (r *RotateY) rotatedBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := r.Shape.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := box.Corners()
	for i, corner := range corners {
		corners[i] = r.toWorld(corner)
	}
	return core.NewAABBFromPoints(corners[:]...), true
}

// toLocal rotates a world-space vector by -angle
func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates a local vector by +angle
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}
