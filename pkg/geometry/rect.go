package geometry

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// rectThickness pads a rectangle's bounding box along its fixed axis
const rectThickness = 0.0001

// axisRect is a rectangle lying in the plane axis[fixed] = K, spanning
// [A0,A1] along axis u and [B0,B1] along axis v
type axisRect struct {
	fixed, u, v int
	A0, A1      float64
	B0, B1      float64
	K           float64
	Material    material.Material
}

func (r *axisRect) hit(ray core.Ray, tMin, tMax float64, outwardNormal core.Vec3) (*material.SurfaceInteraction, bool) {
	t := (r.K - ray.Origin.Axis(r.fixed)) / ray.Direction.Axis(r.fixed)
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	a := ray.Origin.Axis(r.u) + t*ray.Direction.Axis(r.u)
	b := ray.Origin.Axis(r.v) + t*ray.Direction.Axis(r.v)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	uv := core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0))
	return material.NewSurfaceInteraction(ray, outwardNormal, t, uv, r.Material), true
}

func (r *axisRect) boundingBox() core.AABB {
	var lo, hi [3]float64
	lo[r.u], hi[r.u] = r.A0, r.A1
	lo[r.v], hi[r.v] = r.B0, r.B1
	lo[r.fixed], hi[r.fixed] = r.K-rectThickness, r.K+rectThickness
	return core.NewAABBFromPoints(
		core.NewVec3(lo[0], lo[1], lo[2]),
		core.NewVec3(hi[0], hi[1], hi[2]),
	)
}

// XYRect is an axis-aligned rectangle in the plane z = k, facing +Z
type XYRect struct {
	axisRect
}

// NewXYRect creates a rectangle spanning [x0,x1] x [y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *XYRect {
	return &XYRect{axisRect{fixed: 2, u: 0, v: 1, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material}}
}

// Hit tests if a ray crosses the rectangle
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.SurfaceInteraction, bool) {
	return r.hit(ray, tMin, tMax, core.NewVec3(0, 0, 1))
}

// BoundingBox returns the rectangle's box, padded along Z
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.boundingBox(), true
}

// XZRect is an axis-aligned rectangle in the plane y = k, facing +Y
type XZRect struct {
	axisRect
}

// NewXZRect creates a rectangle spanning [x0,x1] x [z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *XZRect {
	return &XZRect{axisRect{fixed: 1, u: 0, v: 2, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material}}
}

// Hit tests if a ray crosses the rectangle
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.SurfaceInteraction, bool) {
	return r.hit(ray, tMin, tMax, core.NewVec3(0, 1, 0))
}

// BoundingBox returns the rectangle's box, padded along Y
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.boundingBox(), true
}

// YZRect is an axis-aligned rectangle in the plane x = k, facing +X
type YZRect struct {
	axisRect
}

// NewYZRect creates a rectangle spanning [y0,y1] x [z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *YZRect {
	return &YZRect{axisRect{fixed: 0, u: 1, v: 2, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material}}
}

// Hit tests if a ray crosses the rectangle
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.SurfaceInteraction, bool) {
	return r.hit(ray, tMin, tMax, core.NewVec3(1, 0, 0))
}

// BoundingBox returns the rectangle's box, padded along X
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.boundingBox(), true
}
