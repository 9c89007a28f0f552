package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

var (
	// ErrEmptyBVH is returned when a BVH is built from no shapes
	ErrEmptyBVH = errors.New("bvh: no shapes")
	// ErrNoBoundingBox is returned when a shape cannot be bounded over the shutter interval
	ErrNoBoundingBox = errors.New("bvh: shape has no bounding box")
)

// BVHNode is a node of a binary Bounding Volume Hierarchy. Both children are
// always present; a node built from a single shape holds it in both slots.
type BVHNode struct {
	Left  Shape
	Right Shape
	Box   core.AABB
}

// boxedShape caches a shape's bounding box for the duration of the build
type boxedShape struct {
	shape Shape
	box   core.AABB
}

// NewBVH builds a hierarchy over shapes for the shutter interval [time0, time1].
// Split axes are drawn from sampler. The input slice is not modified.
func NewBVH(shapes []Shape, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}

	boxed := make([]boxedShape, len(shapes))
	for i, shape := range shapes {
		box, ok := shape.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("shape %d (%T): %w", i, shape, ErrNoBoundingBox)
		}
		boxed[i] = boxedShape{shape: shape, box: box}
	}

	node, _ := buildBVH(boxed, sampler)
	return node, nil
}

// buildBVH recursively partitions shapes by their minimum corner along a random axis
func buildBVH(shapes []boxedShape, sampler core.Sampler) (*BVHNode, core.AABB) {
	axis := core.RandomInt(sampler, 0, 2)
	less := func(a, b boxedShape) bool {
		return a.box.Min.Axis(axis) < b.box.Min.Axis(axis)
	}

	var left, right Shape
	var leftBox, rightBox core.AABB

	switch len(shapes) {
	case 1:
		left, right = shapes[0].shape, shapes[0].shape
		leftBox, rightBox = shapes[0].box, shapes[0].box
	case 2:
		first, second := shapes[0], shapes[1]
		if !less(first, second) {
			first, second = second, first
		}
		left, right = first.shape, second.shape
		leftBox, rightBox = first.box, second.box
	default:
		sort.SliceStable(shapes, func(i, j int) bool {
			return less(shapes[i], shapes[j])
		})
		mid := len(shapes) / 2
		left, leftBox = buildBVH(shapes[:mid], sampler)
		right, rightBox = buildBVH(shapes[mid:], sampler)
	}

	node := &BVHNode{
		Left:  left,
		Right: right,
		Box:   core.JointBox(leftBox, rightBox),
	}
	return node, node.Box
}

// Hit returns the nearest hit in either subtree. The right subtree is only
// searched up to the left subtree's hit distance.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.SurfaceInteraction, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if n.Right == n.Left {
		// A single-shape node aliases its child; querying it twice would
		// redraw stochastic hits such as media.
		return leftHit, hitLeft
	}

	rightMax := tMax
	if hitLeft {
		rightMax = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, rightMax, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the cached box built for the construction interval
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	Nodes    int // Internal nodes
	Leaves   int // Non-BVH children, counting aliased children once
	MaxDepth int
}

// Stats walks the hierarchy and counts nodes and leaves
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(1, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Shape{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}
