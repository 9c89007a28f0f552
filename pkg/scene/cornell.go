package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/integrator"
	"github.com/df07/go-path-tracer/pkg/material"
)

// cornellBoxSize is the edge length of the Cornell box room
const cornellBoxSize = 555.0

func cornellCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
	}
}

// addCornellRoom adds the walls and ceiling light of the Cornell box.
// The room is open towards the camera at z = 0.
func addCornellRoom(s *Scene, white material.Material) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	s.Add(
		geometry.NewYZRect(0, cornellBoxSize, 0, cornellBoxSize, cornellBoxSize, green), // left wall
		geometry.NewYZRect(0, cornellBoxSize, 0, cornellBoxSize, 0, red),                // right wall
		geometry.NewXZRect(213, 343, 227, 332, cornellBoxSize-1, light),                 // ceiling light
		geometry.NewXZRect(0, cornellBoxSize, 0, cornellBoxSize, 0, white),              // floor
		geometry.NewXZRect(0, cornellBoxSize, 0, cornellBoxSize, cornellBoxSize, white), // ceiling
		geometry.NewXYRect(0, cornellBoxSize, 0, cornellBoxSize, cornellBoxSize, white), // back wall
	)
}

// cornellBoxes returns the tall and short boxes, rotated and placed in the room
func cornellBoxes(white material.Material) (tall, short geometry.Shape) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))
	return tall, short
}

// NewCornellBoxScene creates a classic Cornell box scene with rect walls and a ceiling light
func NewCornellBoxScene(sampler core.Sampler, options Options) (*Scene, error) {
	s := newScene("cornell-box", cornellCamera(), integrator.NewSolidBackground(core.NewVec3(0, 0, 0)),
		SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50}, options)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	addCornellRoom(s, white)

	tall, short := cornellBoxes(white)
	s.Add(tall, short)
	return s, nil
}

// NewCornellSmokeScene replaces the Cornell boxes with dark and light smoke volumes
func NewCornellSmokeScene(sampler core.Sampler, options Options) (*Scene, error) {
	s := newScene("cornell-smoke", cornellCamera(), integrator.NewSolidBackground(core.NewVec3(0, 0, 0)),
		SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50}, options)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	addCornellRoom(s, white)

	tall, short := cornellBoxes(white)
	s.Add(
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)
	return s, nil
}
