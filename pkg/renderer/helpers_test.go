package renderer

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/integrator"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// MockIntegrator returns a color computed from the primary ray
type MockIntegrator struct {
	colorFn   func(ray core.Ray) core.Vec3
	callCount int
}

func (m *MockIntegrator) RayColor(ray core.Ray, world geometry.Shape, background integrator.Background, sampler core.Sampler) core.Vec3 {
	m.callCount++
	return m.colorFn(ray)
}

// discardLogger swallows all output
type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

// createTestScene builds a diffuse sphere resting on a large ground sphere
// under a sky gradient, seen from the origin looking down -Z
func createTestScene(width int, samplesPerPixel int) *scene.Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 2.0,
		VFov:        90,
	}

	diffuse := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	return &scene.Scene{
		Name:         "test",
		Camera:       geometry.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Shapes: []geometry.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, diffuse),
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, diffuse),
		},
		Background: integrator.NewSkyBackground(),
		SamplingConfig: scene.SamplingConfig{
			Width:           width,
			Height:          cameraConfig.ImageHeight(),
			SamplesPerPixel: samplesPerPixel,
			MaxDepth:        10,
		},
	}
}

// newPixelStats allocates a [height][width] accumulator grid
func newPixelStats(width, height int) [][]PixelStats {
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}
	return pixelStats
}
