package scene

import (
	"fmt"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/integrator"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	Shapes         []geometry.Shape      // Top-level objects in the scene
	Background     integrator.Background // Radiance of rays that leave the scene
	SamplingConfig SamplingConfig
	World          *geometry.BVHNode // Acceleration structure over Shapes, built by Preprocess
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// Options adjusts how catalog scenes are built
type Options struct {
	TexturePath string                // Image used by textured scenes; empty selects the default
	Camera      geometry.CameraConfig // Non-zero fields override the scene's camera
	Logger      core.Logger           // Receives warnings; nil discards them
}

// newScene assembles a scene around a camera, applying any camera overrides
func newScene(name string, cameraConfig geometry.CameraConfig, background integrator.Background,
	sampling SamplingConfig, options Options) *Scene {
	cameraConfig = geometry.MergeCameraConfig(cameraConfig, options.Camera)
	sampling.Width = cameraConfig.Width
	sampling.Height = cameraConfig.ImageHeight()

	return &Scene{
		Name:           name,
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Shapes:         make([]geometry.Shape, 0),
		Background:     background,
		SamplingConfig: sampling,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Preprocess builds the BVH over the scene's shapes for the camera's shutter interval
func (s *Scene) Preprocess(sampler core.Sampler) error {
	bvh, err := geometry.NewBVH(s.Shapes, s.CameraConfig.ShutterOpen, s.CameraConfig.ShutterClose, sampler)
	if err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	s.World = bvh
	return nil
}

// GetPrimitiveCount returns the number of primitives, counting the contents
// of nested hierarchies and lists
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, handling composite objects
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.BVHNode:
		if obj.Left == obj.Right {
			return countPrimitivesInShape(obj.Left)
		}
		return countPrimitivesInShape(obj.Left) + countPrimitivesInShape(obj.Right)
	case *geometry.HittableList:
		count := 0
		for _, child := range obj.Shapes {
			count += countPrimitivesInShape(child)
		}
		return count
	default:
		// Regular shapes, boxes, transforms and media count as 1 primitive each
		return 1
	}
}
