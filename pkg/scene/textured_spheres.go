package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/integrator"
	"github.com/df07/go-path-tracer/pkg/loaders"
	"github.com/df07/go-path-tracer/pkg/material"
)

// DefaultEarthTexture is the image loaded by the earth scene when no path is given
const DefaultEarthTexture = "earthmap.jpg"

// outdoorCamera is the camera shared by the textured sphere scenes
func outdoorCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}
}

// NewTwoSpheresScene creates two large checkered spheres touching at the origin
func NewTwoSpheresScene(sampler core.Sampler, options Options) (*Scene, error) {
	s := newScene("two-spheres", outdoorCamera(), integrator.NewSkyBackground(),
		SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}, options)

	checker := material.NewTexturedLambertian(
		material.NewSolidCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)
	return s, nil
}

// NewPerlinSpheresScene creates a Perlin-textured sphere resting on a Perlin-textured ground
func NewPerlinSpheresScene(sampler core.Sampler, options Options) (*Scene, error) {
	s := newScene("perlin-spheres", outdoorCamera(), integrator.NewSkyBackground(),
		SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}, options)

	s.Add(perlinSpheres(sampler)...)
	return s, nil
}

// perlinSpheres returns a ground sphere and a radius-2 sphere sharing one noise texture
func perlinSpheres(sampler core.Sampler) []geometry.Shape {
	noise := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))
	return []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, noise),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, noise),
	}
}

// NewEarthScene creates a globe wrapped in an image texture. A texture that
// cannot be loaded is replaced by the solid cyan missing-image texture.
func NewEarthScene(sampler core.Sampler, options Options) (*Scene, error) {
	s := newScene("earth", outdoorCamera(), integrator.NewSkyBackground(),
		SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}, options)

	path := options.TexturePath
	if path == "" {
		path = DefaultEarthTexture
	}

	texture, err := loaders.LoadImageTexture(path)
	if err != nil {
		if options.Logger != nil {
			options.Logger.Printf("Warning: %v; using missing-image texture\n", err)
		}
		texture = material.NewMissingImageTexture()
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)))
	return s, nil
}

// NewSimpleLightScene lights the Perlin spheres with a single rectangular lamp under a black sky
func NewSimpleLightScene(sampler core.Sampler, options Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}
	s := newScene("simple-light", cameraConfig, integrator.NewSolidBackground(core.NewVec3(0, 0, 0)),
		SamplingConfig{SamplesPerPixel: 400, MaxDepth: 50}, options)

	s.Add(perlinSpheres(sampler)...)
	s.Add(geometry.NewXYRect(3, 5, 1, 3, -2, material.NewDiffuseLight(core.NewVec3(4, 4, 4))))
	return s, nil
}
