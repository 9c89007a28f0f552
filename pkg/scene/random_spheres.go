package scene

import (
	"fmt"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/integrator"
	"github.com/df07/go-path-tracer/pkg/material"
)

// NewRandomSpheresScene creates the classic field of small random spheres
// around three large ones. Diffuse spheres bounce upward during the shutter.
func NewRandomSpheresScene(sampler core.Sampler, options Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(12, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
	}

	samplingConfig := SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}

	s := newScene("random-spheres", cameraConfig, integrator.NewSkyBackground(), samplingConfig, options)

	checker := material.NewSolidCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	var balls []geometry.Shape
	avoid := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			if center.Subtract(avoid).Length() <= 0.9 {
				continue
			}

			center2 := center
			var sphereMaterial material.Material
			switch {
			case chooseMaterial < 0.8:
				// Diffuse
				center2 = center.Add(core.NewVec3(0, core.RandomFloat(sampler, 0, 0.5), 0))
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				// Metal
				albedo := core.RandomVec3Range(sampler, 0.5, 1)
				fuzz := core.RandomFloat(sampler, 0, 0.5)
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				// Glass
				sphereMaterial = material.NewDielectric(1.5)
			}

			balls = append(balls, geometry.NewMovingSphere(center, center2, 0.0, 1.0, 0.2, sphereMaterial))
		}
	}

	ballBVH, err := geometry.NewBVH(balls, cameraConfig.ShutterOpen, cameraConfig.ShutterClose, sampler)
	if err != nil {
		return nil, fmt.Errorf("random-spheres: %w", err)
	}
	s.Add(ballBVH)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s, nil
}
