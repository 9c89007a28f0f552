package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
)

func vecApproxEqual(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// createTestWorld creates a single lambertian sphere in front of the origin
func createTestWorld() geometry.Shape {
	lambertian := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	return geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian))
}

// createMirrorWorld creates a mirror floor that reflects a ray from (0,1,0)
// heading along (1,-1,0) into a light panel at x = 2
func createMirrorWorld(albedo float64) geometry.Shape {
	mirror := geometry.NewXZRect(-5, 5, -5, 5, 0, material.NewMetal(core.NewVec3(albedo, albedo, albedo), 0))
	light := geometry.NewYZRect(0, 2, -1, 1, 2, material.NewDiffuseLight(core.NewVec3(4, 4, 4)))
	return geometry.NewHittableList(mirror, light)
}

func TestPathTracingDepthTermination(t *testing.T) {
	world := createTestWorld()
	sky := NewSkyBackground()
	sampler := core.NewSeededSampler(42)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	integrator := NewPathTracingIntegrator(Config{MaxDepth: 0})
	if color := integrator.RayColor(ray, world, sky, sampler); color != (core.Vec3{}) {
		t.Errorf("Expected black color for depth 0, got %v", color)
	}

	// One bounce scatters off the sphere but has no budget left to reach the sky
	integrator = NewPathTracingIntegrator(Config{MaxDepth: 1})
	if color := integrator.RayColor(ray, world, sky, sampler); color != (core.Vec3{}) {
		t.Errorf("Expected black color for depth 1, got %v", color)
	}

	integrator = NewPathTracingIntegrator(Config{MaxDepth: 3})
	nonBlack := false
	for i := 0; i < 20; i++ {
		if integrator.RayColor(ray, world, sky, sampler) != (core.Vec3{}) {
			nonBlack = true
		}
	}
	if !nonBlack {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestPathTracingBackground(t *testing.T) {
	integrator := NewPathTracingIntegrator(Config{MaxDepth: 5})
	empty := geometry.NewHittableList()
	sky := NewSkyBackground()
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 3, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			if got := integrator.RayColor(ray, empty, sky, sampler); !vecApproxEqual(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	black := NewSolidBackground(core.NewVec3(0, 0, 0))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if got := integrator.RayColor(ray, empty, black, sampler); got != (core.Vec3{}) {
		t.Errorf("Expected black from solid background, got %v", got)
	}
}

func TestPathTracingMirrorReflectsSky(t *testing.T) {
	integrator := NewPathTracingIntegrator(Config{MaxDepth: 5})
	mirror := geometry.NewXZRect(-5, 5, -5, 5, 0, material.NewMetal(core.NewVec3(0.8, 0.6, 0.4), 0))
	sky := NewSkyBackground()

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0))
	got := integrator.RayColor(ray, mirror, sky, core.NewSeededSampler(1))

	reflected := core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 0))
	expected := core.NewVec3(0.8, 0.6, 0.4).MultiplyVec(sky.Color(reflected))
	if !vecApproxEqual(got, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPathTracingEmission(t *testing.T) {
	black := NewSolidBackground(core.NewVec3(0, 0, 0))
	sampler := core.NewSeededSampler(1)
	world := createMirrorWorld(0.8)

	tests := []struct {
		name     string
		config   Config
		ray      core.Ray
		expected core.Vec3
	}{
		{
			name:     "direct view of light",
			config:   Config{MaxDepth: 5},
			ray:      core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)),
			expected: core.NewVec3(4, 4, 4),
		},
		{
			name:     "light through mirror",
			config:   Config{MaxDepth: 5},
			ray:      core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0)),
			expected: core.NewVec3(3.2, 3.2, 3.2),
		},
		{
			name:     "mirror without bounce budget",
			config:   Config{MaxDepth: 1},
			ray:      core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0)),
			expected: core.NewVec3(0, 0, 0),
		},
		{
			name:     "emission ignored",
			config:   Config{MaxDepth: 5, IgnoreEmission: true},
			ray:      core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0)),
			expected: core.NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := NewPathTracingIntegrator(tt.config)
			if got := integrator.RayColor(tt.ray, world, black, sampler); !vecApproxEqual(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracingNilMaterialAbsorbs(t *testing.T) {
	integrator := NewPathTracingIntegrator(Config{MaxDepth: 5})
	world := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if got := integrator.RayColor(ray, world, NewSkyBackground(), core.NewSeededSampler(1)); got != (core.Vec3{}) {
		t.Errorf("Expected black for a shape without material, got %v", got)
	}
}

func TestPathTracingLambertianBelowAlbedo(t *testing.T) {
	integrator := NewPathTracingIntegrator(Config{MaxDepth: 10})
	world := createTestWorld()
	white := NewSolidBackground(core.NewVec3(1, 1, 1))
	sampler := core.NewSeededSampler(7)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// With a white environment and a convex object, each path bounces once
	for i := 0; i < 200; i++ {
		got := integrator.RayColor(ray, world, white, sampler)
		if !vecApproxEqual(got, core.NewVec3(0.7, 0.3, 0.3), 1e-12) {
			t.Fatalf("Expected albedo under white light, got %v", got)
		}
	}
}
