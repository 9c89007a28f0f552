package material

import (
	"math"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_LawOfReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.8, 0.7)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewSeededSampler(42)
	hit := upFacingHit(metal)

	for _, angle := range []float64{5, 30, 45, 60, 85} {
		radians := angle * math.Pi / 180
		incoming := core.NewVec3(math.Sin(radians), -math.Cos(radians), 0)
		ray := core.NewRay(incoming.Negate(), incoming)

		scatter, didScatter := metal.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatalf("angle %.0f: metal should reflect", angle)
		}

		reflected := scatter.Scattered.Direction.Normalize()

		// Angle of incidence equals angle of reflection
		cosIn := incoming.Negate().Dot(hit.Normal)
		cosOut := reflected.Dot(hit.Normal)
		if math.Abs(cosIn-cosOut) > 1e-12 {
			t.Errorf("angle %.0f: incidence cos %f != reflection cos %f", angle, cosIn, cosOut)
		}

		// Reflected ray stays in the plane of incidence
		planeNormal := incoming.Cross(hit.Normal)
		if math.Abs(reflected.Dot(planeNormal)) > 1e-12 {
			t.Errorf("angle %.0f: reflection left the plane of incidence: %v", angle, reflected)
		}

		if scatter.Attenuation != albedo {
			t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
	}
}

func TestMetal_FuzzyReflectionBelowSurfaceIsAbsorbed(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	hit := upFacingHit(metal)

	// Grazing ray: reflection is (1, 0.01, 0) normalized, fuzz (0,-0.5,0) pushes it below
	incoming := core.NewVec3(1, -0.01, 0).Normalize()
	ray := core.NewRay(incoming.Negate(), incoming)
	sampler := &sequenceSampler{values: []float64{0.5, 0.25, 0.5}}

	if _, didScatter := metal.Scatter(ray, hit, sampler); didScatter {
		t.Error("Expected absorption when fuzz pushes the reflection into the surface")
	}
}

func TestMetal_FuzzyReflectionStaysNearMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 0.3)
	hit := upFacingHit(metal)
	incoming := core.NewVec3(0, -1, 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), incoming)
	sampler := core.NewSeededSampler(9)

	for i := 0; i < 500; i++ {
		scatter, didScatter := metal.Scatter(ray, hit, sampler)
		if !didScatter {
			continue
		}
		deviation := scatter.Scattered.Direction.Subtract(core.NewVec3(0, 1, 0)).Length()
		if deviation > 0.3+1e-12 {
			t.Fatalf("Fuzz perturbation %f exceeds fuzzness 0.3", deviation)
		}
	}
}
