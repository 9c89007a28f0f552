package material

import (
	"math"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
)

func TestDielectric_BasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0).Normalize())
	hit := upFacingHit(glass)

	hasReflection := false
	hasRefraction := false
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 2000; i++ {
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Attenuation != core.NewVec3(1, 1, 1) {
			t.Fatalf("Expected white attenuation, got %v", result.Attenuation)
		}
		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasRefraction || !hasReflection {
		t.Errorf("Expected both branches at 45 degrees, reflection=%t refraction=%t", hasReflection, hasRefraction)
	}
}

func TestDielectric_UnitIndexPassesStraightThrough(t *testing.T) {
	glass := NewDielectric(1.0)

	for _, frontFace := range []bool{true, false} {
		for _, angle := range []float64{0, 20, 45, 70, 89} {
			radians := angle * math.Pi / 180
			incoming := core.NewVec3(math.Sin(radians), -math.Cos(radians), 0)
			ray := core.NewRay(incoming.Negate(), incoming)
			hit := upFacingHit(glass)
			hit.FrontFace = frontFace

			// Schlick reflectance is 0 at normal incidence for ratio 1 and grows
			// with (1-cos)^5; a draw of 0.999... keeps every angle on the refract branch.
			result, _ := glass.Scatter(ray, hit, constantSampler{value: 0.9999999})
			if !vecApproxEqual(result.Scattered.Direction, incoming, 1e-9) {
				t.Errorf("angle %.0f front=%t: expected %v unchanged, got %v",
					angle, frontFace, incoming, result.Scattered.Direction)
			}
		}
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	criticalSine := 1.0 / 1.5

	for _, angle := range []float64{42.5, 50, 60, 75, 89} {
		radians := angle * math.Pi / 180
		if math.Sin(radians) <= criticalSine {
			t.Fatalf("test angle %.1f is not beyond the critical angle", angle)
		}

		incoming := core.NewVec3(math.Sin(radians), -math.Cos(radians), 0)
		ray := core.NewRay(incoming.Negate(), incoming)
		hit := upFacingHit(glass)
		hit.FrontFace = false // inside the glass, ratio = 1.5

		if !CannotRefract(math.Sin(radians), glass.RefractiveIndex) {
			t.Errorf("angle %.1f: expected CannotRefract", angle)
		}

		// A draw near 1 never selects reflection through Schlick, so only TIR can reflect
		result, _ := glass.Scatter(ray, hit, constantSampler{value: 0.9999999})
		if result.Scattered.Direction.Y <= 0 {
			t.Errorf("angle %.1f: expected reflection, got %v", angle, result.Scattered.Direction)
		}
		expected := core.Reflect(incoming, hit.Normal)
		if !vecApproxEqual(result.Scattered.Direction, expected, 1e-12) {
			t.Errorf("angle %.1f: expected mirror direction %v, got %v", angle, expected, result.Scattered.Direction)
		}
	}
}

func TestReflectance_Schlick(t *testing.T) {
	ratio := 1.0 / 1.5
	r0 := math.Pow((1-ratio)/(1+ratio), 2)

	if got := Reflectance(1.0, ratio); math.Abs(got-r0) > 1e-12 {
		t.Errorf("Normal incidence: expected %f, got %f", r0, got)
	}
	if got := Reflectance(0.0, ratio); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Grazing incidence: expected 1, got %f", got)
	}
	if got := Reflectance(0.5, 1.0); math.Abs(got-math.Pow(0.5, 5)) > 1e-12 {
		t.Errorf("Unit ratio: expected %f, got %f", math.Pow(0.5, 5), got)
	}
}
