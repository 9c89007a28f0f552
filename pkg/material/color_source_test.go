package material

import (
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
)

func TestCheckerTexture_Evaluate(t *testing.T) {
	odd := core.NewVec3(0.2, 0.3, 0.1)
	even := core.NewVec3(0.9, 0.9, 0.9)
	checker := NewSolidCheckerTexture(odd, even)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"all positive sines", core.NewVec3(0.1, 0.1, 0.1), even},
		{"one negative sine", core.NewVec3(-0.1, 0.1, 0.1), odd},
		{"two negative sines", core.NewVec3(-0.1, -0.1, 0.1), even},
		{"three negative sines", core.NewVec3(-0.1, -0.1, -0.1), odd},
		{"next cell over", core.NewVec3(0.4, 0.1, 0.1), odd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Evaluate(core.Vec2{}, tt.point); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNoiseTexture_RangeAndDeterminism(t *testing.T) {
	a := NewNoiseTexture(4, core.NewSeededSampler(5))
	b := NewNoiseTexture(4, core.NewSeededSampler(5))
	points := core.NewSeededSampler(6)

	for i := 0; i < 2000; i++ {
		p := core.RandomVec3Range(points, -20, 20)
		c := a.Evaluate(core.Vec2{}, p)
		if c.X != c.Y || c.Y != c.Z {
			t.Fatalf("Expected grey, got %v", c)
		}
		if c.X < 0.5 || c.X >= 1.0 {
			t.Fatalf("Grey level %f outside [0.5, 1)", c.X)
		}
		if other := b.Evaluate(core.Vec2{}, p); other != c {
			t.Fatalf("Same seed gave different noise at %v: %v vs %v", p, c, other)
		}
	}
}

func TestPerlin_LatticePointsAndSmoothness(t *testing.T) {
	perlin := NewPerlin(core.NewSeededSampler(8))

	// At integer coordinates the Hermite weights collapse onto a single lattice value
	for _, p := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(3, -2, 7)} {
		i, j, k := int(p.X), int(p.Y), int(p.Z)
		expected := perlin.randomFloat[perlin.permX[i&255]^perlin.permY[j&255]^perlin.permZ[k&255]]
		if got := perlin.Noise(p); got != expected {
			t.Errorf("Noise at lattice point %v: expected %f, got %f", p, expected, got)
		}
	}

	// Small steps produce small changes
	base := core.NewVec3(1.3, 2.7, -0.4)
	delta := perlin.Noise(base.Add(core.NewVec3(1e-6, 0, 0))) - perlin.Noise(base)
	if delta > 1e-4 || delta < -1e-4 {
		t.Errorf("Noise jumped by %f over a tiny step", delta)
	}
}

func TestImageTexture_Lookup(t *testing.T) {
	topLeft := core.NewVec3(1, 0, 0)
	topRight := core.NewVec3(0, 1, 0)
	bottomLeft := core.NewVec3(0, 0, 1)
	bottomRight := core.NewVec3(1, 1, 1)
	texture := NewImageTexture(2, 2, []core.Vec3{topLeft, topRight, bottomLeft, bottomRight})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"top left", core.NewVec2(0, 1), topLeft},
		{"top right", core.NewVec2(1, 1), topRight},
		{"bottom left", core.NewVec2(0, 0), bottomLeft},
		{"bottom right", core.NewVec2(1, 0), bottomRight},
		{"interior", core.NewVec2(0.75, 0.75), topRight},
		{"clamped below range", core.NewVec2(-3, -3), bottomLeft},
		{"clamped above range", core.NewVec2(5, 5), topRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv, core.Vec3{}); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestImageTexture_MissingDataIsCyan(t *testing.T) {
	cyan := core.NewVec3(0, 1, 1)

	for name, texture := range map[string]*ImageTexture{
		"no data":        NewMissingImageTexture(),
		"short pixels":   NewImageTexture(4, 4, make([]core.Vec3, 3)),
		"zero dimension": NewImageTexture(0, 3, nil),
	} {
		t.Run(name, func(t *testing.T) {
			if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); got != cyan {
				t.Errorf("Expected cyan, got %v", got)
			}
		})
	}
}
