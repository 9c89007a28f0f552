package renderer

import (
	"image"
	"math/rand"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/integrator"
)

func TestTileRendererPixelSampling(t *testing.T) {
	s := createTestScene(4, 3)
	mockIntegrator := &MockIntegrator{colorFn: func(ray core.Ray) core.Vec3 { return core.NewVec3(1, 0, 0) }}
	renderer := NewTileRenderer(s, mockIntegrator)

	pixelStats := newPixelStats(4, 2)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	stats := renderer.RenderTileBounds(image.Rect(0, 0, 4, 2), pixelStats, sampler, 3)

	if stats.TotalPixels != 8 {
		t.Errorf("Expected 8 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 24 {
		t.Errorf("Expected 24 samples, got %d", stats.TotalSamples)
	}
	if mockIntegrator.callCount != 24 {
		t.Errorf("Expected 24 integrator calls, got %d", mockIntegrator.callCount)
	}
	if got := pixelStats[1][2].GetColor(); got != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected averaged color (1,0,0), got %v", got)
	}
}

func TestTileRendererRowsCountFromBottom(t *testing.T) {
	s := createTestScene(8, 4)
	// Encode the vertical component of the primary ray as the red channel
	mockIntegrator := &MockIntegrator{colorFn: func(ray core.Ray) core.Vec3 {
		return core.NewVec3(ray.Direction.Normalize().Y, 0, 0)
	}}
	renderer := NewTileRenderer(s, mockIntegrator)

	width, height := s.SamplingConfig.Width, s.SamplingConfig.Height
	pixelStats := newPixelStats(width, height)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))
	renderer.RenderTileBounds(image.Rect(0, 0, width, height), pixelStats, sampler, 4)

	top := pixelStats[0][width/2].GetColor().X
	bottom := pixelStats[height-1][width/2].GetColor().X
	if top <= 0 || bottom >= 0 {
		t.Errorf("Expected top row to look up and bottom row to look down, got top %f bottom %f", top, bottom)
	}
}

func TestTileRendererDeterministic(t *testing.T) {
	s := createTestScene(4, 3)
	if err := s.Preprocess(core.NewSeededSampler(1)); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	pathIntegrator := integrator.NewPathTracingIntegrator(integrator.Config{MaxDepth: s.SamplingConfig.MaxDepth})
	renderer := NewTileRenderer(s, pathIntegrator)
	bounds := image.Rect(0, 0, 2, 2)

	pixelStats1 := newPixelStats(4, 2)
	stats1 := renderer.RenderTileBounds(bounds, pixelStats1, core.NewSeededSampler(123), 3)

	pixelStats2 := newPixelStats(4, 2)
	stats2 := renderer.RenderTileBounds(bounds, pixelStats2, core.NewSeededSampler(123), 3)

	if stats1.TotalSamples != stats2.TotalSamples {
		t.Errorf("Expected same total samples, got %d and %d", stats1.TotalSamples, stats2.TotalSamples)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			color1 := pixelStats1[y][x].GetColor()
			color2 := pixelStats2[y][x].GetColor()
			if color1 != color2 {
				t.Errorf("Expected identical colors for pixel [%d][%d], got %v and %v", y, x, color1, color2)
			}
		}
	}
}

func TestTileRendererBoundsClipping(t *testing.T) {
	s := createTestScene(5, 2)
	mockIntegrator := &MockIntegrator{colorFn: func(ray core.Ray) core.Vec3 { return core.NewVec3(1, 0, 0) }}
	renderer := NewTileRenderer(s, mockIntegrator)

	pixelStats := newPixelStats(5, 5)

	// Only render a 2x2 subset
	bounds := image.Rect(1, 1, 3, 3)
	stats := renderer.RenderTileBounds(bounds, pixelStats, core.NewSeededSampler(42), 2)

	if stats.TotalPixels != 4 {
		t.Errorf("Expected 4 pixels processed, got %d", stats.TotalPixels)
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			inBounds := x >= 1 && x < 3 && y >= 1 && y < 3
			hasSamples := pixelStats[y][x].SampleCount > 0

			if inBounds && !hasSamples {
				t.Errorf("Expected pixel [%d][%d] in bounds to have samples", y, x)
			}
			if !inBounds && hasSamples {
				t.Errorf("Expected pixel [%d][%d] outside bounds to have no samples", y, x)
			}
		}
	}
}
