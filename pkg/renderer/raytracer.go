package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/integrator"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// DefaultTileSize is the edge length of a render tile in pixels
const DefaultTileSize = 16

// ErrEmptyImage is returned when a scene asks for an image with no pixels
var ErrEmptyImage = errors.New("image has no pixels")

// RenderConfig controls how the image is split up and scheduled
type RenderConfig struct {
	TileSize   int   // Edge length of each square tile (0 = DefaultTileSize)
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed for every tile's random stream
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   DefaultTileSize,
		NumWorkers: 0,
		Seed:       1,
	}
}

// Raytracer renders a scene into an 8-bit image
type Raytracer struct {
	scene        *scene.Scene
	config       RenderConfig
	tileRenderer *TileRenderer
	logger       core.Logger
}

// NewRaytracer creates a raytracer for the given scene. A scene whose
// world has not been built yet is preprocessed with the configured seed.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	if s.SamplingConfig.Width <= 0 || s.SamplingConfig.Height <= 0 {
		return nil, fmt.Errorf("scene %q: %dx%d: %w", s.Name, s.SamplingConfig.Width, s.SamplingConfig.Height, ErrEmptyImage)
	}
	if s.World == nil {
		if err := s.Preprocess(core.NewSeededSampler(config.Seed)); err != nil {
			return nil, err
		}
	}

	pathTracer := integrator.NewPathTracingIntegrator(integrator.Config{
		MaxDepth: s.SamplingConfig.MaxDepth,
	})

	return &Raytracer{
		scene:        s,
		config:       config,
		tileRenderer: NewTileRenderer(s, pathTracer),
		logger:       logger,
	}, nil
}

// Render traces every pixel of the scene and returns the finished image.
// Cancelling ctx stops the render between tiles and returns ctx.Err().
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	sampling := rt.scene.SamplingConfig
	width, height := sampling.Width, sampling.Height

	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)
	pool := NewWorkerPool(rt.tileRenderer, len(tiles), rt.config.NumWorkers)

	rt.logger.Printf("Rendering %s: %dx%d, %d spp, depth %d, %d tiles on %d workers\n",
		rt.scene.Name, width, height, sampling.SamplesPerPixel, sampling.MaxDepth, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:            tile,
			SamplesPerPixel: sampling.SamplesPerPixel,
			PixelStats:      pixelStats,
		})
	}

	var stats RenderStats
	var renderErr error
	progressInterval := max(1, len(tiles)/10)

	for remaining := len(tiles); remaining > 0; remaining-- {
		result, _ := pool.GetResult()
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.add(result.Stats)
		if (remaining-1)%progressInterval == 0 {
			rt.logger.Printf("Tiles remaining: %d\n", remaining-1)
		}
	}
	pool.Stop()

	if renderErr != nil {
		return nil, stats, renderErr
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}

	stats.finalize(time.Since(startTime))
	rt.logger.Printf("Done in %v (%d samples, average luminance %.3f)\n",
		stats.Duration, stats.TotalSamples, CalculateAverageLuminance(img))

	return img, stats, nil
}

// vec3ToColor converts an averaged linear color to an 8-bit pixel:
// gamma 2, clamped to [0, 0.999], scaled by 256
func vec3ToColor(c core.Vec3) color.RGBA {
	c = core.NewVec3(nanToZero(c.X), nanToZero(c.Y), nanToZero(c.Z))
	corrected := c.Clamp(0, math.Inf(1)).GammaCorrect(2.0).Clamp(0, 0.999)

	return color.RGBA{
		R: uint8(256 * corrected.X),
		G: uint8(256 * corrected.Y),
		B: uint8(256 * corrected.Z),
		A: 255,
	}
}

// nanToZero maps NaN to zero
func nanToZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
