package renderer

import (
	"image"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/integrator"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator.
// The scene must already be preprocessed.
func NewTileRenderer(scene *scene.Scene, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		integrator: integratorInst,
	}
}

// RenderTileBounds takes samplesPerPixel samples for every pixel within bounds.
// pixelStats is indexed [y][x] in image space, with y = 0 the top row.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler, samplesPerPixel int) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			stats.TotalSamples += tr.samplePixel(x, y, &pixelStats[y][x], sampler, samplesPerPixel)
		}
	}

	return stats
}

// samplePixel accumulates samples for image pixel (x, y) and returns how many were taken
func (tr *TileRenderer) samplePixel(x, y int, ps *PixelStats, sampler core.Sampler, samplesPerPixel int) int {
	width := tr.scene.SamplingConfig.Width
	height := tr.scene.SamplingConfig.Height

	// Camera parameters run bottom-up, so row j counts from the bottom of the image
	j := height - 1 - y
	uScale := float64(max(1, width-1))
	vScale := float64(max(1, height-1))

	for sample := 0; sample < samplesPerPixel; sample++ {
		s := (float64(x) + sampler.Get1D()) / uScale
		t := (float64(j) + sampler.Get1D()) / vScale
		ray := tr.scene.Camera.GetRay(s, t, sampler)
		ps.AddSample(tr.integrator.RayColor(ray, tr.scene.World, tr.scene.Background, sampler))
	}

	return samplesPerPixel
}
