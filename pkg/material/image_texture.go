package material

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// missingImageColor is returned by textures that have no pixel data
var missingImageColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewMissingImageTexture creates a texture that renders as solid cyan
func NewMissingImageTexture() *ImageTexture {
	return &ImageTexture{}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return missingImageColor
	}

	// Clamp UV coordinates to [0, 1]
	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	u := max(0.0, min(1.0, uv.X))
	v := 1.0 - max(0.0, min(1.0, uv.Y))

	// Convert to pixel coordinates, keeping u=1 and v=0 inside the image
	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
