package material

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a lattice value-noise generator with smoothed trilinear interpolation
type Perlin struct {
	randomFloat [perlinPointCount]float64
	permX       [perlinPointCount]int
	permY       [perlinPointCount]int
	permZ       [perlinPointCount]int
}

// NewPerlin builds the lattice and permutation tables from sampler
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.randomFloat {
		p.randomFloat[i] = sampler.Get1D()
	}
	generatePermutation(&p.permX, sampler)
	generatePermutation(&p.permY, sampler)
	generatePermutation(&p.permZ, sampler)
	return p
}

// Noise returns a value in [0,1) that varies smoothly with point
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)

	u := hermite(point.X - fx)
	v := hermite(point.Y - fy)
	w := hermite(point.Z - fz)

	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]float64
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randomFloat[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinearInterp(&c, u, v, w)
}

// hermite smooths t in [0,1] so the lattice seams are not visible
func hermite(t float64) float64 {
	return t * t * (3 - 2*t)
}

func trilinearInterp(c *[2][2][2]float64, u, v, w float64) float64 {
	accum := 0.0
	for i := 0; i < 2; i++ {
		fi := float64(i)
		for j := 0; j < 2; j++ {
			fj := float64(j)
			for k := 0; k < 2; k++ {
				fk := float64(k)
				accum += (fi*u + (1-fi)*(1-u)) *
					(fj*v + (1-fj)*(1-v)) *
					(fk*w + (1-fk)*(1-w)) *
					c[i][j][k]
			}
		}
	}
	return accum
}

// generatePermutation fills perm with a random permutation of 0..255 (Fisher-Yates)
func generatePermutation(perm *[perlinPointCount]int, sampler core.Sampler) {
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := core.RandomInt(sampler, 0, i)
		perm[i], perm[target] = perm[target], perm[i]
	}
}
