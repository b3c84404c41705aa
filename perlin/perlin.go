// Package perlin implements seeded gradient noise for cost-map layers.
package perlin

import (
	"errors"
	"math"

	"github.com/eykd/starlane/grid"
	"github.com/eykd/starlane/prng"
)

// FBM shape shared by every layer; frozen because stored galaxies depend on it.
const (
	// lacunarity is the per-octave frequency multiplier.
	lacunarity = 2.0
	// persistence is the per-octave amplitude multiplier.
	persistence = 0.5
)

// Sentinel errors for sampler construction.
var (
	// ErrBadFrequency indicates a base frequency that is zero or negative.
	ErrBadFrequency = errors.New("perlin: frequency must be positive")
	// ErrBadOctaves indicates an octave count below 1.
	ErrBadOctaves = errors.New("perlin: octaves must be at least 1")
)

// Options configures a Sampler.
type Options struct {
	// Frequency scales world coordinates into noise space for the first
	// octave. Fractional values keep integer cell coordinates off the noise
	// lattice, where gradient noise is identically zero.
	Frequency float64
	// Octaves is the number of fractal layers summed per sample.
	Octaves int
}

// DefaultOptions returns the layer shape used when a caller supplies none:
// frequency 0.05 (one feature per ~20 cells) over 4 octaves.
func DefaultOptions() Options {
	return Options{Frequency: 0.05, Octaves: 4}
}

// Sampler evaluates fractal gradient noise. It is immutable after
// construction and safe for concurrent readers.
type Sampler struct {
	perm      [512]int
	frequency float64
	octaves   int
	maxAmp    float64
}

// NewSampler builds a Sampler whose permutation table is shuffled solely
// from the supplied generator: a Fisher-Yates pass over 0..255 consuming
// exactly 255 draws in descending index order. The generator is not
// retained; sampling consumes no further draws.
//
// Complexity: O(1).
func NewSampler(rng *prng.Prng, opts Options) (*Sampler, error) {
	if opts.Frequency <= 0 {
		return nil, ErrBadFrequency
	}
	if opts.Octaves < 1 {
		return nil, ErrBadOctaves
	}

	var p [256]int
	for i := range p {
		p[i] = i
	}
	for i := 255; i > 0; i-- {
		j := rng.RandInt(0, i)
		p[i], p[j] = p[j], p[i]
	}

	s := &Sampler{frequency: opts.Frequency, octaves: opts.Octaves}
	for i := 0; i < 512; i++ {
		s.perm[i] = p[i&255]
	}
	for o := 0; o < opts.Octaves; o++ {
		s.maxAmp += math.Pow(persistence, float64(o))
	}
	return s, nil
}

// fade is the quintic smoothing spline 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// gradient returns the dot product of one of eight lattice gradient
// directions, selected by the low three hash bits, with the offset (x, y).
func gradient(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// noise2 evaluates one octave of classic gradient noise at (x, y) in noise
// space, returning a value in roughly [-1, 1]. Zero at integer lattice
// points by construction.
func (s *Sampler) noise2(x, y float64) float64 {
	xf := math.Floor(x)
	yf := math.Floor(y)
	xi := int(xf) & 255
	yi := int(yf) & 255
	dx := x - xf
	dy := y - yf

	u := fade(dx)
	v := fade(dy)

	aa := s.perm[s.perm[xi]+yi]
	ab := s.perm[s.perm[xi]+yi+1]
	ba := s.perm[s.perm[xi+1]+yi]
	bb := s.perm[s.perm[xi+1]+yi+1]

	x1 := lerp(gradient(aa, dx, dy), gradient(ba, dx-1, dy), u)
	x2 := lerp(gradient(ab, dx, dy-1), gradient(bb, dx-1, dy-1), u)
	return lerp(x1, x2, v)
}

// Sample evaluates fractal Brownian motion at world coordinate (x, y) and
// returns a value in [0, 1]. Octaves are summed with lacunarity 2.0 and
// persistence 0.5, normalized by the precomputed maximum amplitude, then
// remapped from [-1, 1] to [0, 1]. The result is clamped because aligned
// gradients can push a raw octave marginally past its nominal range.
//
// Complexity: O(octaves).
func (s *Sampler) Sample(x, y float64) float64 {
	sum := 0.0
	amp := 1.0
	freq := s.frequency
	for o := 0; o < s.octaves; o++ {
		sum += amp * s.noise2(x*freq, y*freq)
		amp *= persistence
		freq *= lacunarity
	}

	v := (sum/s.maxAmp + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// GenerateGrid fills a width×height row-major grid by sampling at integer
// cell coordinates. Dimensions below 1 yield an empty grid.
//
// Complexity: O(W×H×octaves).
func (s *Sampler) GenerateGrid(width, height int) []float64 {
	if width < 1 || height < 1 {
		return nil
	}
	out := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out[grid.Index(x, y, width)] = s.Sample(float64(x), float64(y))
		}
	}
	return out
}
