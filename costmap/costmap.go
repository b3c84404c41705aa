// Package costmap composes noise and terrain layers into quantized cost grids.
package costmap

import (
	"math"

	"github.com/eykd/starlane/cellular"
	"github.com/eykd/starlane/grid"
	"github.com/eykd/starlane/perlin"
	"github.com/eykd/starlane/prng"
)

// Layer stream ids for child-seed derivation. Frozen: stored galaxies
// regenerate their maps through these exact streams.
const (
	streamBaseNoise uint32 = 0
	streamWallNoise uint32 = 1
	streamTerrain   uint32 = 2
)

// midByte is the value every cell takes when the cost field is uniform.
const midByte byte = 128

// ComputeBounds returns the inclusive grid rectangle covering all
// coordinates with a margin of padding cells on every side. A single point
// (or many identical points) still yields a valid positive-area grid.
//
// Complexity: O(n).
func ComputeBounds(coords []grid.Coordinate, padding int) (grid.Bounds, error) {
	if len(coords) == 0 {
		return grid.Bounds{}, ErrNoCoordinates
	}
	if padding < 0 {
		return grid.Bounds{}, ErrBadPadding
	}

	b := grid.Bounds{
		MinX: coords[0].X, MaxX: coords[0].X,
		MinY: coords[0].Y, MaxY: coords[0].Y,
	}
	for _, c := range coords[1:] {
		if c.X < b.MinX {
			b.MinX = c.X
		}
		if c.X > b.MaxX {
			b.MaxX = c.X
		}
		if c.Y < b.MinY {
			b.MinY = c.Y
		}
		if c.Y > b.MaxY {
			b.MaxY = c.Y
		}
	}
	return b.Expand(padding), nil
}

// Compose merges a terrain grid and two noise grids into a quantized cost
// map. A cell is priced as wall when it sits on the grid boundary or the
// terrain grid marks it wall; otherwise it is priced as open space. Float
// costs are scanned for their global range and linearly quantized to bytes;
// a uniform field quantizes every cell to the mid value instead of dividing
// by zero.
//
// The terrain grid uses cellular.Wall/cellular.Open values; both noise
// grids are expected in [0, 1] but any finite values compose correctly.
//
// Complexity: O(W×H).
func Compose(terrain []byte, baseNoise, wallNoise []float64, width, height int, w Weights, originX, originY int) (*CostMap, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	size := width * height
	if len(terrain) != size || len(baseNoise) != size || len(wallNoise) != size {
		return nil, ErrDimensionMismatch
	}

	costs := make([]float64, size)
	minCost := math.Inf(1)
	maxCost := math.Inf(-1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := grid.Index(x, y, width)
			boundary := x == 0 || y == 0 || x == width-1 || y == height-1
			var c float64
			if boundary || terrain[idx] == cellular.Wall {
				c = w.BaseWallCost + w.WallNoiseWeight*wallNoise[idx]
			} else {
				c = w.BaseOpenCost + w.OpenNoiseWeight*baseNoise[idx]
			}
			costs[idx] = c
			minCost = math.Min(minCost, c)
			maxCost = math.Max(maxCost, c)
		}
	}

	data := make([]byte, size)
	if maxCost == minCost {
		for i := range data {
			data[i] = midByte
		}
	} else {
		scale := 255.0 / (maxCost - minCost)
		for i, c := range costs {
			data[i] = byte(math.Round((c - minCost) * scale))
		}
	}

	return &CostMap{
		Data:   data,
		Width:  width,
		Height: height,
		Quantization: Quantization{
			MinCost: minCost,
			MaxCost: maxCost,
			OriginX: originX,
			OriginY: originY,
			Width:   width,
			Height:  height,
		},
	}, nil
}

// Generate builds the cost map covering coords. It computes bounds, draws
// one word from rng, derives one independent child generator per layer from
// that word (base noise, wall noise, terrain, in fixed streams), runs the
// layers at the computed grid size, and composes the result.
//
// Exactly one draw is consumed from rng regardless of grid size, so callers
// interleaving other draws stay reproducible.
//
// Complexity: O(W×H×(octaves + iterations)).
func Generate(coords []grid.Coordinate, opts Options, rng *prng.Prng) (*CostMap, error) {
	bounds, err := ComputeBounds(coords, opts.Padding)
	if err != nil {
		return nil, err
	}
	width, height := bounds.Width(), bounds.Height()

	parent := rng.Uint32()
	baseRng := prng.New(int64(prng.DeriveSeed(parent, streamBaseNoise)))
	wallRng := prng.New(int64(prng.DeriveSeed(parent, streamWallNoise)))
	terrainRng := prng.New(int64(prng.DeriveSeed(parent, streamTerrain)))

	baseSampler, err := perlin.NewSampler(baseRng, opts.BaseNoise)
	if err != nil {
		return nil, err
	}
	wallSampler, err := perlin.NewSampler(wallRng, opts.WallNoise)
	if err != nil {
		return nil, err
	}
	terrain, err := cellular.Generate(terrainRng, opts.terrainOptions(width, height))
	if err != nil {
		return nil, err
	}

	baseGrid := baseSampler.GenerateGrid(width, height)
	wallGrid := wallSampler.GenerateGrid(width, height)

	return Compose(terrain, baseGrid, wallGrid, width, height, opts.Weights, bounds.MinX, bounds.MinY)
}
