// Package costmap defines the cost-grid types, options, and sentinel errors.
package costmap

import (
	"errors"

	"github.com/eykd/starlane/cellular"
	"github.com/eykd/starlane/perlin"
)

// Sentinel errors for cost-map operations.
var (
	// ErrNoCoordinates indicates ComputeBounds received no coordinates.
	ErrNoCoordinates = errors.New("costmap: at least one coordinate is required")
	// ErrBadPadding indicates a negative padding value.
	ErrBadPadding = errors.New("costmap: padding must be non-negative")
	// ErrBadDimensions indicates a grid width or height below 1.
	ErrBadDimensions = errors.New("costmap: width and height must be at least 1")
	// ErrDimensionMismatch indicates layer grids whose length differs from width*height.
	ErrDimensionMismatch = errors.New("costmap: layer grid length must equal width*height")
)

// Quantization is the affine mapping from stored bytes back to real costs,
// together with the grid's placement in world space. It is supplied verbatim
// to downstream writers, so the JSON field names are part of the wire format.
//
// Invariant: MinCost <= MaxCost. They are equal only for a uniform cost
// field, in which case every byte decodes to that single cost.
type Quantization struct {
	MinCost float64 `json:"minCost"`
	MaxCost float64 `json:"maxCost"`
	OriginX int     `json:"gridOriginX"`
	OriginY int     `json:"gridOriginY"`
	Width   int     `json:"gridWidth"`
	Height  int     `json:"gridHeight"`
}

// Decode maps a stored byte back to its real cost:
// MinCost + (b/255)·(MaxCost-MinCost). Decode(0) == MinCost and
// Decode(255) == MaxCost exactly.
//
// Complexity: O(1).
func (q Quantization) Decode(b byte) float64 {
	return q.MinCost + (float64(b)/255.0)*(q.MaxCost-q.MinCost)
}

// Weights prices cells during composition. A cell classified as wall costs
// BaseWallCost + WallNoiseWeight·wallNoise; an open cell costs
// BaseOpenCost + OpenNoiseWeight·baseNoise.
type Weights struct {
	BaseOpenCost    float64
	OpenNoiseWeight float64
	BaseWallCost    float64
	WallNoiseWeight float64
}

// DefaultWeights returns the pricing used when a caller supplies none:
// open space near unit cost with mild variation, walls an order of
// magnitude above it so routes prefer corridors without walls being
// strictly impassable.
func DefaultWeights() Weights {
	return Weights{
		BaseOpenCost:    1,
		OpenNoiseWeight: 2,
		BaseWallCost:    10,
		WallNoiseWeight: 20,
	}
}

// Options configures Generate.
type Options struct {
	// Padding is the margin of cells added around the coordinate bounding box.
	Padding int
	// BaseNoise shapes the open-space cost layer.
	BaseNoise perlin.Options
	// WallNoise shapes the wall cost layer.
	WallNoise perlin.Options
	// FillProbability and Iterations configure the terrain automaton.
	FillProbability float64
	Iterations      int
	// Weights prices composed cells.
	Weights Weights
}

// DefaultOptions returns the generation profile used by galaxy assembly:
// padding 10, a soft base layer, a sharper wall layer, and the default
// terrain and pricing parameters.
func DefaultOptions() Options {
	return Options{
		Padding:         10,
		BaseNoise:       perlin.Options{Frequency: 0.05, Octaves: 4},
		WallNoise:       perlin.Options{Frequency: 0.08, Octaves: 3},
		FillProbability: 0.45,
		Iterations:      4,
		Weights:         DefaultWeights(),
	}
}

// terrainOptions adapts the automaton parameters to a concrete grid size.
func (o Options) terrainOptions(width, height int) cellular.Options {
	return cellular.Options{
		Width:           width,
		Height:          height,
		FillProbability: o.FillProbability,
		Iterations:      o.Iterations,
	}
}

// CostMap is a quantized traversal-cost grid in row-major layout
// (index = y*Width + x). Data and Quantization are immutable once built;
// the pathfinder treats them as read-only input.
type CostMap struct {
	Data         []byte
	Width        int
	Height       int
	Quantization Quantization
}

// At returns the stored byte at local grid coordinate (x, y). Callers are
// responsible for bounds; At itself does not validate.
//
// Complexity: O(1).
func (m *CostMap) At(x, y int) byte {
	return m.Data[y*m.Width+x]
}

// DecodeAt returns the real cost at local grid coordinate (x, y).
//
// Complexity: O(1).
func (m *CostMap) DecodeAt(x, y int) float64 {
	return m.Quantization.Decode(m.At(x, y))
}
