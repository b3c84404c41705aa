// Package astar defines the pathfinder's options, result shape, and
// sentinel errors.
package astar

import (
	"errors"
	"math"

	"github.com/eykd/starlane/grid"
)

// Sentinel errors for pathfinder construction.
var (
	// ErrNilCostMap indicates a nil *costmap.CostMap was passed to New.
	ErrNilCostMap = errors.New("astar: cost map is nil")

	// ErrEmptyGrid indicates a cost map with no cells.
	ErrEmptyGrid = errors.New("astar: cost map must have at least one cell")

	// ErrDimensionMismatch indicates cost data whose length differs from
	// width*height.
	ErrDimensionMismatch = errors.New("astar: cost data length must equal width*height")

	// ErrNegativeCost indicates a cost map whose quantization decodes to
	// negative costs, which breaks the search's optimality guarantee.
	ErrNegativeCost = errors.New("astar: cost map must not contain negative costs")

	// ErrBadMaxCost indicates a negative MaxCost bound, which is not
	// meaningful for a cost threshold.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// PathResult is a computed route: Path runs from start to end inclusive in
// world coordinates, TotalCost is the summed movement cost. A start==end
// query yields a single-element path with cost 0.
type PathResult struct {
	Path      []grid.Coordinate
	TotalCost float64
}

// Options configures a Pathfinder.
//
// MaxCost – abandon the search once the cheapest route popped from the open
// set exceeds this bound; the query then reports no path. Must be ≥ 0.
// Default is +Inf (no bound).
type Options struct {
	MaxCost float64
}

// Option is a functional option for configuring New.
type Option func(*Options)

// WithMaxCost bounds route cost. A search whose best popped g-score exceeds
// max is abandoned and reported as no path; a route costing exactly max is
// still returned. Must pass a non-negative value; negative values panic
// with ErrBadMaxCost.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options with no cost bound.
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}
