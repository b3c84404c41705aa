// Package spatial buckets 2D integer points for fast radius queries.
package spatial

import (
	"errors"
	"math"

	"github.com/eykd/starlane/grid"
)

// Sentinel errors for spatial hash construction.
var (
	// ErrBadCellSize indicates a cell size below 1.
	ErrBadCellSize = errors.New("spatial: cell size must be at least 1")
	// ErrBadGridWidth indicates a grid width below 1.
	ErrBadGridWidth = errors.New("spatial: grid width must be at least 1")
)

// Hash is a grid-bucketed index over integer points. Each inserted index
// lives in exactly one cell bucket and in the position map. The zero value is
// not usable; construct with New.
type Hash struct {
	cellSize  int
	gridWidth int
	buckets   map[int][]int
	positions map[int]grid.Coordinate
}

// New constructs an empty Hash. cellSize controls bucket granularity;
// gridWidth controls hash-key spacing between bucket rows and is a logical
// stride, not a hard coordinate bound.
//
// Complexity: O(1).
func New(cellSize, gridWidth int) (*Hash, error) {
	if cellSize < 1 {
		return nil, ErrBadCellSize
	}
	if gridWidth < 1 {
		return nil, ErrBadGridWidth
	}
	return &Hash{
		cellSize:  cellSize,
		gridWidth: gridWidth,
		buckets:   make(map[int][]int),
		positions: make(map[int]grid.Coordinate),
	}, nil
}

// key maps a world position to its bucket key. FloorDiv keeps negative
// coordinates in their own cells instead of folding them onto cell 0.
func (h *Hash) key(x, y int) int {
	return grid.FloorDiv(x, h.cellSize) + grid.FloorDiv(y, h.cellSize)*h.gridWidth
}

// Insert records point index at (x, y), appending it to the bucket for that
// cell. Each index must be inserted at most once; re-inserting an index
// duplicates it in the bucket and overwrites its recorded position.
//
// Complexity: O(1) amortized.
func (h *Hash) Insert(index, x, y int) {
	k := h.key(x, y)
	h.buckets[k] = append(h.buckets[k], index)
	h.positions[index] = grid.Coordinate{X: x, Y: y}
}

// Len returns the number of stored points.
// Complexity: O(1).
func (h *Hash) Len() int {
	return len(h.positions)
}

// Position returns the stored coordinate for index, with ok=false when the
// index was never inserted.
// Complexity: O(1).
func (h *Hash) Position(index int) (grid.Coordinate, bool) {
	c, ok := h.positions[index]
	return c, ok
}

// QueryRadius returns the indices of all stored points whose Euclidean
// distance to (x, y) is at most r. The scan covers the ⌈r/cellSize⌉-ring of
// cells around the query cell, never less than the 3×3 block, so no in-range
// point is missed. Buckets aliased by more than one scanned cell are visited
// once, so no index repeats in the result. r <= 0 matches only exact hits at
// (x, y). The query does not mutate the index.
//
// Complexity: O(ring² + k), k = points in scanned buckets.
func (h *Hash) QueryRadius(x, y int, r float64) []int {
	ring := 1
	if r > 0 {
		if c := int(math.Ceil(r / float64(h.cellSize))); c > ring {
			ring = c
		}
	}

	cx := grid.FloorDiv(x, h.cellSize)
	cy := grid.FloorDiv(y, h.cellSize)
	r2 := r * r

	var out []int
	visited := make(map[int]struct{}, (2*ring+1)*(2*ring+1))
	for dy := -ring; dy <= ring; dy++ {
		for dx := -ring; dx <= ring; dx++ {
			k := cx + dx + (cy+dy)*h.gridWidth
			if _, seen := visited[k]; seen {
				continue
			}
			visited[k] = struct{}{}
			for _, idx := range h.buckets[k] {
				p := h.positions[idx]
				ddx := float64(p.X - x)
				ddy := float64(p.Y - y)
				if ddx*ddx+ddy*ddy <= r2 {
					out = append(out, idx)
				}
			}
		}
	}
	return out
}
