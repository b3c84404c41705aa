// Package astar implements A* route queries over quantized cost grids.
//
// The search follows the lazy decrease-key pattern: improved routes push
// fresh heap entries, and stale entries are discarded on pop against the
// closed set. Movement cost into a cell is that destination cell's
// dequantized cost (×√2 on diagonals), and the octile heuristic is scaled
// by the map's minimum cell cost to stay admissible under varying costs.
package astar

import (
	"math"

	"github.com/eykd/starlane/costmap"
	"github.com/eykd/starlane/grid"
)

// sqrt2Minus1 is the octile-distance diagonal surcharge.
var sqrt2Minus1 = math.Sqrt2 - 1

// neighborSteps enumerates 8-directional moves clockwise from north.
var neighborSteps = [8]struct {
	dx, dy   int
	diagonal bool
}{
	{0, -1, false}, {1, -1, true}, {1, 0, false}, {1, 1, true},
	{0, 1, false}, {-1, 1, true}, {-1, 0, false}, {-1, -1, true},
}

// Pathfinder answers lowest-cost route queries over one cost map. It holds
// the map read-only plus a 256-entry decode table, so construction is cheap
// and queries allocate only their own search state. Safe for concurrent
// FindPath calls.
type Pathfinder struct {
	data    []byte
	width   int
	height  int
	originX int
	originY int
	minCost float64
	maxCost float64
	costLUT [256]float64
}

// New builds a Pathfinder over m. The map's byte values are dequantized
// once into a lookup table; the data slice itself is shared, not copied,
// and must not be mutated while the Pathfinder is in use.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilCostMap).
//  2. m must have positive dimensions (ErrEmptyGrid).
//  3. len(m.Data) must equal Width*Height (ErrDimensionMismatch).
//  4. m must decode to non-negative costs only (ErrNegativeCost).
//
// Options customization:
//
//   - WithMaxCost(x): abandon queries whose best route exceeds x (x ≥ 0).
//
// Complexity: O(1) beyond the fixed 256-entry table.
func New(m *costmap.CostMap, opts ...Option) (*Pathfinder, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return nil, ErrNilCostMap
	}
	if m.Width < 1 || m.Height < 1 {
		return nil, ErrEmptyGrid
	}
	if len(m.Data) != m.Width*m.Height {
		return nil, ErrDimensionMismatch
	}
	if m.Quantization.MinCost < 0 || m.Quantization.MaxCost < 0 {
		return nil, ErrNegativeCost
	}

	p := &Pathfinder{
		data:    m.Data,
		width:   m.Width,
		height:  m.Height,
		originX: m.Quantization.OriginX,
		originY: m.Quantization.OriginY,
		minCost: m.Quantization.MinCost,
		maxCost: cfg.MaxCost,
	}
	for b := 0; b < 256; b++ {
		p.costLUT[b] = m.Quantization.Decode(byte(b))
	}
	return p, nil
}

// inBounds reports whether local coordinate (x, y) lies on the grid.
func (p *Pathfinder) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// heuristic returns octile distance from (x, y) to (ex, ey), scaled by the
// map's minimum cell cost: max(dx,dy) + (√2−1)·min(dx,dy), all multiplied
// by minCost. Admissible because every move into a cell costs at least
// minCost (×√2 ≥ √2·minCost on diagonals).
func (p *Pathfinder) heuristic(x, y, ex, ey int) float64 {
	dx := math.Abs(float64(ex - x))
	dy := math.Abs(float64(ey - y))
	if dx < dy {
		dx, dy = dy, dx
	}
	return (dx + sqrt2Minus1*dy) * p.minCost
}

// FindPath computes the lowest-cost route between two world coordinates.
// The returned path runs from start to end inclusive, in world coordinates,
// with TotalCost equal to the summed movement cost.
//
// ok=false covers every expected absence uniformly: start or end outside
// the grid, no route at all, and searches abandoned because the best popped
// g-score exceeded the MaxCost bound. None of these are errors.
//
// Complexity: O(W×H log(W×H)) worst case; abandoned searches stop at the
// first over-budget pop.
func (p *Pathfinder) FindPath(start, end grid.Coordinate) (PathResult, bool) {
	sx, sy := start.X-p.originX, start.Y-p.originY
	ex, ey := end.X-p.originX, end.Y-p.originY
	if !p.inBounds(sx, sy) || !p.inBounds(ex, ey) {
		return PathResult{}, false
	}
	if sx == ex && sy == ey {
		return PathResult{Path: []grid.Coordinate{start}, TotalCost: 0}, true
	}

	size := p.width * p.height
	startIdx := int32(grid.Index(sx, sy, p.width))
	endIdx := int32(grid.Index(ex, ey, p.width))

	gScore := make([]float64, size)
	for i := range gScore {
		gScore[i] = math.Inf(1)
	}
	cameFrom := make([]int32, size)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	closed := make([]bool, size)

	open := NewBinaryHeap(64)
	gScore[startIdx] = 0
	open.Push(startIdx, p.heuristic(sx, sy, ex, ey))

	for open.Len() > 0 {
		current, _ := open.Pop()
		if closed[current] {
			continue
		}
		g := gScore[current]

		// Pops come out in nondecreasing f order, so once the cheapest
		// finalized route exceeds the bound no cheaper route to the end
		// can exist either.
		if g > p.maxCost {
			return PathResult{}, false
		}
		if current == endIdx {
			return PathResult{Path: p.reconstruct(cameFrom, current), TotalCost: g}, true
		}
		closed[current] = true

		cx, cy := grid.Unindex(int(current), p.width)
		for _, step := range neighborSteps {
			nx, ny := cx+step.dx, cy+step.dy
			if !p.inBounds(nx, ny) {
				continue
			}
			next := int32(grid.Index(nx, ny, p.width))
			if closed[next] {
				continue
			}

			moveCost := p.costLUT[p.data[next]]
			if step.diagonal {
				moveCost *= math.Sqrt2
			}
			ng := g + moveCost
			if ng >= gScore[next] {
				continue
			}
			gScore[next] = ng
			cameFrom[next] = current
			open.Push(next, ng+p.heuristic(nx, ny, ex, ey))
		}
	}
	return PathResult{}, false
}

// reconstruct walks predecessors from the end node back to the start,
// converts local indices to world coordinates, and reverses into
// start-to-end order.
func (p *Pathfinder) reconstruct(cameFrom []int32, end int32) []grid.Coordinate {
	var path []grid.Coordinate
	for at := end; at != -1; at = cameFrom[at] {
		x, y := grid.Unindex(int(at), p.width)
		path = append(path, grid.Coordinate{X: x + p.originX, Y: y + p.originY})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
