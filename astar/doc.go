// Package astar computes lowest-cost routes over quantized cost grids with
// an A* search backed by a typed binary min-heap.
//
// What:
//
//   - Pathfinder wraps a costmap.CostMap read-only and answers FindPath
//     queries between world coordinates.
//   - Movement expands over 8-directional neighbors; a move into a cell
//     costs that destination cell's dequantized cost, multiplied by √2 for
//     diagonal moves.
//   - The heuristic is octile distance scaled by the map's minimum cell
//     cost, which keeps it admissible while cell costs vary.
//   - BinaryHeap is the array-backed open set: push bubbles up, pop swaps
//     the last element into the root and sinks it down.
//
// Search shape:
//
//   - Lazy decrease-key: finding a better route to a cell pushes a fresh
//     heap entry; stale entries are skipped on pop via the closed set.
//   - Ties on f = g + h are broken implicitly by heap order; only strict
//     improvements to g are pushed.
//   - An optional MaxCost bound abandons the search as soon as a popped
//     cell's g exceeds it, bounding the work spent on routes that will be
//     rejected as too far.
//
// Failure semantics:
//
//   - "No path", "start or end outside the grid", and "search exceeded
//     MaxCost" are all the same expected outcome: FindPath returns ok=false
//     and never an error. Construction problems are errors.
//
// Complexity:
//
//   - FindPath: O(W×H log(W×H)) time worst case, O(W×H) memory per query.
//     Query state (g-scores, closed set, predecessors) is discarded after
//     each call; the Pathfinder itself is safe for concurrent FindPath
//     calls since it only reads the map.
//
// Errors:
//
//   - ErrNilCostMap: construction with a nil map.
//   - ErrEmptyGrid: construction with a map without cells.
//   - ErrDimensionMismatch: map data length disagrees with width×height.
//   - ErrBadMaxCost: negative MaxCost option (panics at option site).
package astar
