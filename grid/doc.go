// Package grid provides the shared 2D primitives used across the starlane
// generation pipeline: integer coordinates, inclusive rectangular bounds, and
// row-major index arithmetic.
//
// What:
//
//   - Coordinate is an integer (X, Y) position in galaxy space.
//   - Bounds is an inclusive axis-aligned rectangle with padding and
//     containment helpers.
//   - Index / Unindex convert between (x, y) pairs and row-major flat-array
//     offsets (idx = y*width + x).
//   - FloorDiv divides rounding toward negative infinity, which keeps bucket
//     keys stable for negative coordinates.
//
// Why:
//
//   - Every stage (spatial hashing, cellular smoothing, noise sampling, cost
//     composition, pathfinding) addresses the same flat row-major buffers;
//     centralizing the index math keeps their layouts interchangeable.
//   - Go's integer division truncates toward zero, so -1/16 == 0; FloorDiv
//     gives the -1 that grid bucketing requires.
//
// Complexity:
//
//   - All functions are O(1) with no allocations.
package grid
