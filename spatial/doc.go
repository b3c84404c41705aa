// Package spatial implements a grid-bucketed point index with constant-time
// inserts and ring-scan radius queries.
//
// What:
//
//   - Hash buckets integer points by cell: key = ⌊x/cellSize⌋ + ⌊y/cellSize⌋·gridWidth.
//   - Insert appends a point index to its cell bucket and records its position.
//   - QueryRadius scans the ⌈r/cellSize⌉-ring of cells around the query point
//     (at minimum the 3×3 block) and keeps points with squared Euclidean
//     distance ≤ r².
//
// Why:
//
//   - Placement needs "is anything within d of here?" answered thousands of
//     times while seeding a galaxy; a full scan per probe is quadratic.
//   - Route planning asks for every neighbor inside a link radius; buckets
//     bound that to the cells the radius can touch.
//
// Guarantees:
//
//   - A point within the radius is always found (cells are scanned one ring
//     wider than the radius requires).
//   - Each stored index appears at most once per result, even when distinct
//     ring cells alias to the same bucket key.
//   - Queries never mutate the index; results come back in deterministic
//     scan order.
//
// Complexity:
//
//   - Insert: O(1) amortized.
//   - QueryRadius: O(ring² + k) where k is the number of points in scanned
//     buckets.
//
// Errors:
//
//   - ErrBadCellSize: cell size below 1.
//   - ErrBadGridWidth: grid width below 1.
package spatial
