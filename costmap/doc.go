// Package costmap builds quantized traversal-cost grids from star system
// coordinates.
//
// What:
//
//   - ComputeBounds pads the bounding box of the input coordinates into the
//     grid rectangle the map will cover.
//   - Compose merges a cellular terrain grid and two noise grids into float
//     costs (wall cells priced from wall noise, open cells from base noise),
//     then linearly quantizes them to bytes with the recovery parameters in
//     a Quantization record.
//   - Generate orchestrates the full pipeline: bounds, three independently
//     seeded layers (base noise, wall noise, terrain), then composition.
//
// Layer seeding:
//
//   - Generate draws exactly one word from the caller's generator and
//     derives one child seed per layer from it via prng.DeriveSeed with a
//     fixed stream id per layer. Layers therefore never share a draw
//     sequence: adding draws to one layer cannot shift another, and the
//     derivation is part of the reproducibility contract.
//
// Quantization:
//
//   - cost = MinCost + (byte/255)·(MaxCost-MinCost). A uniform cost field
//     stores every cell as the mid value 128 and decodes to the single cost
//     for any byte, so division by zero never occurs.
//
// Complexity:
//
//   - ComputeBounds: O(n) over coordinates. Compose: O(W×H).
//     Generate: O(W×H×(octaves + iterations)).
//
// Errors:
//
//   - ErrNoCoordinates: bounds requested for an empty coordinate list.
//   - ErrBadPadding: negative padding.
//   - ErrBadDimensions: non-positive grid dimensions.
//   - ErrDimensionMismatch: layer grids disagree with width×height.
package costmap
