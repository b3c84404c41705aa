// Package cellular synthesizes binary open/wall grids by iterative
// neighbor-count smoothing.
//
// What:
//
//   - InitializeGrid seeds a width×height byte grid: boundary cells are
//     forced to wall, interior cells become wall with a given probability
//     drawn from the supplied generator.
//   - StepGrid applies one smoothing pass of the 4-5 rule: a cell becomes
//     wall when 5 or more of the 9 cells in its 3×3 neighborhood (itself
//     included) are walls. Boundary cells stay wall. The input is never
//     mutated.
//   - Generate runs InitializeGrid once and StepGrid a fixed number of
//     times, yielding cave-like connected open regions.
//
// Determinism:
//
//   - InitializeGrid consumes exactly one draw per interior cell in
//     row-major order, so identical seed and options reproduce the grid
//     byte for byte regardless of allocation order.
//
// Complexity:
//
//   - InitializeGrid: O(W×H). StepGrid: O(W×H) with a 9-cell stencil.
//     Generate: O(W×H×iterations).
//
// Errors:
//
//   - ErrBadDimensions: width or height below 1.
//   - ErrBadFillProbability: probability outside [0, 1].
//   - ErrBadIterations: negative iteration count.
package cellular
