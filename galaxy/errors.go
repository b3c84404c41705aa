// SPDX-License-Identifier: MIT
// Package: starlane/galaxy
//
// errors.go — sentinel errors for the galaxy package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Validate and Generate attach context via %w where it helps.
//
// AI-Hints:
//   • Validate covers every configuration class, so checking a Config
//     upfront makes Generate's own validation a no-op.
//   • ErrPlacementFailed is a runtime condition, not a config one: the
//     board was too crowded for the requested count and separation.
//   • A pair of systems without an affordable route is NOT an error;
//     the pair is simply left unlinked.

package galaxy

import "errors"

// ErrBadSystemCount indicates a non-positive system count.
// Usage: if errors.Is(err, ErrBadSystemCount) { /* fix config */ }.
var ErrBadSystemCount = errors.New("galaxy: system count must be at least 1")

// ErrBadGalaxyRadius indicates a non-positive placement radius.
var ErrBadGalaxyRadius = errors.New("galaxy: galaxy radius must be at least 1")

// ErrBadSeparation indicates a negative minimum separation between systems.
var ErrBadSeparation = errors.New("galaxy: min separation must be non-negative")

// ErrBadNoise indicates an invalid noise layer parameter: a frequency
// that is not strictly positive or an octave count below 1.
var ErrBadNoise = errors.New("galaxy: invalid noise parameters")

// ErrBadTerrain indicates an invalid terrain parameter: fill probability
// outside [0,1], negative iterations, or negative padding.
var ErrBadTerrain = errors.New("galaxy: invalid terrain parameters")

// ErrBadWeights indicates invalid cost pricing: base costs must be
// strictly positive and noise weights non-negative, so composed cells
// can never price below zero.
var ErrBadWeights = errors.New("galaxy: invalid cost weights")

// ErrBadRoutes indicates an invalid route parameter: link radius and
// max route cost must both be strictly positive.
var ErrBadRoutes = errors.New("galaxy: invalid route parameters")

// ErrPlacementFailed indicates that rejection sampling exhausted its
// attempt budget before placing every system. The usual cures are a
// lower SystemCount, a lower MinSeparation, or a larger GalaxyRadius.
// Usage: if errors.Is(err, ErrPlacementFailed) { /* loosen config */ }.
var ErrPlacementFailed = errors.New("galaxy: could not place all systems")
