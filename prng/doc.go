// Package prng implements the deterministic pseudo-random number generator
// that drives every stage of starlane generation.
//
// What:
//
//   - Prng is a Mulberry32 generator: 32 bits of state, one addition and a
//     short avalanche per draw. The same seed yields the same sequence on
//     every platform, which is the property the whole pipeline rests on.
//   - DeriveSeed mixes a parent seed with a stream identifier into an
//     uncorrelated child seed, so independent stages can consume the same
//     master seed without sharing a draw sequence.
//   - Fork builds a child generator from the parent's next draw and a stream
//     identifier. The parent advances by exactly one draw per fork.
//
// Why:
//
//   - Stored galaxies are regenerated from their seed alone; any drift in the
//     draw sequence silently corrupts them. math/rand sources are neither
//     pinned across Go releases nor 32-bit, so the generator is fixed here.
//   - Stream derivation lets stages evolve independently: adding draws to one
//     stage must never shift the sequence seen by another.
//
// Determinism:
//
//   - The output of New(seed) is frozen. Changing the mixing constants, the
//     draw order, or DeriveSeed breaks every previously stored galaxy.
//
// Concurrency:
//
//   - A Prng is not safe for concurrent use. Fork independent generators for
//     parallel work instead of sharing one.
//
// Complexity:
//
//   - All operations are O(1) with no allocations except the *Prng returned
//     by New and Fork.
package prng
