// Package dice provides Fate (4dF) and polyhedral (NdS) rolls over a
// caller-supplied prng.Prng.
//
// What:
//
//   - Roll4dF sums four Fate dice, each drawn as RandInt(-1, 1); range [-4, 4].
//   - RollNdS sums count draws of RandInt(1, sides); range [count, count*sides].
//
// The functions hold no state of their own: a roll is fully determined by the
// generator's position in its draw sequence, so callers that share one
// generator must roll in a fixed order to stay reproducible.
package dice
