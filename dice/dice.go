// Package dice implements dice rolls as pure functions over a Prng.
package dice

import "github.com/eykd/starlane/prng"

// Roll4dF rolls four Fate dice and returns their sum in [-4, 4].
// Each die is one RandInt(-1, 1) draw; exactly four draws are consumed.
//
// Complexity: O(1).
func Roll4dF(rng *prng.Prng) int {
	sum := 0
	for i := 0; i < 4; i++ {
		sum += rng.RandInt(-1, 1)
	}
	return sum
}

// RollNdS rolls count dice with the given number of sides and returns their
// sum in [count, count*sides]. Exactly count draws are consumed; count <= 0
// consumes nothing and returns 0. sides must be at least 1.
//
// Complexity: O(count).
func RollNdS(rng *prng.Prng, count, sides int) int {
	sum := 0
	for i := 0; i < count; i++ {
		sum += rng.RandInt(1, sides)
	}
	return sum
}
