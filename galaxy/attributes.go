// SPDX-License-Identifier: MIT
// Package: starlane/galaxy
//
// attributes.go — dice-driven star system attributes.
//
// Contract (strict):
//   • The draw order per system is FROZEN: class, population, tech,
//     wealth, stability, government, name. Reordering rolls or changing
//     table mechanics re-rolls every galaxy ever generated.
//   • Tables may grow flavor (new governments, new names) only in ways
//     that keep the draw count per roll constant.
//
// AI-Hints:
//   • Attribute ranges: Population 2..12, TechLevel 4..12, Wealth and
//     Stability -4..4. Downstream balance code may assume them.
//   • Star class frequencies approximate real stellar populations:
//     M dwarfs common, O giants rare.

package galaxy

import (
	"github.com/eykd/starlane/dice"
	"github.com/eykd/starlane/grid"
	"github.com/eykd/starlane/prng"
)

// starClasses maps a 1..100 roll to a Morgan-Keenan letter via cumulative
// ceilings: roll ≤ ceiling selects the row.
var starClasses = [...]struct {
	ceiling int
	class   string
}{
	{1, "O"},
	{3, "B"},
	{8, "A"},
	{18, "F"},
	{36, "G"},
	{58, "K"},
	{100, "M"},
}

// governments is drawn uniformly.
var governments = [...]string{
	"Anarchy", "Corporate Charter", "Directorate", "Federation",
	"Free Port", "Hegemony", "Monarchy", "Republic",
	"Syndicate", "Theocracy",
}

// rollStarClass draws one 1..100 roll and maps it through starClasses.
func rollStarClass(rng *prng.Prng) string {
	roll := rng.RandInt(1, 100)
	for _, row := range starClasses {
		if roll <= row.ceiling {
			return row.class
		}
	}
	return starClasses[len(starClasses)-1].class
}

// rollSystem rolls one complete system at a placed coordinate. Consumes a
// fixed number of draws regardless of outcomes.
func rollSystem(rng *prng.Prng, seed int64, index int, at grid.Coordinate, used map[string]int) StarSystem {
	class := rollStarClass(rng)
	population := dice.RollNdS(rng, 2, 6)
	tech := 8 + dice.Roll4dF(rng)
	wealth := dice.Roll4dF(rng)
	stability := dice.Roll4dF(rng)
	government := governments[rng.RandInt(0, len(governments)-1)]
	name := rollName(rng, used)

	return StarSystem{
		ID:         SystemID(seed, index),
		Name:       name,
		Coordinate: at,
		StarClass:  class,
		Population: population,
		TechLevel:  tech,
		Wealth:     wealth,
		Stability:  stability,
		Government: government,
	}
}
