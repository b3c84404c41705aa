// SPDX-License-Identifier: MIT
// Package: starlane/galaxy
//
// types.go — galaxy value types: StarSystem, Route, Galaxy.
//
// Contract (strict):
//   • StarSystem JSON field names are part of the wire format consumed by
//     downstream writers; renaming one is a breaking change.
//   • IDs are version-5 UUIDs over "seed:index" in a fixed namespace, so
//     the same seed always yields the same IDs regardless of config.
//   • Route references systems by ID, never by slice index, so routes
//     stay valid across filtering and re-ordering of the system list.

package galaxy

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/eykd/starlane/costmap"
	"github.com/eykd/starlane/grid"
)

// systemNamespace is the fixed UUIDv5 namespace for system IDs. Frozen:
// changing it would re-key every galaxy ever generated.
var systemNamespace = uuid.MustParse("8f2d9a41-5c36-4b8e-9f10-3d7a62c04be5")

// SystemID returns the deterministic ID of the index-th system of a
// galaxy generated from seed. Exposed so downstream services can address
// systems without holding a generated Galaxy.
func SystemID(seed int64, index int) uuid.UUID {
	return uuid.NewSHA1(systemNamespace, []byte(fmt.Sprintf("%d:%d", seed, index)))
}

// StarSystem is one placed, fully rolled star system.
type StarSystem struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Coordinate grid.Coordinate `json:"coordinate"`

	// StarClass is a Morgan-Keenan letter, O through M.
	StarClass string `json:"starClass"`

	// Population is a 2d6 magnitude, 2..12.
	Population int `json:"population"`

	// TechLevel is 8+4dF, 4..12.
	TechLevel int `json:"techLevel"`

	// Wealth and Stability are 4dF rolls, -4..4.
	Wealth    int `json:"wealth"`
	Stability int `json:"stability"`

	Government string `json:"government"`
}

// Route is one computed starlane between two systems. Path runs from the
// origin's coordinate to the destination's inclusive; Cost is the summed
// movement cost along it.
type Route struct {
	Origin      uuid.UUID
	Destination uuid.UUID
	Cost        float64
	Path        []grid.Coordinate
}

// Galaxy is a complete generated star map. All fields are value data;
// nothing retains the generators used to build it.
type Galaxy struct {
	Seed    int64
	Config  Config
	Systems []StarSystem
	Routes  []Route
	CostMap *costmap.CostMap
}

// System returns the system with the given ID, or false when no system
// carries it.
//
// Complexity: O(n) over the system list.
func (g *Galaxy) System(id uuid.UUID) (StarSystem, bool) {
	for _, s := range g.Systems {
		if s.ID == id {
			return s, true
		}
	}
	return StarSystem{}, false
}
