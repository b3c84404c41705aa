// SPDX-License-Identifier: MIT
// Package: starlane/galaxy
//
// generate.go — the full generation pipeline.
//
// Contract (strict):
//   • Stream numbers are FROZEN: placement 10, attributes 11, cost map 12.
//     Renumbering, reordering the forks, or adding a stage in between
//     re-rolls every galaxy ever generated.
//   • Each stage draws ONLY from its own fork, so a change to one stage's
//     draw count never shifts the randomness seen by the others.
//   • Generation is pure CPU work: no I/O, no clock, no global state.
//
// Complexity: placement O(n·attempts), attributes O(n), cost map
// O(cells·octaves), routing O(pairs·A*). The cost map and routing stages
// dominate on realistic configs.
//
// AI-Hints:
//   • Generate(cfg, seed) is the only entry point; everything below it is
//     deterministic plumbing.
//   • To add a new stage, fork a NEW stream number and append the stage
//     after routing; never reuse 10..12.

package galaxy

import (
	"fmt"
	"math"
	"sort"

	"github.com/eykd/starlane/astar"
	"github.com/eykd/starlane/costmap"
	"github.com/eykd/starlane/grid"
	"github.com/eykd/starlane/prng"
	"github.com/eykd/starlane/spatial"
)

// Stream numbers of the master generator's forks. Frozen.
const (
	streamPlacement  uint32 = 10
	streamAttributes uint32 = 11
	streamCostMap    uint32 = 12
)

// placementAttempts bounds rejection sampling per system before the
// board is declared too crowded.
const placementAttempts = 100

// Generate builds a complete galaxy from a validated config and a seed.
// The same (cfg, seed) pair always yields the same galaxy.
//
// Fails with a config sentinel from Validate, or with
// ErrPlacementFailed when the attempt budget runs out.
func Generate(cfg Config, seed int64) (*Galaxy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	master := prng.New(seed)
	placementRng := master.Fork(streamPlacement)
	attributeRng := master.Fork(streamAttributes)
	costmapRng := master.Fork(streamCostMap)

	coords, err := placeSystems(placementRng, cfg)
	if err != nil {
		return nil, err
	}

	systems := make([]StarSystem, len(coords))
	used := make(map[string]int, len(coords))
	for i, at := range coords {
		systems[i] = rollSystem(attributeRng, seed, i, at, used)
	}

	m, err := costmap.Generate(coords, cfg.costmapOptions(), costmapRng)
	if err != nil {
		return nil, err
	}

	routes, err := planRoutes(systems, m, cfg)
	if err != nil {
		return nil, err
	}

	return &Galaxy{
		Seed:    seed,
		Config:  cfg,
		Systems: systems,
		Routes:  routes,
		CostMap: m,
	}, nil
}

// placeSystems scatters SystemCount coordinates across the galaxy disc by
// rejection sampling: draw a point in the bounding square, reject it when
// it falls outside the disc or lands within MinSeparation of an earlier
// system. A spatial hash keeps each separation check near O(1).
func placeSystems(rng *prng.Prng, cfg Config) ([]grid.Coordinate, error) {
	cellSize := int(math.Ceil(cfg.MinSeparation))
	if cellSize < 1 {
		cellSize = 1
	}
	h, err := spatial.New(cellSize, 2*cfg.GalaxyRadius+1)
	if err != nil {
		return nil, err
	}

	coords := make([]grid.Coordinate, 0, cfg.SystemCount)
	r2 := cfg.GalaxyRadius * cfg.GalaxyRadius
	for i := 0; i < cfg.SystemCount; i++ {
		placed := false
		for attempt := 0; attempt < placementAttempts; attempt++ {
			x := rng.RandInt(-cfg.GalaxyRadius, cfg.GalaxyRadius)
			y := rng.RandInt(-cfg.GalaxyRadius, cfg.GalaxyRadius)
			if x*x+y*y > r2 {
				continue
			}
			if len(h.QueryRadius(x, y, cfg.MinSeparation)) > 0 {
				continue
			}
			h.Insert(i, x, y)
			coords = append(coords, grid.Coordinate{X: x, Y: y})
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf("%w: placed %d of %d",
				ErrPlacementFailed, len(coords), cfg.SystemCount)
		}
	}
	return coords, nil
}

// planRoutes links every unordered pair of systems within LinkRadius by
// the cheapest path through the cost map, skipping pairs whose path would
// exceed MaxRouteCost. Neighbor candidates come from a spatial hash;
// each pair is pathed once, origin at the lower system index.
func planRoutes(systems []StarSystem, m *costmap.CostMap, cfg Config) ([]Route, error) {
	finder, err := astar.New(m, astar.WithMaxCost(cfg.Routes.MaxRouteCost))
	if err != nil {
		return nil, err
	}

	cellSize := int(math.Ceil(cfg.Routes.LinkRadius))
	if cellSize < 1 {
		cellSize = 1
	}
	h, err := spatial.New(cellSize, 2*cfg.GalaxyRadius+1)
	if err != nil {
		return nil, err
	}
	for i, s := range systems {
		h.Insert(i, s.Coordinate.X, s.Coordinate.Y)
	}

	var routes []Route
	for i := range systems {
		at := systems[i].Coordinate
		neighbors := h.QueryRadius(at.X, at.Y, cfg.Routes.LinkRadius)
		sort.Ints(neighbors)
		for _, j := range neighbors {
			if j <= i {
				continue
			}
			res, ok := finder.FindPath(at, systems[j].Coordinate)
			if !ok {
				continue
			}
			routes = append(routes, Route{
				Origin:      systems[i].ID,
				Destination: systems[j].ID,
				Cost:        res.TotalCost,
				Path:        res.Path,
			})
		}
	}
	return routes, nil
}
