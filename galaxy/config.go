// SPDX-License-Identifier: MIT
// Package: starlane/galaxy
//
// config.go — generation configuration and deterministic defaults.
//
// Contract (strict):
//   • Config is plain data: it carries knobs, never behavior or state.
//   • DefaultConfig is fully deterministic and documented; no globals.
//   • Validate reports the FIRST violated class as a wrapped sentinel;
//     a valid Config passes every downstream constructor unchanged.
//   • YAML field names are part of the operator surface — renaming one
//     is a breaking change.

package galaxy

import (
	"fmt"

	"github.com/eykd/starlane/costmap"
	"github.com/eykd/starlane/perlin"
)

// Config carries every knob of galaxy generation. Zero value is NOT
// usable; start from DefaultConfig and override fields, or decode a
// YAML document over it.
type Config struct {
	// SystemCount is the number of star systems to place. Must be ≥ 1.
	SystemCount int `yaml:"system_count"`

	// GalaxyRadius bounds placement: systems land on integer coordinates
	// within a disc of this radius around the origin. Must be ≥ 1.
	GalaxyRadius int `yaml:"galaxy_radius"`

	// MinSeparation rejects a candidate position when any earlier system
	// lies within this Euclidean distance of it, inclusive. Zero still
	// rejects exact duplicates. Must be ≥ 0.
	MinSeparation float64 `yaml:"min_separation"`

	// Noise shapes the two cost-field layers.
	Noise NoiseConfig `yaml:"noise"`

	// Terrain configures the cave automaton and map margin.
	Terrain TerrainConfig `yaml:"terrain"`

	// Cost prices open and wall cells.
	Cost CostConfig `yaml:"cost"`

	// Routes bounds the starlane network.
	Routes RouteConfig `yaml:"routes"`
}

// NoiseConfig holds the fractal-noise parameters of the two cost layers.
// Frequencies must be strictly positive, octaves at least 1.
type NoiseConfig struct {
	BaseFrequency float64 `yaml:"base_frequency"`
	BaseOctaves   int     `yaml:"base_octaves"`
	WallFrequency float64 `yaml:"wall_frequency"`
	WallOctaves   int     `yaml:"wall_octaves"`
}

// TerrainConfig holds the cave-automaton parameters and the padding
// margin added around the placed systems when sizing the cost map.
type TerrainConfig struct {
	FillProbability float64 `yaml:"fill_probability"`
	Iterations      int     `yaml:"iterations"`
	Padding         int     `yaml:"padding"`
}

// CostConfig prices composed cells: an open cell costs
// BaseOpenCost + OpenNoiseWeight·noise, a wall cell
// BaseWallCost + WallNoiseWeight·noise.
type CostConfig struct {
	BaseOpenCost    float64 `yaml:"base_open_cost"`
	OpenNoiseWeight float64 `yaml:"open_noise_weight"`
	BaseWallCost    float64 `yaml:"base_wall_cost"`
	WallNoiseWeight float64 `yaml:"wall_noise_weight"`
}

// RouteConfig bounds the starlane network.
//
// LinkRadius – systems within this Euclidean distance are route
// candidates. MaxRouteCost – candidate pairs whose cheapest path would
// exceed this cost are left unlinked.
type RouteConfig struct {
	LinkRadius   float64 `yaml:"link_radius"`
	MaxRouteCost float64 `yaml:"max_route_cost"`
}

// DefaultConfig returns the stock galaxy profile: 64 systems on a
// radius-48 disc, four cells of breathing room between neighbors, the
// default noise/terrain/pricing stack, and routes between systems
// within 12 cells costing at most 100.
func DefaultConfig() Config {
	return Config{
		SystemCount:   64,
		GalaxyRadius:  48,
		MinSeparation: 4,
		Noise: NoiseConfig{
			BaseFrequency: 0.05,
			BaseOctaves:   4,
			WallFrequency: 0.08,
			WallOctaves:   3,
		},
		Terrain: TerrainConfig{
			FillProbability: 0.45,
			Iterations:      4,
			Padding:         10,
		},
		Cost: CostConfig{
			BaseOpenCost:    1,
			OpenNoiseWeight: 2,
			BaseWallCost:    10,
			WallNoiseWeight: 20,
		},
		Routes: RouteConfig{
			LinkRadius:   12,
			MaxRouteCost: 100,
		},
	}
}

// Validate checks every configuration class and returns the first
// violation as a wrapped sentinel. A nil return guarantees Generate
// will not fail on configuration.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if c.SystemCount < 1 {
		return fmt.Errorf("%w: got %d", ErrBadSystemCount, c.SystemCount)
	}
	if c.GalaxyRadius < 1 {
		return fmt.Errorf("%w: got %d", ErrBadGalaxyRadius, c.GalaxyRadius)
	}
	if c.MinSeparation < 0 {
		return fmt.Errorf("%w: got %v", ErrBadSeparation, c.MinSeparation)
	}
	if c.Noise.BaseFrequency <= 0 || c.Noise.BaseOctaves < 1 {
		return fmt.Errorf("%w: base frequency %v, octaves %d",
			ErrBadNoise, c.Noise.BaseFrequency, c.Noise.BaseOctaves)
	}
	if c.Noise.WallFrequency <= 0 || c.Noise.WallOctaves < 1 {
		return fmt.Errorf("%w: wall frequency %v, octaves %d",
			ErrBadNoise, c.Noise.WallFrequency, c.Noise.WallOctaves)
	}
	if c.Terrain.FillProbability < 0 || c.Terrain.FillProbability > 1 {
		return fmt.Errorf("%w: fill probability %v", ErrBadTerrain, c.Terrain.FillProbability)
	}
	if c.Terrain.Iterations < 0 {
		return fmt.Errorf("%w: iterations %d", ErrBadTerrain, c.Terrain.Iterations)
	}
	if c.Terrain.Padding < 0 {
		return fmt.Errorf("%w: padding %d", ErrBadTerrain, c.Terrain.Padding)
	}
	if c.Cost.BaseOpenCost <= 0 || c.Cost.BaseWallCost <= 0 {
		return fmt.Errorf("%w: base costs %v / %v",
			ErrBadWeights, c.Cost.BaseOpenCost, c.Cost.BaseWallCost)
	}
	if c.Cost.OpenNoiseWeight < 0 || c.Cost.WallNoiseWeight < 0 {
		return fmt.Errorf("%w: noise weights %v / %v",
			ErrBadWeights, c.Cost.OpenNoiseWeight, c.Cost.WallNoiseWeight)
	}
	if c.Routes.LinkRadius <= 0 {
		return fmt.Errorf("%w: link radius %v", ErrBadRoutes, c.Routes.LinkRadius)
	}
	if c.Routes.MaxRouteCost <= 0 {
		return fmt.Errorf("%w: max route cost %v", ErrBadRoutes, c.Routes.MaxRouteCost)
	}
	return nil
}

// costmapOptions adapts the validated Config to the cost-map generator.
func (c Config) costmapOptions() costmap.Options {
	return costmap.Options{
		Padding: c.Terrain.Padding,
		BaseNoise: perlin.Options{
			Frequency: c.Noise.BaseFrequency,
			Octaves:   c.Noise.BaseOctaves,
		},
		WallNoise: perlin.Options{
			Frequency: c.Noise.WallFrequency,
			Octaves:   c.Noise.WallOctaves,
		},
		FillProbability: c.Terrain.FillProbability,
		Iterations:      c.Terrain.Iterations,
		Weights: costmap.Weights{
			BaseOpenCost:    c.Cost.BaseOpenCost,
			OpenNoiseWeight: c.Cost.OpenNoiseWeight,
			BaseWallCost:    c.Cost.BaseWallCost,
			WallNoiseWeight: c.Cost.WallNoiseWeight,
		},
	}
}
