// Package starlane generates deterministic galaxies — seeded star
// systems scattered over a procedural cost field, linked by the
// cheapest starlane routes between them.
//
// 🚀 What is starlane?
//
//	A seed-stable procedural generation toolkit that brings together:
//		• Mulberry32 PRNG with forkable, collision-resistant streams
//		• Fudge & polyhedral dice rolled on top of it
//		• Spatial hashing for fast radius queries
//		• Cave-style cellular automata (the 4-5 rule)
//		• Fractal Brownian noise fields
//		• Quantized traversal-cost maps
//		• Bounded A* pathfinding with an octile heuristic
//		• Full galaxy assembly: placement, attributes, pricing, routes
//		• Exporters: JSON, raw bytes, grayscale PNG
//
// ✨ Why choose starlane?
//
//   - Deterministic to the byte – same seed and config, same galaxy, every run
//   - Stream isolation – tuning one stage never re-rolls another
//   - Decodable artifacts – exports carry everything a viewer needs
//   - Pure compute core – no I/O below the export layer
//
// Under the hood, everything is organized by stage:
//
//	prng/     — Mulberry32 generator + stream derivation
//	dice/     — 4dF and NdS rolls
//	grid/     — coordinates, bounds, row-major indexing
//	spatial/  — bucketed neighbor lookup
//	cellular/ — cave automaton
//	perlin/   — fractal value noise
//	costmap/  — noise + terrain composed into quantized byte grids
//	astar/    — binary-heap A* over cost maps, with a route cost bound
//	galaxy/   — the pipeline: place systems, roll attributes, link routes
//	export/   — artifact writers (systems/routes/metadata/bin/png)
//
// Quick sketch:
//
//	    ✦ Vega Prime ──────✦ Altair Reach
//	         ╲                ╱
//	          ✦ Halcyon Gate ✦
//
//	routes bend around expensive nebula cells rather than cutting straight.
//
// Dive into cmd/starlane for the CLI, or call galaxy.Generate directly.
//
//	go get github.com/eykd/starlane
package starlane
