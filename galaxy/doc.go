// Package galaxy assembles complete star maps: placed systems, rolled
// attributes, a cost map covering them, and the starlane routes between
// neighbors.
//
// What:
//
//   - Config carries every generation knob (counts, separation, noise,
//     terrain, pricing, route limits) and validates itself before any work
//     runs.
//   - Generate(cfg, seed) produces a Galaxy: systems placed by rejection
//     sampling against a spatial hash, attributes and names rolled from
//     dice, a cost map generated over the placements, and routes computed
//     pairwise with bounded A* between systems within link radius.
//
// Determinism:
//
//   - One master generator is forked into fixed streams (placement,
//     attributes, cost map), so the same seed and config always reproduce
//     the same galaxy, and changes to one stage never shift the draws seen
//     by another.
//   - System IDs are version-5 UUIDs over seed and index; no entropy
//     source exists anywhere in the pipeline.
//
// Errors:
//
//   - Config problems surface as sentinel errors from Validate.
//   - ErrPlacementFailed reports a board too crowded for the requested
//     count and separation.
//   - Route absence is not an error: pairs without an affordable path are
//     simply not linked.
package galaxy
