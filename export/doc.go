// Package export writes a generated galaxy to disk as a set of plain
// artifacts consumable without this module.
//
// What:
//
//   - WriteGalaxy(ctx, dir, g) emits five files into dir:
//     systems.json (full system records), routes.json (starlanes with
//     paths as [x,y] tuples), metadata.json (seed, counts, and the
//     quantization block needed to decode the raw map),
//     costmap.bin (raw map bytes, row-major), and costmap.png
//     (8-bit grayscale rendering of the same bytes).
//   - Artifacts are written concurrently under an errgroup; the first
//     failure cancels the rest.
//
// Why:
//
//   - JSON field names and the tuple path encoding are a frozen wire
//     format; downstream viewers parse these files directly.
//   - Artifacts are pure functions of the galaxy: writing the same
//     galaxy twice yields byte-identical files, so exports diff cleanly.
//
// Errors:
//
//   - ErrNilGalaxy for a nil galaxy or cost map.
//   - I/O and encoding failures are wrapped with the artifact name;
//     context cancellation surfaces as the context's error.
package export
