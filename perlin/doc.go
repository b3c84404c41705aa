// Package perlin implements seeded 2D gradient noise with fractal Brownian
// motion, normalized to [0, 1].
//
// What:
//
//   - Sampler holds a permutation table shuffled entirely from a prng.Prng
//     draw sequence plus the octave configuration. Construction consumes a
//     fixed number of draws; sampling consumes none.
//   - Sample(x, y) evaluates multi-octave noise: each octave doubles the
//     frequency (lacunarity 2.0) and halves the amplitude (persistence 0.5),
//     the sum is normalized by the maximum possible amplitude and remapped
//     from [-1, 1] to [0, 1].
//   - GenerateGrid fills a row-major width×height float grid by sampling at
//     integer cell coordinates.
//
// Why:
//
//   - Cost maps need spatially coherent variation: nearby cells should cost
//     nearly the same, far cells independently. White noise gives neither;
//     gradient noise gives both.
//   - Seeding the table from the pipeline generator, never from system
//     entropy, keeps the whole map reproducible from one integer seed.
//
// Guarantees:
//
//   - Output always lies in [0, 1] (the normalized sum is clamped against
//     the rare gradient alignments that overshoot the nominal range).
//   - Identical generator state and options reproduce the grid exactly.
//
// Complexity:
//
//   - NewSampler: O(1) (256-entry shuffle). Sample: O(octaves).
//     GenerateGrid: O(W×H×octaves).
//
// Errors:
//
//   - ErrBadFrequency: base frequency is zero or negative.
//   - ErrBadOctaves: octave count below 1.
package perlin
