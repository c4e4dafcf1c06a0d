// Package source provides built-in point source implementations.
//
// Point sources feed (x, y) samples to a single worker. The package includes:
//
//   - PCG: Seeded permuted congruential generator (default for every strategy)
//   - LCG: 32-bit linear congruential generator with a fixed formula, for runs
//     that must be reproducible outside Go
//   - Static: Replays a fixed slice of points (deterministic tests)
//
// Custom sources can be implemented by satisfying the types.PointSource interface.
package source
