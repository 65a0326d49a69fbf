// Package testutil provides testing utilities for hypervec.
//
// This package is intended for use in tests and benchmarks only. It
// generates reproducible float64 component slices from a seeded RNG.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	comps := rng.UniformRangeVector(128) // uniform [-1, 1)
//	comps = rng.GaussianVector(128)      // standard normal
//	batch := rng.UniformVectors(100, 16) // uniform [0, 1)
//
// Call Reset to replay the same sequence.
package testutil
