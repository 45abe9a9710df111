// Package testutil provides testing utilities for charconv.
//
// This package is intended for use in tests and benchmarks only. It provides
// a seeded, thread-safe random number generator for drawing numeric values
// across the full representable range of each kind.
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Int63()
package testutil
