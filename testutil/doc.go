// Package testutil provides testing utilities for metric implementations.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic sample generators and a checker for the
// metric axioms.
//
// # Random Samples
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformVectors(16, 8)       // [-1, 1)
//	words := rng.Strings(16, 7, "abc")      // fixed length
//	ints := rng.Int64s(16, -1000, 1000)     // [min, max)
//
// # Axioms
//
//	err := testutil.CheckAxioms(m, vecs, slices.Equal[[]float64], 1e-9)
//
// CheckAxioms verifies non-negativity, identity of indiscernibles,
// symmetry and the triangle inequality over every pair and triple of the
// sample set.
package testutil
