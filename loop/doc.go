// Package loop simulates the self-consistency of binary states that
// traverse a closed time loop once under bit-flip noise.
//
// The model is deliberately simple. A state is a fixed-length sequence
// of bits whose length is its "complexity". One loop traversal evolves
// the state by flipping each bit independently with a given probability.
// The state survives the loop when the evolved copy is bitwise equal to
// the original — an event with theoretical probability (1-p)^n for n
// bits and flip probability p, so survival decays in both complexity
// and noise.
//
// Operations:
//
//   - GenerateState — uniform random bits of a requested complexity.
//   - EvolveState   — one noisy evolution step; the input is never mutated.
//   - SimulateLoop  — the atomic trial: generate, evolve, compare.
//
// Randomness is deterministic per Simulator: New(seed) with seed==0 uses
// a fixed default seed, and Derive creates independent substreams for
// parallel sweeps so results are reproducible at any parallelism degree.
package loop
