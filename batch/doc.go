// Package batch sweeps the loop-consistency simulator across state
// complexities and aggregates trial outcomes into a survival-rate table.
//
// For every complexity from 1 to MaxComplexity inclusive, Run performs
// Iterations independent loop trials at a fixed noise level and records
// successes/iterations as the survival rate. The result is ordered by
// ascending complexity and forms a monotonic-ish decay curve.
//
// Complexity levels are independent, so Run fans them out across a
// bounded worker pool. Each level draws from its own RNG substream
// derived from (Seed, complexity), which makes results identical at any
// parallelism degree — including Workers=1.
//
// Persistence of the table is the caller's concern; see the results
// package for the CSV and SQLite sinks.
package batch
