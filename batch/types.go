// Package batch - record type, options and sentinel errors.
package batch

import "errors"

// Sentinel errors for batch arguments. Validation happens once at batch
// entry; trials cannot fail afterwards, so there is no per-trial
// error handling or retry policy.
var (
	// ErrBadMaxComplexity indicates MaxComplexity < 1.
	ErrBadMaxComplexity = errors.New("batch: max complexity must be at least 1")

	// ErrBadIterations indicates Iterations < 1.
	ErrBadIterations = errors.New("batch: iterations must be at least 1")

	// ErrBadNoiseLevel indicates NoiseLevel outside [0, 1].
	ErrBadNoiseLevel = errors.New("batch: noise level must be within [0, 1]")
)

// SurvivalRecord is one row of the survival table: the fraction of
// Iterations trials at the given complexity that returned unchanged.
type SurvivalRecord struct {
	// Complexity is the state length of the trials; ≥ 1.
	Complexity int
	// SurvivalRate is successes/iterations, within [0, 1].
	SurvivalRate float64
}

// Default sweep parameters, matching the reference Monte Carlo run.
const (
	// DefaultMaxComplexity is the top of the default complexity sweep.
	DefaultMaxComplexity = 200
	// DefaultIterations is the default trial count per complexity.
	DefaultIterations = 500
	// DefaultNoiseLevel is the default per-bit flip probability.
	DefaultNoiseLevel = 0.5
	// DefaultSeed keeps default runs reproducible.
	DefaultSeed = 123
)

// Options configures a survival sweep.
//
//	MaxComplexity — sweep covers complexities 1..MaxComplexity; ≥ 1.
//	Iterations    — independent trials per complexity; ≥ 1.
//	NoiseLevel    — per-bit flip probability ∈ [0, 1].
//	Seed          — master seed; 0 selects the fixed default stream.
//	Workers       — parallel complexity levels; values < 1 mean one
//	                worker per available CPU. Parallelism never changes
//	                results (per-level RNG substreams).
type Options struct {
	MaxComplexity int
	Iterations    int
	NoiseLevel    float64
	Seed          int64
	Workers       int
}

// DefaultOptions returns the reference sweep configuration:
// complexities 1..200, 500 iterations, noise 0.5, seed 123.
func DefaultOptions() Options {
	return Options{
		MaxComplexity: DefaultMaxComplexity,
		Iterations:    DefaultIterations,
		NoiseLevel:    DefaultNoiseLevel,
		Seed:          DefaultSeed,
	}
}

// validate checks sweep arguments; fail fast before any trial runs.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.MaxComplexity < 1 {
		return ErrBadMaxComplexity
	}
	if o.Iterations < 1 {
		return ErrBadIterations
	}
	if o.NoiseLevel < 0 || o.NoiseLevel > 1 {
		return ErrBadNoiseLevel
	}
	return nil
}
