// Package phase - grid types, thresholds, options and sentinel errors.
package phase

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/godelsim/metric"
)

// Sentinel errors for phase sweeps.
var (
	// ErrEmptyGrid indicates Omegas or NoiseLevels is empty; the sweep
	// requires a full cross product over both axes.
	ErrEmptyGrid = errors.New("phase: omegas and noise levels must be non-empty")

	// ErrNoComplexities indicates the representative complexity set is empty.
	ErrNoComplexities = errors.New("phase: representative complexities must be non-empty")

	// ErrNoSurvivalData indicates an information-index lookup against an
	// empty survival table.
	ErrNoSurvivalData = errors.New("phase: survival table is empty")

	// ErrBadThresholds indicates EpsilonLow/EpsilonHigh are inverted or
	// outside [0, 1].
	ErrBadThresholds = errors.New("phase: thresholds must satisfy 0 ≤ low < high ≤ 1")
)

// Phase is the qualitative label of one grid point.
type Phase string

// The four phases of the (rotation, noise) diagram.
const (
	// PhaseLinear marks geometries without CTCs; the information index is
	// irrelevant there.
	PhaseLinear Phase = "Linear Phase"
	// PhaseFrustrated marks CTC geometries whose loop support is
	// negligible — time can close but information cannot survive the trip.
	PhaseFrustrated Phase = "Frustrated Circular Phase"
	// PhaseCircular marks CTC geometries with robust loop support.
	PhaseCircular Phase = "Circular Time Phase"
	// PhaseCrossover marks the band between the two thresholds.
	PhaseCrossover Phase = "Intermediate / Crossover"
)

// Classification thresholds of the reference experiment — configurable
// constants, not derived quantities.
const (
	// EpsilonLow is the default frustration threshold.
	EpsilonLow = 0.01
	// EpsilonHigh is the default circular-time threshold.
	EpsilonHigh = 0.20
)

// GridPoint is the outcome for one (omega, noise) pair. Points are
// independent of each other; a sweep emits the full cross product.
type GridPoint struct {
	// Omega is the rotation strength of the point.
	Omega float64
	// Noise is the per-bit flip probability of the point.
	Noise float64
	// RCrit is the critical radius; meaningful only when HasRCrit.
	RCrit float64
	// HasRCrit reports whether the scan found a transition.
	HasRCrit bool
	// GeometryHasCTC mirrors HasRCrit as the 0/1 geometry flag.
	GeometryHasCTC bool
	// InfoIndex is the mean survival rate across the representative
	// complexities at this noise level, in [0, 1].
	InfoIndex float64
	// CombinedIndex is the geometry flag times InfoIndex.
	CombinedIndex float64
	// Phase is the classification label.
	Phase Phase
}

// Options configures a phase-diagram sweep.
//
//	Omegas       — rotation axis of the grid; non-empty.
//	NoiseLevels  — noise axis of the grid; non-empty.
//	Complexities — representative complexities for the information index;
//	               non-empty. The survival sweep runs up to their maximum.
//	Iterations   — trials per complexity level; ≥ 1 (validated by batch).
//	Seed         — master seed for the survival sweeps; substreams are
//	               derived per noise level so parallel cells stay
//	               reproducible.
//	Workers      — forwarded to batch.Run.
//	Scan         — critical-radius scan configuration.
//	EpsilonLow   — frustration threshold.
//	EpsilonHigh  — circular-time threshold.
type Options struct {
	Omegas       []float64
	NoiseLevels  []float64
	Complexities []int
	Iterations   int
	Seed         int64
	Workers      int
	Scan         metric.ScanOptions
	EpsilonLow   float64
	EpsilonHigh  float64
}

// DefaultOptions returns the reference experiment grid: ten omegas
// spanning [0.1, 2.0], noise levels 0.0–0.5, representative complexities
// {100, 150, 200, 250, 300}, and 1000 iterations per level.
func DefaultOptions() Options {
	return Options{
		Omegas:       floats.Span(make([]float64, 10), 0.1, 2.0),
		NoiseLevels:  []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5},
		Complexities: []int{100, 150, 200, 250, 300},
		Iterations:   1000,
		Seed:         123,
		Scan:         metric.DefaultScanOptions(),
		EpsilonLow:   EpsilonLow,
		EpsilonHigh:  EpsilonHigh,
	}
}

// validate checks grid shape and threshold ordering; batch.Run validates
// the trial arguments.
//
// Complexity: O(1).
func (o Options) validate() error {
	if len(o.Omegas) == 0 || len(o.NoiseLevels) == 0 {
		return ErrEmptyGrid
	}
	if len(o.Complexities) == 0 {
		return ErrNoComplexities
	}
	if o.EpsilonLow < 0 || o.EpsilonHigh > 1 || o.EpsilonLow >= o.EpsilonHigh {
		return ErrBadThresholds
	}
	return nil
}
