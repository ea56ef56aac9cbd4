// Package metric - core types, sentinel errors and scan configuration.
package metric

import (
	"errors"
	"math"
)

// Sentinel errors for metric construction and critical-radius scans.
var (
	// ErrZeroOmega indicates the rotation parameter omega is zero;
	// the rotating metric is undefined without rotation.
	ErrZeroOmega = errors.New("metric: omega must be non-zero to define a rotating metric")

	// ErrBadScanRange indicates an invalid radius scan window
	// (r_min ≤ 0, non-finite bounds, or r_max ≤ r_min).
	ErrBadScanRange = errors.New("metric: scan range must satisfy 0 < r_min < r_max")

	// ErrBadScanSteps indicates the scan resolution is below two samples.
	ErrBadScanSteps = errors.New("metric: scan requires at least 2 steps")
)

// Coordinate indices of the tensor in (t, r, φ, z) order.
const (
	CoordT   = 0
	CoordR   = 1
	CoordPhi = 2
	CoordZ   = 3
)

// Tensor is the 4×4 metric tensor g_{μν} at a fixed radius, indexed in
// (t, r, φ, z) order. It is a plain value: computed fresh per query,
// never mutated, safe to copy.
type Tensor [4][4]float64

// At returns the entry g_{ij}. Indices outside [0,3] panic, as with any
// Go array access.
func (g Tensor) At(i, j int) float64 { return g[i][j] }

// Symmetric reports whether the tensor equals its transpose within tol.
func (g Tensor) Symmetric(tol float64) bool {
	var i, j int
	for i = 0; i < 4; i++ {
		for j = i + 1; j < 4; j++ {
			if math.Abs(g[i][j]-g[j][i]) > tol {
				return false
			}
		}
	}
	return true
}

// Default scan parameters for FindCriticalRadius. The bisection depth of
// 20 rounds and the 1000-sample scan are reference tuning; they are kept
// as configurable constants rather than derived from one another.
const (
	// DefaultScanRMin is the lower bound of the default radius scan.
	DefaultScanRMin = 0.1
	// DefaultScanRMax is the upper bound of the default radius scan.
	DefaultScanRMax = 10.0
	// DefaultScanSteps is the number of uniformly spaced scan samples.
	DefaultScanSteps = 1000
	// DefaultBisectRounds is the fixed bisection refinement depth.
	DefaultBisectRounds = 20
)

// ScanOptions configures the critical-radius search.
//
//	RMin, RMax   — scan window; must satisfy 0 < RMin < RMax.
//	Steps        — number of uniformly spaced samples across [RMin, RMax]; ≥ 2.
//	BisectRounds — bisection refinements applied to the first bracketing
//	               pair; non-positive values fall back to DefaultBisectRounds.
type ScanOptions struct {
	RMin         float64
	RMax         float64
	Steps        int
	BisectRounds int
}

// DefaultScanOptions returns the reference scan configuration:
// [0.1, 10.0] in 1000 samples with 20 bisection rounds.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		RMin:         DefaultScanRMin,
		RMax:         DefaultScanRMax,
		Steps:        DefaultScanSteps,
		BisectRounds: DefaultBisectRounds,
	}
}

// validate checks the scan window and resolution.
//
// Complexity: O(1).
func (o ScanOptions) validate() error {
	if math.IsNaN(o.RMin) || math.IsInf(o.RMin, 0) || math.IsNaN(o.RMax) || math.IsInf(o.RMax, 0) {
		return ErrBadScanRange
	}
	if o.RMin <= 0 || o.RMax <= o.RMin {
		return ErrBadScanRange
	}
	if o.Steps < 2 {
		return ErrBadScanSteps
	}
	return nil
}
