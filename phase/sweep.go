// Package phase - information index, classification policy and grid sweep.
package phase

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/godelsim/batch"
	"github.com/katalvlaran/godelsim/loop"
	"github.com/katalvlaran/godelsim/metric"
)

// InformationIndex averages the survival rate of the representative
// complexities over the given survival table. When an exact complexity
// is missing from the table, the row with minimal |Δcomplexity| stands
// in — an explicit nearest-neighbor fallback, applied per requested
// complexity, never a silent average over the whole table.
//
// Errors: ErrNoComplexities, ErrNoSurvivalData.
//
// Complexity: O(|complexities| × |records|).
func InformationIndex(records []batch.SurvivalRecord, complexities []int) (float64, error) {
	if len(complexities) == 0 {
		return 0, ErrNoComplexities
	}
	if len(records) == 0 {
		return 0, ErrNoSurvivalData
	}

	collected := make([]float64, 0, len(complexities))

	var (
		target int
		rec    batch.SurvivalRecord
		best   batch.SurvivalRecord
		dist   int
		bestD  int
	)
	for _, target = range complexities {
		best, bestD = records[0], absInt(records[0].Complexity-target)
		for _, rec = range records[1:] {
			dist = absInt(rec.Complexity - target)
			if dist < bestD {
				best, bestD = rec, dist
			}
		}
		collected = append(collected, best.SurvivalRate)
	}
	return stat.Mean(collected, nil), nil
}

// Classify applies the strict threshold policy to one grid point.
// Geometry without CTCs is always Linear regardless of the index.
//
// Complexity: O(1).
func Classify(geometryHasCTC bool, combined, epsilonLow, epsilonHigh float64) Phase {
	if !geometryHasCTC {
		return PhaseLinear
	}
	if combined <= epsilonLow {
		return PhaseFrustrated
	}
	if combined >= epsilonHigh {
		return PhaseCircular
	}
	return PhaseCrossover
}

// Sweep computes the full (omega, noise) cross product and returns one
// GridPoint per pair, omegas outermost. The information index is
// computed once per noise level (it does not depend on geometry), and
// one critical-radius search runs per omega.
//
// Each noise level's survival sweep uses a seed derived from
// (opts.Seed, noise index), so the grid is reproducible regardless of
// evaluation order.
//
// Errors: ErrEmptyGrid, ErrNoComplexities, ErrBadThresholds, plus
// batch.Run and metric validation errors.
//
// Complexity: O(|noise| × maxComplexity × Iterations) trials plus
// O(|omegas| × Steps) interval probes.
func Sweep(opts Options) ([]GridPoint, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	maxComplexity := maxInt(opts.Complexities)

	// Stage 1: information index per noise level (geometry-independent).
	infoIndex := make([]float64, len(opts.NoiseLevels))
	for i, noise := range opts.NoiseLevels {
		records, err := batch.Run(batch.Options{
			MaxComplexity: maxComplexity,
			Iterations:    opts.Iterations,
			NoiseLevel:    noise,
			Seed:          loop.DeriveSeed(opts.Seed, uint64(i)),
			Workers:       opts.Workers,
		})
		if err != nil {
			return nil, err
		}
		if infoIndex[i], err = InformationIndex(records, opts.Complexities); err != nil {
			return nil, err
		}
	}

	// Stage 2: geometry per omega, then the cross product.
	points := make([]GridPoint, 0, len(opts.Omegas)*len(opts.NoiseLevels))
	for _, omega := range opts.Omegas {
		u, err := metric.New(omega)
		if err != nil {
			return nil, err
		}
		rCrit, hasCTC, err := u.FindCriticalRadius(opts.Scan)
		if err != nil {
			return nil, err
		}

		var flag float64
		if hasCTC {
			flag = 1
		}
		for i, noise := range opts.NoiseLevels {
			combined := flag * infoIndex[i]
			points = append(points, GridPoint{
				Omega:          omega,
				Noise:          noise,
				RCrit:          rCrit,
				HasRCrit:       hasCTC,
				GeometryHasCTC: hasCTC,
				InfoIndex:      infoIndex[i],
				CombinedIndex:  combined,
				Phase:          Classify(hasCTC, combined, opts.EpsilonLow, opts.EpsilonHigh),
			})
		}
	}
	return points, nil
}

// absInt returns |x|.
func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// maxInt returns the maximum of a non-empty slice.
func maxInt(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
