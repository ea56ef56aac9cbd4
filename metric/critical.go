// Package metric - critical-radius search (scan + bisection).
package metric

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
)

// unitPhiStep is the dphi increment used when probing φ-loops during the
// scan. Only the sign of ds² matters, so any non-zero value works; 1.0
// matches the reference behavior.
const unitPhiStep = 1.0

// FindCriticalRadius scans opts.Steps uniformly spaced radii across
// [opts.RMin, opts.RMax], probing the φ-loop character at each sample.
// On the FIRST pair of consecutive samples that disagree, the bracket is
// refined by opts.BisectRounds bisections: the midpoint replaces the
// bound whose loop character matches the earlier sample, so the bracket
// converges onto the transition. The final bracket midpoint is returned
// with ok=true.
//
// When no sign change occurs across the whole scan, ok=false is returned
// and the radius value is meaningless.
//
// Policy: only the first transition (scanning low→high) is reported.
// Geometries with multiple CTC regions have their later transitions
// silently ignored; this is documented behavior, matching the scan's
// single-crossing assumption.
//
// Errors: ErrBadScanRange, ErrBadScanSteps.
//
// Complexity: O(Steps + BisectRounds) interval evaluations.
func (u *Universe) FindCriticalRadius(opts ScanOptions) (rCrit float64, ok bool, err error) {
	if err = opts.validate(); err != nil {
		return 0, false, err
	}

	rounds := opts.BisectRounds
	if rounds <= 0 {
		rounds = DefaultBisectRounds
	}

	// Uniform sample grid across the scan window.
	radii := floats.Span(make([]float64, opts.Steps), opts.RMin, opts.RMax)

	var (
		previous = u.IsPhiLoopTimelike(radii[0], unitPhiStep)
		current  bool
		step     = radii[1] - radii[0]
		low      float64
		high     float64
		mid      float64
		i        int
		k        int
	)
	for i = 1; i < opts.Steps; i++ {
		current = u.IsPhiLoopTimelike(radii[i], unitPhiStep)
		if current == previous {
			continue
		}

		// Bracket [r_{i-1}, r_i] contains the transition; refine by
		// bisection, keeping the side that still matches the earlier
		// sample's character as the lower bound.
		low, high = radii[i]-step, radii[i]
		for k = 0; k < rounds; k++ {
			mid = 0.5 * (low + high)
			if u.IsPhiLoopTimelike(mid, unitPhiStep) == previous {
				low = mid
			} else {
				high = mid
			}
		}
		return 0.5 * (low + high), true, nil
	}

	return 0, false, nil
}

// LogTransitions computes critical radii for the given omegas with the
// default scan and appends one "omega=…, r_crit=…" line per omega to w.
// Omegas for which no transition exists log r_crit=none.
//
// The writer is injected so callers own the destination (a file, a
// buffer, a test recorder); the package performs no file I/O itself.
func LogTransitions(w io.Writer, omegas ...float64) error {
	var (
		u     *Universe
		omega float64
		err   error
	)
	for _, omega = range omegas {
		u, err = New(omega)
		if err != nil {
			return err
		}
		rCrit, ok, serr := u.FindCriticalRadius(DefaultScanOptions())
		if serr != nil {
			return serr
		}
		if ok {
			_, err = fmt.Fprintf(w, "omega=%g, r_crit=%.6f\n", omega, rCrit)
		} else {
			_, err = fmt.Fprintf(w, "omega=%g, r_crit=none\n", omega)
		}
		if err != nil {
			return fmt.Errorf("metric: writing transition log: %w", err)
		}
	}
	return nil
}
