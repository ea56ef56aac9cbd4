// Package metric - Universe construction and interval evaluation.
package metric

// Universe holds the immutable parameters of the rotating metric.
//
//	Omega — rotation strength; must be non-zero.
//	R     — scale radius coupling the t↔φ rotation term; defaults to 1/Omega.
//
// A Universe is immutable once constructed and safe for concurrent use.
type Universe struct {
	omega float64
	scale float64
}

// Option mutates construction parameters of New.
type Option func(*Universe)

// WithScaleRadius overrides the scale radius R instead of the default 1/omega.
func WithScaleRadius(r float64) Option {
	return func(u *Universe) {
		u.scale = r
	}
}

// New constructs a Universe from the rotation parameter omega.
// Returns ErrZeroOmega when omega == 0; otherwise R defaults to 1/omega
// unless WithScaleRadius overrides it.
//
// Complexity: O(1).
func New(omega float64, opts ...Option) (*Universe, error) {
	if omega == 0 {
		return nil, ErrZeroOmega
	}
	u := &Universe{omega: omega, scale: 1.0 / omega}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// Omega returns the rotation parameter.
func (u *Universe) Omega() float64 { return u.omega }

// ScaleRadius returns the scale radius R.
func (u *Universe) ScaleRadius() float64 { return u.scale }

// Tensor returns the metric tensor g_{μν} at radius r in (t, r, φ, z)
// order. Precondition: r ≠ 0 (the φ components divide by r²); callers
// must keep r in (0, ∞).
//
// Complexity: O(1).
func (u *Universe) Tensor(r float64) Tensor {
	var (
		g  Tensor
		r2 = r * r
		R  = u.scale
	)
	g[CoordT][CoordT] = -1.0
	g[CoordR][CoordR] = 1.0
	g[CoordPhi][CoordPhi] = -(r2 - (R*R)/r2)
	g[CoordT][CoordPhi] = -R / r2
	g[CoordPhi][CoordT] = -R / r2
	g[CoordZ][CoordZ] = 1.0
	return g
}

// IntervalSquared evaluates the scalar quadratic form
// ds² = g_{μν} dx^μ dx^ν at radius r for the displacement
// dx = (dt, dr, dphi, dz).
//
// Complexity: O(1) (fixed 4×4 contraction).
func (u *Universe) IntervalSquared(dt, dr, dphi, dz, r float64) float64 {
	var (
		g  = u.Tensor(r)
		dx = [4]float64{dt, dr, dphi, dz}
		s  float64
		i  int
		j  int
	)
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			s += dx[i] * g[i][j] * dx[j]
		}
	}
	return s
}

// IsTimelike reports whether the displacement has a timelike interval
// (ds² < 0) at radius r.
func (u *Universe) IsTimelike(dt, dr, dphi, dz, r float64) bool {
	return u.IntervalSquared(dt, dr, dphi, dz, r) < 0
}

// IsPhiLoopTimelike probes a closed loop purely in the angular
// coordinate at fixed radius r, using dt = dr = dz = 0 with the given
// dphi increment. A timelike φ-loop signals that closed timelike curves
// are geometrically permitted at r.
func (u *Universe) IsPhiLoopTimelike(r, dphi float64) bool {
	return u.IntervalSquared(0, 0, dphi, 0, r) < 0
}
