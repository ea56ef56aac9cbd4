// Package metric models a simplified rotating-universe ("Gödel-like")
// spacetime metric in cylindrical-style coordinates (t, r, φ, z).
//
// The metric is a single closed-form 4×4 tensor:
//
//	g_tt = −1,  g_rr = 1,  g_zz = 1,
//	g_φφ = −(r² − R²/r²),
//	g_tφ = g_φt = −R/r².
//
// The off-diagonal t↔φ term introduces rotation; the radius-dependent
// g_φφ component changes sign at some radius, at which point a closed
// loop purely in φ becomes timelike — the hallmark of a closed timelike
// curve (CTC).
//
// Provided operations:
//
//   - Tensor(r)           — the full metric tensor at radius r.
//   - IntervalSquared(…)  — the quadratic form ds² = dxᵗ·g(r)·dx.
//   - IsTimelike(…)       — ds² < 0.
//   - IsPhiLoopTimelike   — probe a pure-φ loop at fixed radius.
//   - FindCriticalRadius  — scan + bisection search for the radius where
//     φ-loops transition from spacelike to timelike.
//
// The radius r = 0 is a coordinate singularity (g_φφ and g_tφ divide by
// r²). Callers must keep r in the open interval (0, ∞); the package does
// not guard this precondition.
//
// This is a toy model for exploration, not a general-relativity solver:
// the tensor is the only physics, and no curvature or geodesic machinery
// exists here.
package metric
