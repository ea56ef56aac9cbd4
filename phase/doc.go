// Package phase combines the geometric and informational halves of the
// model into a labeled phase diagram over a (rotation, noise) grid.
//
// For each rotation strength ω the metric package decides whether closed
// timelike curves are geometrically permitted (a critical radius exists
// in the scan window). For each noise level η the batch package
// estimates an information index: the mean survival rate across a fixed
// set of representative complexities. The combined loop-support index is
// their product (the geometry side contributes a 0/1 flag):
//
//	L_combined(ω, η) = [geometry has CTC] × L_info(η)
//
// Each grid point is then classified by a strict threshold policy:
//
//	no CTC geometry            → Linear Phase
//	L_combined ≤ EpsilonLow    → Frustrated Circular Phase
//	L_combined ≥ EpsilonHigh   → Circular Time Phase
//	otherwise                  → Intermediate / Crossover
//
// The information-index lookup falls back to the nearest available
// complexity (minimal absolute difference) when an exact row is missing;
// the fallback is an explicit, observable path, never a silent average
// over something else.
package phase
