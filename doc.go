// Package godelsim is your in-memory playground for exploring a
// rotating-universe ("Gödel-like") toy spacetime and the information
// theory of closed time loops.
//
// 🚀 What is godelsim?
//
//	A small, deterministic simulation library that brings together:
//		• Geometry: a closed-form 4×4 rotating metric with closed timelike
//		  curve (CTC) detection via critical-radius search
//		• Information: Monte Carlo trials of binary states surviving one
//		  noisy time-loop traversal
//		• Aggregation: survival-rate tables swept across state complexity
//		• Classification: a labeled phase diagram over the
//		  (rotation, noise) grid
//
// ✨ Why choose godelsim?
//
//   - Reproducible – every random stream derives from a master seed;
//     parallel sweeps replay bit-for-bit at any worker count
//   - Rock-solid guarantees – sentinel errors, fail-fast validation,
//     in-code docs with contracts and complexity notes
//   - Pure Go – no cgo (even the SQLite sink is pure Go)
//   - Consumable – results persist as flat CSV or SQLite tables that
//     dashboards and plotters only ever read
//
// Under the hood, everything is organized under five subpackages:
//
//	metric/  — the spacetime tensor, intervals, and critical-radius search
//	loop/    — binary states, noisy evolution, the atomic loop trial
//	batch/   — complexity sweeps aggregated to survival tables
//	phase/   — the (ω, η) phase diagram and its threshold classifier
//	results/ — CSV and SQLite persistence of the tabular artifacts
//
// Quick sketch of the data flow:
//
//	metric ──(critical radius)──► phase ◄──(survival table)── batch ◄── loop
//	                                │
//	                                ▼
//	                             results
//
// Dive into the per-package docs for contracts, invariants and the
// documented limitations of the toy model (first-crossing-only scans,
// nearest-complexity fallback).
package godelsim
