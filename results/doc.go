// Package results persists the tabular artifacts of the simulation core
// for external consumers (dashboards, plotting) that only ever read them.
//
// Two sinks share one column contract:
//
//	survival table:    complexity, survival_rate
//	phase grid table:  omega, noise, r_crit, geometry_has_ctc, L_info,
//	                   L_combined, phase
//
// The CSV writers emit those columns to any io.Writer, with an absent
// critical radius serialized as an empty field. The SQLite store keeps
// the same flat tables keyed by a run ID, so repeated sweeps can live in
// one file without overwriting each other.
//
// Consumers must tolerate a missing r_crit: geometries without a φ-loop
// transition simply have none.
package results
