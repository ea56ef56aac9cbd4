// Package results - CSV serialization of the survival and phase tables.
package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/godelsim/batch"
	"github.com/katalvlaran/godelsim/phase"
)

// Column headers are the contract with external consumers; order matters.
var (
	survivalHeader = []string{"complexity", "survival_rate"}
	phaseHeader    = []string{"omega", "noise", "r_crit", "geometry_has_ctc", "L_info", "L_combined", "phase"}
)

// rateDecimals keeps survival rates at four decimal places, enough for
// the iteration counts this toy runs at.
const rateDecimals = 4

// WriteSurvivalCSV writes the survival table to w with the header
// "complexity,survival_rate". Rates carry four decimals.
//
// Complexity: O(n) rows.
func WriteSurvivalCSV(w io.Writer, records []batch.SurvivalRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(survivalHeader); err != nil {
		return fmt.Errorf("results: writing survival header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Complexity),
			strconv.FormatFloat(rec.SurvivalRate, 'f', rateDecimals, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("results: writing survival row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePhaseGridCSV writes the phase grid to w with the header
// "omega,noise,r_crit,geometry_has_ctc,L_info,L_combined,phase".
// An absent critical radius becomes an empty field, which consumers are
// required to tolerate.
//
// Complexity: O(n) rows.
func WritePhaseGridCSV(w io.Writer, points []phase.GridPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(phaseHeader); err != nil {
		return fmt.Errorf("results: writing phase header: %w", err)
	}
	for _, p := range points {
		rCrit := ""
		if p.HasRCrit {
			rCrit = strconv.FormatFloat(p.RCrit, 'f', -1, 64)
		}
		row := []string{
			strconv.FormatFloat(p.Omega, 'f', -1, 64),
			strconv.FormatFloat(p.Noise, 'f', -1, 64),
			rCrit,
			strconv.FormatBool(p.GeometryHasCTC),
			strconv.FormatFloat(p.InfoIndex, 'f', rateDecimals, 64),
			strconv.FormatFloat(p.CombinedIndex, 'f', rateDecimals, 64),
			string(p.Phase),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("results: writing phase row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
