// Package results - composed entry points mirroring the reference
// pipeline, where running a sweep and persisting its table are one step.
package results

import (
	"io"

	"github.com/katalvlaran/godelsim/batch"
	"github.com/katalvlaran/godelsim/phase"
)

// RunSurvival runs a survival sweep and writes its table to w before
// returning it. Validation failures surface before anything is written;
// no partial artifact is ever produced.
func RunSurvival(opts batch.Options, w io.Writer) ([]batch.SurvivalRecord, error) {
	records, err := batch.Run(opts)
	if err != nil {
		return nil, err
	}
	if err = WriteSurvivalCSV(w, records); err != nil {
		return nil, err
	}
	return records, nil
}

// RunPhaseDiagram runs a full grid sweep and writes the phase table to w
// before returning it. Same no-partial-artifact policy as RunSurvival.
func RunPhaseDiagram(opts phase.Options, w io.Writer) ([]phase.GridPoint, error) {
	points, err := phase.Sweep(opts)
	if err != nil {
		return nil, err
	}
	if err = WritePhaseGridCSV(w, points); err != nil {
		return nil, err
	}
	return points, nil
}
