// Package batch - the survival sweep itself.
package batch

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/godelsim/loop"
)

// Run sweeps complexities 1..opts.MaxComplexity, running opts.Iterations
// loop trials per level at opts.NoiseLevel, and returns one
// SurvivalRecord per level ordered by ascending complexity.
//
// Each level uses a loop.Simulator derived from (opts.Seed, complexity),
// so the table is identical for any Workers value. Workers < 1 defaults
// to runtime.NumCPU().
//
// Errors: ErrBadMaxComplexity, ErrBadIterations, ErrBadNoiseLevel — all
// raised before any trial executes; no partial table is ever returned.
//
// Complexity: O(MaxComplexity × Iterations) trials, each O(complexity).
func Run(opts Options) ([]SurvivalRecord, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > opts.MaxComplexity {
		workers = opts.MaxComplexity
	}

	// Records indexed by complexity-1; each worker writes disjoint slots,
	// so no locking is needed beyond the WaitGroup.
	records := make([]SurvivalRecord, opts.MaxComplexity)
	levels := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for complexity := range levels {
				records[complexity-1] = runLevel(complexity, opts)
			}
		}()
	}
	for complexity := 1; complexity <= opts.MaxComplexity; complexity++ {
		levels <- complexity
	}
	close(levels)
	wg.Wait()

	return records, nil
}

// runLevel executes all trials of a single complexity level on its own
// derived RNG substream. Arguments were validated at batch entry, so the
// per-trial error path is unreachable; it is surfaced as a rate of zero
// only to keep the function total.
func runLevel(complexity int, opts Options) SurvivalRecord {
	sim := loop.Derive(opts.Seed, uint64(complexity))

	var successes int
	for i := 0; i < opts.Iterations; i++ {
		ok, err := sim.SimulateLoop(complexity, opts.NoiseLevel)
		if err != nil {
			return SurvivalRecord{Complexity: complexity}
		}
		if ok {
			successes++
		}
	}
	return SurvivalRecord{
		Complexity:   complexity,
		SurvivalRate: float64(successes) / float64(opts.Iterations),
	}
}
