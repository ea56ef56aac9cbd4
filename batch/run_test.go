package batch_test

import (
	"testing"

	"github.com/katalvlaran/godelsim/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_Validation verifies all invalid-argument sentinels fire before
// any trial runs and no partial table is returned.
func TestRun_Validation(t *testing.T) {
	opts := batch.DefaultOptions()

	opts.MaxComplexity = 0
	recs, err := batch.Run(opts)
	assert.ErrorIs(t, err, batch.ErrBadMaxComplexity)
	assert.Nil(t, recs)

	opts = batch.DefaultOptions()
	opts.Iterations = 0
	recs, err = batch.Run(opts)
	assert.ErrorIs(t, err, batch.ErrBadIterations)
	assert.Nil(t, recs)

	opts = batch.DefaultOptions()
	opts.NoiseLevel = 1.5
	recs, err = batch.Run(opts)
	assert.ErrorIs(t, err, batch.ErrBadNoiseLevel)
	assert.Nil(t, recs)
}

// TestRun_OrderingAndCompleteness verifies one record per complexity,
// ordered 1..MaxComplexity, with rates inside [0,1].
func TestRun_OrderingAndCompleteness(t *testing.T) {
	recs, err := batch.Run(batch.Options{
		MaxComplexity: 25,
		Iterations:    50,
		NoiseLevel:    0.3,
		Seed:          7,
	})
	require.NoError(t, err)
	require.Len(t, recs, 25)
	for i, rec := range recs {
		assert.Equal(t, i+1, rec.Complexity, "records must be ordered by complexity")
		assert.GreaterOrEqual(t, rec.SurvivalRate, 0.0)
		assert.LessOrEqual(t, rec.SurvivalRate, 1.0)
	}
}

// TestRun_ZeroNoiseAllSurvive verifies a noiseless sweep has survival
// rate 1.0 at every complexity.
func TestRun_ZeroNoiseAllSurvive(t *testing.T) {
	recs, err := batch.Run(batch.Options{
		MaxComplexity: 10,
		Iterations:    20,
		NoiseLevel:    0.0,
		Seed:          1,
	})
	require.NoError(t, err)
	for _, rec := range recs {
		assert.Equal(t, 1.0, rec.SurvivalRate, "complexity=%d", rec.Complexity)
	}
}

// TestRun_MonotonicDecayTrend verifies the statistical trend at p=0.5:
// low complexities (≤3) survive strictly more often than high ones (≥18).
func TestRun_MonotonicDecayTrend(t *testing.T) {
	recs, err := batch.Run(batch.Options{
		MaxComplexity: 20,
		Iterations:    100,
		NoiseLevel:    0.5,
		Seed:          123,
	})
	require.NoError(t, err)
	require.Len(t, recs, 20)

	var lowMean, highMean float64
	for _, rec := range recs {
		switch {
		case rec.Complexity <= 3:
			lowMean += rec.SurvivalRate / 3
		case rec.Complexity >= 18:
			highMean += rec.SurvivalRate / 3
		}
	}
	assert.Greater(t, lowMean, highMean, "survival must decay with complexity")
}

// TestRun_DeterministicAcrossParallelism verifies the table is identical
// regardless of worker count, thanks to per-level RNG substreams.
func TestRun_DeterministicAcrossParallelism(t *testing.T) {
	base := batch.Options{
		MaxComplexity: 30,
		Iterations:    80,
		NoiseLevel:    0.4,
		Seed:          99,
	}

	serial := base
	serial.Workers = 1
	wide := base
	wide.Workers = 16

	got1, err := batch.Run(serial)
	require.NoError(t, err)
	got2, err := batch.Run(wide)
	require.NoError(t, err)
	gotDefault, err := batch.Run(base)
	require.NoError(t, err)

	assert.Equal(t, got1, got2, "1 vs 16 workers must agree")
	assert.Equal(t, got1, gotDefault, "default workers must agree")
}
