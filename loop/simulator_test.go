package loop_test

import (
	"testing"

	"github.com/katalvlaran/godelsim/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateState_Length verifies the state length equals the requested
// complexity exactly and entries are bits.
func TestGenerateState_Length(t *testing.T) {
	sim := loop.New(42)
	for _, n := range []int{0, 1, 7, 128} {
		st, err := sim.GenerateState(n)
		require.NoError(t, err)
		require.Len(t, st, n, "state length must equal complexity")
		for i, b := range st {
			assert.LessOrEqual(t, b, byte(1), "entry %d must be a bit", i)
		}
	}
}

// TestGenerateState_NegativeComplexity verifies the invalid-argument sentinel.
func TestGenerateState_NegativeComplexity(t *testing.T) {
	sim := loop.New(1)
	_, err := sim.GenerateState(-1)
	assert.ErrorIs(t, err, loop.ErrNegativeComplexity)
}

// TestEvolveState_BadNoise verifies noise outside [0,1] is rejected.
func TestEvolveState_BadNoise(t *testing.T) {
	sim := loop.New(1)
	st := loop.State{0, 1, 0}

	_, err := sim.EvolveState(st, -0.01)
	assert.ErrorIs(t, err, loop.ErrBadNoiseLevel)

	_, err = sim.EvolveState(st, 1.01)
	assert.ErrorIs(t, err, loop.ErrBadNoiseLevel)
}

// TestEvolveState_DoesNotMutateInput verifies the input state is untouched
// even under certain flips.
func TestEvolveState_DoesNotMutateInput(t *testing.T) {
	sim := loop.New(7)
	st := loop.State{0, 1, 0, 1, 1, 0, 0, 1}
	want := append(loop.State(nil), st...)

	out, err := sim.EvolveState(st, 1.0)
	require.NoError(t, err)
	assert.Equal(t, want, st, "EvolveState must not mutate its input")
	assert.NotSame(t, &st[0], &out[0], "output must be a fresh allocation")
}

// TestEvolveState_FullNoiseFlipsAll verifies noise=1 flips every bit.
func TestEvolveState_FullNoiseFlipsAll(t *testing.T) {
	sim := loop.New(3)
	st := loop.State{0, 1, 1, 0}

	out, err := sim.EvolveState(st, 1.0)
	require.NoError(t, err)
	assert.Equal(t, loop.State{1, 0, 0, 1}, out)
}

// TestSimulateLoop_ZeroNoiseAlwaysSurvives verifies a noiseless loop
// preserves any state exactly.
func TestSimulateLoop_ZeroNoiseAlwaysSurvives(t *testing.T) {
	sim := loop.New(99)
	for _, n := range []int{1, 10, 500} {
		for trial := 0; trial < 50; trial++ {
			ok, err := sim.SimulateLoop(n, 0.0)
			require.NoError(t, err)
			assert.True(t, ok, "zero noise must survive (complexity=%d)", n)
		}
	}
}

// TestSimulateLoop_HighComplexityDecay verifies the exponential decay:
// 1000 bits at p=0.5 essentially never survive.
func TestSimulateLoop_HighComplexityDecay(t *testing.T) {
	sim := loop.New(123)

	var successes int
	for trial := 0; trial < 100; trial++ {
		ok, err := sim.SimulateLoop(1000, 0.5)
		require.NoError(t, err)
		if ok {
			successes++
		}
	}
	assert.Less(t, float64(successes)/100.0, 0.2,
		"survival of 1000-bit states at p=0.5 must be far below 0.2")
}

// TestSimulator_Deterministic verifies identical seeds replay identical
// trial sequences and different derived streams diverge.
func TestSimulator_Deterministic(t *testing.T) {
	run := func(sim *loop.Simulator) []bool {
		out := make([]bool, 0, 64)
		for i := 0; i < 64; i++ {
			ok, err := sim.SimulateLoop(2, 0.5)
			require.NoError(t, err)
			out = append(out, ok)
		}
		return out
	}

	assert.Equal(t, run(loop.New(77)), run(loop.New(77)), "same seed ⇒ same trials")
	assert.Equal(t, run(loop.Derive(77, 3)), run(loop.Derive(77, 3)), "same stream ⇒ same trials")
	assert.NotEqual(t, run(loop.Derive(77, 1)), run(loop.Derive(77, 2)),
		"distinct streams should diverge")
}

// TestState_Equal covers length mismatch and bit mismatch.
func TestState_Equal(t *testing.T) {
	assert.True(t, loop.State{1, 0}.Equal(loop.State{1, 0}))
	assert.False(t, loop.State{1, 0}.Equal(loop.State{1}))
	assert.False(t, loop.State{1, 0}.Equal(loop.State{1, 1}))
	assert.True(t, loop.State{}.Equal(loop.State{}))
}
