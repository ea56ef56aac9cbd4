package loop_test

import (
	"fmt"

	"github.com/katalvlaran/godelsim/loop"
)

// ExampleSimulator_SimulateLoop estimates the survival rate of 4-bit
// states over 10000 noisy loop traversals at p=0.1. The theoretical rate
// is (1-0.1)^4 ≈ 0.656; the estimate lands nearby.
func ExampleSimulator_SimulateLoop() {
	sim := loop.New(42)

	var successes int
	const trials = 10000
	for i := 0; i < trials; i++ {
		ok, err := sim.SimulateLoop(4, 0.1)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		if ok {
			successes++
		}
	}
	const theory = 0.6561 // (1-0.1)^4
	estimate := float64(successes) / trials
	fmt.Println("within 0.02 of theory:", estimate > theory-0.02 && estimate < theory+0.02)
	// Output:
	// within 0.02 of theory: true
}
