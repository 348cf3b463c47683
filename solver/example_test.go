// Package solver_test provides a runnable, deterministic example.
// The printed facts are seed-independent invariants of a converged solve
// (residual count, multiset, adjacency), so the output is stable on CI.
package solver_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/packetforge/code"
	"github.com/katalvlaran/packetforge/constraint"
	"github.com/katalvlaran/packetforge/solver"
)

// ExampleSolve arranges a six-slot distribution with a duplicated code.
func ExampleSolve() {
	dist := code.Distribution{"1A1a", "1A2a", "2B1a", "2B2a", "3C1c", "3C1c"}

	opts := solver.DefaultOptions()
	opts.Seed = 42

	res, err := solver.Solve(dist, constraint.Build(dist), opts)
	if err != nil {
		fmt.Println("solve:", err)

		return
	}

	fmt.Println("violations:", res.Violations)

	clash := false
	for i := 0; i+1 < len(res.Arrangement); i++ {
		if res.Arrangement[i].Category() == res.Arrangement[i+1].Category() {
			clash = true
		}
	}
	fmt.Println("adjacent category clash:", clash)

	slots := make([]string, len(res.Arrangement))
	for i, c := range res.Arrangement {
		slots[i] = string(c)
	}
	sort.Strings(slots)
	fmt.Println("slots:", slots)
	// Output:
	// violations: 0
	// adjacent category clash: false
	// slots: [1A1a 1A2a 2B1a 2B2a 3C1c 3C1c]
}
