// Package solver - steepest-descent pairwise-swap search with restarts.
//
// Solve explores the neighbourhood of all C(n,2) position swaps, always
// moving to the strictly best-scoring neighbour, and reshuffles the
// candidate after RestartDepth consecutive steps from one starting point.
//
// Design:
//   - Explicit loop, not recursion: the state (current, depth, best,
//     bestViolations, steps) is carried in locals and the MaxSteps ceiling
//     makes termination unconditional even on unsatisfiable constraint sets.
//   - Neighbours are scored by swapping in place and swapping back, so one
//     step costs O(1) extra space instead of materializing O(n²) candidates.
//   - When no swap strictly improves, the current arrangement is kept and
//     depth still advances; the stall is escaped by the next reshuffle.
//   - The best arrangement seen anywhere (across restarts) is tracked and
//     returned, never the last candidate.
//
// Contracts:
//   - dist is never mutated; Solve works on a copy.
//   - The returned Arrangement is always a permutation of dist.
//   - Non-convergence is not an error: Result carries the residual count.
//
// Complexity: O(n²) swap scorings per step, each O(n) evaluation for the
// sets constraint.Build produces ⇒ O(n³) per step. Packets are tens of
// slots, so the cubic step stays cheap.
package solver

import (
	"github.com/katalvlaran/packetforge/code"
	"github.com/katalvlaran/packetforge/constraint"
)

// Solve arranges a copy of dist to minimize violations of cs.
// See the file header for the search policy and guarantees.
func Solve(dist code.Distribution, cs []constraint.Constraint, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	maxSteps := opts.MaxSteps
	if maxSteps == 0 {
		maxSteps = DefaultMaxSteps
	}

	// Work on a copy; the caller's distribution stays pristine.
	cur := []code.Code(dist.Clone())
	n := len(cur)

	// Degenerate sizes satisfy every applicable constraint immediately.
	if n <= 1 {
		return Result{Arrangement: cur, Violations: constraint.Violations(cur, cs)}, nil
	}

	rng := rngFromSeed(opts.Seed)
	shuffleCodesInPlace(cur, rng)

	var (
		curV  = constraint.Violations(cur, cs)
		best  = make([]code.Code, n)
		bestV = curV

		depth    int // consecutive descent steps since the last shuffle
		steps    int // total descent steps across all restarts
		restarts int // reshuffles performed after the initial one
	)
	copy(best, cur)

	for curV > 0 && steps < maxSteps {
		// Restart guard: abandon this starting shuffle for a fresh one.
		if depth > opts.RestartDepth {
			shuffleCodesInPlace(cur, rng)
			curV = constraint.Violations(cur, cs)
			depth = 0
			restarts++
			if curV < bestV {
				bestV = curV
				copy(best, cur)
			}

			continue
		}

		// Steepest descent: score every unordered swap by applying it in
		// place, evaluating, and undoing it. Strict improvement only.
		var (
			swapI, swapJ = -1, -1
			swapV        = curV
			i, j, v      int
		)
		for i = 0; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				cur[i], cur[j] = cur[j], cur[i]
				v = constraint.Violations(cur, cs)
				cur[i], cur[j] = cur[j], cur[i]
				if v < swapV {
					swapV = v
					swapI, swapJ = i, j
				}
			}
		}

		if swapI >= 0 {
			cur[swapI], cur[swapJ] = cur[swapJ], cur[swapI]
			curV = swapV
			if curV < bestV {
				bestV = curV
				copy(best, cur)
			}
		}
		// No improving swap: keep the current arrangement and let depth
		// grow toward the restart guard.

		depth++
		steps++
	}

	return Result{
		Arrangement: best,
		Violations:  bestV,
		Steps:       steps,
		Restarts:    restarts,
	}, nil
}
