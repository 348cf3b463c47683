// Package solver drives a candidate arrangement toward zero constraint
// violations by steepest-descent pairwise swaps with bounded-depth random
// restarts.
//
// One step examines every unordered pair swap of the current arrangement —
// C(n,2) neighbours — and moves to the strictly best-scoring one. When no
// swap strictly improves, the arrangement is kept and the descent "depth"
// still advances; after RestartDepth consecutive steps from one starting
// shuffle the candidate is reshuffled uniformly and descent begins anew.
// The search stops at zero violations or at the MaxSteps ceiling, in which
// case the best arrangement seen anywhere in the search is returned with
// its residual violation count.
//
// The solve is best-effort by design: the underlying problem is NP-hard in
// general, and a pathological constraint set may never reach zero. Solve
// therefore never errors on non-convergence — the ceiling bounds the work
// and the Result reports what was achieved.
//
// All randomness flows from Options.Seed; identical inputs and seed yield
// identical results on every platform.
package solver
