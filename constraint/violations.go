// Package constraint - violation counting.
//
// Violations is the solver's scoring function. It is a pure function of
// (arrangement, constraints): no state, no RNG, no mutation.
//
// Complexity: O(total window length) — each position participates in a
// bounded number of constraints, so a full evaluation is O(n) in the
// arrangement size for the sets Build produces.
package constraint

import "github.com/katalvlaran/packetforge/code"

// Violations counts the constraints in cs whose predicate returns true on
// arr. Constraints with a nil predicate are skipped.
func Violations(arr []code.Code, cs []Constraint) int {
	var (
		c     Constraint
		total int
	)
	for _, c = range cs {
		if c.Violates == nil {
			continue
		}
		if c.Violates(c.window(arr), c.Bound, c.Limit) {
			total++
		}
	}

	return total
}
