package constraint

import "github.com/katalvlaran/packetforge/code"

// Predicate scores one window of an arrangement against a bound code and a
// limit. It returns true when the constraint is VIOLATED.
type Predicate func(window []code.Code, bound code.Code, limit int) bool

// Constraint is one immutable placement rule:
// the window Arrangement[Start..End] (inclusive) must not make Violates
// return true for (Bound, Limit).
type Constraint struct {
	// Start and End are inclusive positions of the window.
	Start, End int

	// Bound is the code prefix the predicate matches against — the 2-char
	// category or 4-char subcategory key. Its length is the match length.
	// Adjacency constraints leave it empty and compare window elements to
	// each other instead.
	Bound code.Code

	// Limit is the maximum allowed number of matches inside the window.
	Limit int

	// Violates is the scoring predicate; true means violated.
	Violates Predicate
}

// window slices arr to the constraint's inclusive range, clamped to arr's
// bounds so that boundary rounding can never index out of range.
func (c Constraint) window(arr []code.Code) []code.Code {
	lo, hi := c.Start, c.End
	if lo < 0 {
		lo = 0
	}
	if hi > len(arr)-1 {
		hi = len(arr) - 1
	}
	if lo > hi {
		return nil
	}

	return arr[lo : hi+1]
}
