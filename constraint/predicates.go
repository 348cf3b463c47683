// Package constraint - scoring predicates.
//
// Both predicates are pure, allocation-free, and O(window) per call.
// They return true exactly when the constraint is violated.
package constraint

import "github.com/katalvlaran/packetforge/code"

// AdjacencySame is the adjacency predicate: violated iff all window
// elements share one 2-char category prefix. Built windows always span
// exactly two positions; bound and limit are ignored.
func AdjacencySame(window []code.Code, _ code.Code, _ int) bool {
	if len(window) < 2 {
		return false // degenerate window at an arrangement boundary
	}
	first := window[0].Category()
	if first == "" {
		return false // short tokens carry no category to clash on
	}

	var i int
	for i = 1; i < len(window); i++ {
		if !window[i].MatchesPrefix(first, code.CategoryLen) {
			return false
		}
	}

	return true
}

// QuotaExceeded is the window/quota predicate: violated iff the number of
// window elements matching bound's full prefix strictly exceeds limit.
func QuotaExceeded(window []code.Code, bound code.Code, limit int) bool {
	n := len(bound)

	var (
		c     code.Code
		count int
	)
	for _, c = range window {
		if c.MatchesPrefix(string(bound), n) {
			count++
			if count > limit {
				return true // early out; count can only grow
			}
		}
	}

	return false
}
