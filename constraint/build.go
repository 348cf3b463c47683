// Package constraint - constraint construction.
//
// Build derives the full constraint set for one distribution:
//   - Stage 1: size−1 adjacency constraints over consecutive pairs.
//   - Stage 2: per 2-char category group, spread/half-split windows keyed
//     on the category flag.
//   - Stage 3: the same windowing at 4-char subcategory granularity keyed
//     on the subcategory flag.
//
// Contracts:
//   - Build only reads the distribution; it never reorders, mutates, or
//     duplicates its elements.
//   - Groups with count < 2 contribute no window constraints regardless of
//     flag; a distribution of size < 2 contributes no adjacency constraints.
//   - Output order is deterministic: adjacency first, then category windows
//     in first-occurrence order of each prefix, then subcategory windows.
//
// Complexity: O(n) groups pass + O(total windows) emission; the constraint
// set size is O(n), so Build is O(n) time and space overall.
package constraint

import (
	"math"

	"github.com/katalvlaran/packetforge/code"
)

// splitHalves is the number of windows a half-split flag produces.
const splitHalves = 2

// Build derives the constraint set described in the package doc from dist.
func Build(dist code.Distribution) []Constraint {
	size := len(dist)
	cs := make([]Constraint, 0, 2*size)

	// Stage 1 - adjacency: one constraint per consecutive pair.
	var i int
	for i = 0; i+1 < size; i++ {
		cs = append(cs, Constraint{
			Start:    i,
			End:      i + 1,
			Violates: AdjacencySame,
		})
	}

	// Stage 2 - category windows (2-char prefix, 'A'/'B' flags).
	cs = appendGroupWindows(cs, dist, code.CategoryLen, code.FlagSpread, code.FlagSplit)

	// Stage 3 - subcategory windows (4-char key, 'a'/'b' flags).
	cs = appendGroupWindows(cs, dist, code.SubKeyLen, code.SubFlagSpread, code.SubFlagSplit)

	return cs
}

// appendGroupWindows groups dist by its n-char prefix and emits window
// constraints for every group of count ≥ 2 whose flag byte (the prefix's
// last char) equals spreadFlag or splitFlag.
//
//   - spread: count windows of width size/count, limit 1.
//   - split:  two windows of width size/2, limit ceil(count/2).
//
// Window bounds use round(i·w)..round((i+1)·w − 1) on purpose: for
// non-integral widths the tiling may overlap or gap by one position at
// window boundaries, and arrangements are scored against exactly that.
func appendGroupWindows(cs []Constraint, dist code.Distribution, n int, spreadFlag, splitFlag byte) []Constraint {
	size := len(dist)

	// Count group sizes; track first-occurrence order for stable output.
	counts := make(map[string]int, size)
	order := make([]string, 0, size)

	var (
		c      code.Code
		prefix string
	)
	for _, c = range dist {
		if len(c) < n {
			continue // short token: no prefix at this granularity
		}
		prefix = string(c[:n])
		if counts[prefix] == 0 {
			order = append(order, prefix)
		}
		counts[prefix]++
	}

	var (
		count, limit, windows int
		width                 float64
	)
	for _, prefix = range order {
		count = counts[prefix]
		if count < 2 {
			continue // a single slot can neither cluster nor split
		}

		switch prefix[n-1] {
		case spreadFlag:
			windows = count
			width = float64(size) / float64(count)
			limit = 1
		case splitFlag:
			windows = splitHalves
			width = float64(size) / float64(splitHalves)
			limit = int(math.Ceil(float64(count) / float64(splitHalves)))
		default:
			continue // unconstrained flag byte
		}

		var w int
		for w = 0; w < windows; w++ {
			cs = append(cs, Constraint{
				Start:    int(math.Round(float64(w) * width)),
				End:      int(math.Round(float64(w+1)*width - 1)),
				Bound:    code.Code(prefix),
				Limit:    limit,
				Violates: QuotaExceeded,
			})
		}
	}

	return cs
}
