// Package constraint derives placement constraints from a distribution and
// counts how many of them a candidate arrangement violates.
//
// Three constraint families are produced by Build:
//
//   - Adjacency — one per consecutive pair of positions; violated when both
//     slots share the same 2-char category prefix.
//   - Spread    — for every category (or subcategory) flagged 'A' (or 'a')
//     with count c ≥ 2: c windows of width size/c, at most 1 occurrence per
//     window.
//   - Half-split — for every category (or subcategory) flagged 'B' (or 'b')
//     with count c ≥ 2: two windows of width size/2, at most ceil(c/2)
//     occurrences per window.
//
// Window bounds are computed as round(i·w)..round((i+1)·w − 1); for
// non-integral widths the rounding can overlap or gap neighbouring windows
// by one position. That tiling is part of the format's observable behavior
// and is kept verbatim.
//
// Constraints are immutable once built. Violations is a pure function and
// the solver's only scoring primitive.
package constraint
