// Package packet is the batch driver: it walks a template table, solves one
// arrangement problem per marked row, and splices the resulting codes back
// into that row.
//
// The table is the host's tabular contract (the surrounding spreadsheet
// workflow owns it; this library never talks to the host directly): rows
// of string cells, where a non-empty first cell marks the row as needing
// a template. Marked rows receive a contiguous splice of the
// solved arrangement starting at a fixed column offset; unmarked rows pass
// through untouched.
//
// Rows are independent problems. Each gets its own constraint set and its
// own RNG stream derived from the base seed and the row index, so results
// are reproducible regardless of how many rows precede them, and one row's
// failure to converge never blocks the rest of the batch.
package packet
