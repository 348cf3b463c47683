// Package code defines the fixed-format slot-code token and its codec.
//
// A Code is a short string identifying one question slot:
//
//	"1A2b"
//	 ││││
//	 ││└┴─ subcategory suffix; its second char is the subcategory flag
//	 │└─── category flag ('A' spread, 'B' half-split, anything else free)
//	 └──── category digit; chars [0:2] form the 2-char category prefix
//
// The first two characters form the category prefix, the full first four
// the subcategory key. Decoding is pure and total: short tokens simply
// yield empty, unconstrained fields — malformed input degrades constraint
// coverage, it never crashes.
//
// Use this package to decode codes and to assemble a Distribution — the
// ordered multiset of codes arranged into one packet template.
package code
