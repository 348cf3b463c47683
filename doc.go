// Package packetforge arranges category-coded question slots into packet
// templates that respect spacing and clustering rules.
//
// 🚀 What is packetforge?
//
//	A small, deterministic, pure-Go library that takes a fixed multiset of
//	slot codes (a "distribution") and produces, per packet, a linear
//	arrangement satisfying:
//		• Adjacency  — no two neighbouring slots share a top-level category
//		• Spread     — categories flagged for even spread never cluster
//		               inside any of their computed windows
//		• Half-split — categories flagged for splitting never exceed a
//		               per-half quota
//
// ✨ Why choose packetforge?
//
//   - Deterministic – seedable RNG everywhere; same seed ⇒ same templates
//   - Best-effort by design – hard step ceiling, residual violation counts
//     returned as data, never an unbounded hang
//   - Pure Go – no cgo, no hidden deps
//   - Composable – codec, constraint builder, evaluator and solver are
//     separate packages with narrow contracts
//
// Under the hood, everything is organized under four subpackages:
//
//	code/       — fixed-format slot-code codec and Distribution helpers
//	constraint/ — constraint construction and violation counting
//	solver/     — steepest-descent pairwise-swap search with random restarts
//	packet/     — batch driver splicing solved arrangements into table rows
//
// Quick ASCII example (distribution of six slots, two science questions):
//
//	["1A1a" "3C1c" "2B1a" "3C1c" "1A2a" "2B2a"]
//	          └──── never adjacent ────┘
//
// Dive into examples/ for full scenarios and each package's doc.go for
// contracts and complexity notes.
//
//	go get github.com/katalvlaran/packetforge
package packetforge
