// Package tq is a pure-computation engine for balanced and unbalanced
// base-3 (ternary) number analysis — from digit-level transforms to
// full Quadset signatures and a symmetry-aware 2D coordinate grid.
//
// 🚀 What is tq?
//
//	A synchronous, single-threaded library that brings together:
//		• Ternary codec: decimal⇄ternary, conrune transform, reversal,
//		  the digit-pair transition rule, balanced-ternary encoding
//		• Number properties: primality, factorization, abundance classes,
//		  polygonal/figurate tests, digital roots, happy chains
//		• Quadset engine: the four-member family of a seed integer plus
//		  differentials and the transgram, with per-member property maps
//		• Pattern analysis: LCM/GCD, parity, congruence, progression and
//		  palindrome detection across a Quadset
//		• Spatial grid: a fixed odd-sized coordinate grid with O(1) cell
//		  lookup, bigram locator search, symmetry groups and chord values
//
// ✨ Why choose tq?
//
//   - Deterministic – every operation is a pure function over immutable inputs
//   - Explicit failures – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden state, no global singletons
//   - Concurrency-safe – indices are read-only after construction
//
// Under the hood, everything is organized into five subpackages:
//
//	ternary/  — codec primitives every other package builds on
//	numprops/ — number-theoretic property queries
//	quadset/  — Quadset construction and analysis
//	pattern/  — cross-member pattern findings
//	grid/     — the spatial grid index and its symmetry queries
//
// Quick ASCII sketch of a Quadset for seed 5 (ternary "12"):
//
//	Original "12"=5 ──conrune──▶ "21"=7
//	    │                          │
//	 reverse                    reverse
//	    ▼                          ▼
//	Reversal "21"=7 ◀──conrune── "12"=5
//
// Dive into the per-package doc.go files and examples/ for full
// walkthroughs of the transition rule, bigram locators and chords.
//
//	go get github.com/TheDaniel166/tq
package tq
