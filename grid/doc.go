// Package grid maps every integer of a bounded 2D coordinate space
// onto a cell with a ternary-derived locator, and answers symmetry and
// chord queries over the resulting index.
//
// 🚀 What is the grid?
//
//	A fixed odd-sided square of coordinates centered on the origin
//	(e.g. 27×27 spanning −13..13). Construction takes two parallel
//	coordinate-indexed tables — decimal values and ternary digit
//	strings — and builds one immutable Cell per coordinate with:
//	  • a fixed-width (6-digit) ternary string
//	  • three bigrams read from symmetric digit positions:
//	    Cell (0,5), Area (1,4), Region (2,3) — nested locators from
//	    the outermost digit pair inward
//	  • a family identifier: the Region bigram's base-3 value (0..8)
//	  • axis/origin flags
//
// ✨ Queries:
//
//   - Cell(x, y)                — O(1) coordinate lookup
//   - CellByLocator(r, a, c)    — O(n) bigram-triple scan; kept linear
//     on purpose, the domain is at most a few hundred cells
//   - SymmetryGroup(x, y)       — variant-dependent reflections:
//     FullSymmetry returns identity, point reflection and both
//     single-axis reflections; HorizontalOnly returns identity and
//     the horizontal reflection, collapsing to one cell on the axis
//   - ChordValues(v)            — the deduplicated, ascending values of
//     v's symmetry group; an unknown v gracefully yields [v]
//
// The index is built once and read-only afterward: no global state,
// safe for concurrent readers. Absent lookups return (zero, false) or
// fallback values — absence is expected, never an error. Errors are
// reserved for construction: missing coordinates, duplicate values,
// malformed digit strings.
package grid
