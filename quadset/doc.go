// Package quadset builds and analyzes the Quadset of a seed integer:
// the four-member family {Original, Conrune, Reversal,
// Conrune-Reversal}, its two differentials, and the transgram derived
// from them.
//
// 🚀 What is a Quadset?
//
//	Encode the seed to ternary, then branch:
//	  • Conrune          — digit-wise 1↔2 swap of the original
//	  • Reversal         — digit-order reversal of the original
//	  • Conrune-Reversal — conrune applied to the reversal
//	Two derived members follow:
//	  • Upper Differential = |Original − Conrune|
//	  • Lower Differential = |Reversal − Conrune-Reversal|
//	And one more from those:
//	  • Transgram — the transition rule applied to the two
//	    differentials' zero-padded digit strings
//
// Every member carries its decimal value, ternary digits, and the full
// numprops property map. The Result recomputes its Quadset Sum (four
// core members) and Septad Total (all seven) from the members on every
// call, so the totals can never drift from the data.
//
// ✨ Contract:
//
//   - Analyze is defined over non-negative seeds; negative input
//     returns ErrNegativeInput
//   - any codec failure aborts the whole analysis — no partial Result
//   - Analyze(0) yields the all-zero Quadset (every transform of "0"
//     is "0")
//
// Complexity: O(√max member) per property battery, O(digits) for the
// transforms themselves.
package quadset
