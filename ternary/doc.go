// Package ternary implements the base-3 codec underlying the whole
// engine: decimal⇄ternary conversion, the conrune transform, digit
// reversal, the digit-pair transition rule and balanced-ternary
// encoding for signed contexts.
//
// 🚀 What is the ternary codec?
//
//	Every value in the engine is ultimately a string of the digits
//	0/1/2 paired with the integer it encodes.  The codec provides the
//	four primitive moves the rest of the system composes:
//	  • Encode / Decode   — decimal⇄ternary, round-trip exact
//	  • Conrune           — digit-wise 0→0, 1→2, 2→1 (involutive)
//	  • Reverse           — digit-order reversal (involutive)
//	  • Transition        — per-position digit-pair interaction rule
//
// ✨ Semantics of Transition:
//
//	Operands are left-padded with zeros to equal length, then each
//	ordered digit pair maps through a fixed 3×3 table:
//	  - 0 is the identity digit: (0,d) = (d,0) = d
//	  - like digits persist:     (1,1) = 1, (2,2) = 2
//	  - opposite digits annul:   (1,2) = (2,1) = 0
//	The table is commutative; the result has the padded length.
//
// Balanced ternary uses digits {T,0,1} where 'T' denotes −1, so
// negative integers encode without a separate sign. The unbalanced
// Encode is unsigned-digit based: for n < 0 it encodes |n| and sign
// handling stays with the caller.
//
// All functions are pure and side-effect free; invalid digits surface
// as ErrInvalidDigit, out-of-range magnitudes as ErrUnsupportedRange.
//
// Complexity: every operation is O(len(digits)); digit strings stay
// under ~41 characters for the full int64 range.
package ternary
