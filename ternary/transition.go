package ternary

// transitionTable maps each ordered digit pair (row, col) to one result
// digit. The rule is commutative with 0 as the identity digit:
//
//	(0,d) = (d,0) = d   — 0 yields the other operand unchanged
//	(1,1) = 1, (2,2) = 2 — like digits persist
//	(1,2) = (2,1) = 0    — opposite digits annul
var transitionTable = [Base][Base]byte{
	{DigitZero, DigitOne, DigitTwo},
	{DigitOne, DigitOne, DigitZero},
	{DigitTwo, DigitZero, DigitTwo},
}

// Transition applies the digit-pair transition rule position by
// position. The shorter operand is left-padded with zeros to the
// longer operand's length; the result has that padded length.
//
// This is the building block for the Quadset transgram and for
// grid-to-grid transitions used by geometry collaborators.
//
// Returns ErrInvalidDigit for any rune outside {0,1,2} in either
// operand. Complexity: O(max(len(a), len(b))).
func Transition(a, b string) (string, error) {
	width := len(a)
	if len(b) > width {
		width = len(b)
	}
	a = PadLeft(a, width)
	b = PadLeft(b, width)

	out := make([]byte, width)
	for i := 0; i < width; i++ {
		da, db := a[i], b[i]
		if da < DigitZero || da > DigitTwo || db < DigitZero || db > DigitTwo {
			return "", ErrInvalidDigit
		}
		out[i] = transitionTable[da-DigitZero][db-DigitZero]
	}

	return string(out), nil
}
