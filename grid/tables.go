package grid

import "github.com/TheDaniel166/tq/ternary"

// CanonicalTables generates the standard source tables for an odd
// side×side domain: cells are numbered row-major from the top-left
// corner (x=−side/2, y=+side/2), and each digit table entry is the
// value's ternary form. The full 27×27 domain numbers 0..728, exactly
// the range DigitWidth covers.
//
// The production system ships these tables as external data files;
// this generator reproduces their layout so the CLI, examples and
// tests are self-contained. Defined for odd sides 3..27 — wider
// domains would overflow DigitWidth and fail in New.
// Complexity: O(side²).
func CanonicalTables(side int) (values map[Coord]int64, digits map[Coord]string) {
	half := side / 2
	values = make(map[Coord]int64, side*side)
	digits = make(map[Coord]string, side*side)

	i := int64(0)
	for y := half; y >= -half; y-- {
		for x := -half; x <= half; x++ {
			c := Coord{X: x, Y: y}
			values[c] = i
			d, _ := ternary.Encode(i)
			digits[c] = ternary.PadLeft(d, DigitWidth)
			i++
		}
	}

	return values, digits
}
