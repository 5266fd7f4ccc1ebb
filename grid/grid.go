package grid

import (
	"fmt"
	"sort"

	"github.com/TheDaniel166/tq/ternary"
)

// New constructs an Index over an odd side×side coordinate domain from
// two parallel source tables. Every domain coordinate must appear in
// both tables, every digit string must be a valid ternary form of its
// value within DigitWidth, and the value table must be injective.
//
// Cells are ordered row-major from the top-left corner (y descending,
// x ascending). The returned Index is immutable.
//
// Returns ErrBadSide, ErrMissingCoordinate, ErrBadDigits or
// ErrDuplicateValue (wrapped with the offending coordinate or value).
// Complexity: O(side²) time and memory.
func New(side int, values map[Coord]int64, digits map[Coord]string, opts Options) (*Index, error) {
	if side < 3 || side%2 == 0 {
		return nil, fmt.Errorf("grid: side %d: %w", side, ErrBadSide)
	}
	half := side / 2

	ix := &Index{
		side:    side,
		half:    half,
		variant: opts.Variant,
		cells:   make([]Cell, 0, side*side),
		byCoord: make(map[Coord]int, side*side),
		byValue: make(map[int64]Coord, side*side),
	}

	for y := half; y >= -half; y-- {
		for x := -half; x <= half; x++ {
			c := Coord{X: x, Y: y}
			v, ok := values[c]
			if !ok {
				return nil, fmt.Errorf("grid: value table (%d,%d): %w", x, y, ErrMissingCoordinate)
			}
			d, ok := digits[c]
			if !ok {
				return nil, fmt.Errorf("grid: digit table (%d,%d): %w", x, y, ErrMissingCoordinate)
			}
			cell, err := newCell(x, y, v, d)
			if err != nil {
				return nil, err
			}
			if prev, dup := ix.byValue[v]; dup {
				return nil, fmt.Errorf("grid: value %d at (%d,%d) and (%d,%d): %w",
					v, prev.X, prev.Y, x, y, ErrDuplicateValue)
			}
			ix.byValue[v] = c
			ix.byCoord[c] = len(ix.cells)
			ix.cells = append(ix.cells, cell)
		}
	}

	return ix, nil
}

// newCell validates the digit string and derives every view of it.
func newCell(x, y int, value int64, digits string) (Cell, error) {
	if len(digits) > DigitWidth {
		return Cell{}, fmt.Errorf("grid: (%d,%d) digits %q exceed width %d: %w",
			x, y, digits, DigitWidth, ErrBadDigits)
	}
	decoded, err := ternary.Decode(digits)
	if err != nil {
		return Cell{}, fmt.Errorf("grid: (%d,%d) digits %q: %w", x, y, digits, ErrBadDigits)
	}
	if decoded != value {
		return Cell{}, fmt.Errorf("grid: (%d,%d) digits %q decode to %d, value table says %d: %w",
			x, y, digits, decoded, value, ErrBadDigits)
	}
	padded := ternary.PadLeft(digits, DigitWidth)

	cell := Cell{
		X:        x,
		Y:        y,
		Value:    value,
		Digits:   padded,
		IsAxis:   x == 0 || y == 0,
		IsOrigin: x == 0 && y == 0,
	}
	// Symmetric digit pairs, outermost first: (0,5), (1,4), (2,3).
	for i := 0; i < 3; i++ {
		cell.Bigrams[i] = Bigram{
			Hi: padded[i] - '0',
			Lo: padded[DigitWidth-1-i] - '0',
		}
	}
	cell.Family = cell.Bigrams[BigramRegion].Ternary()

	return cell, nil
}

// Side returns the domain's side length.
func (ix *Index) Side() int { return ix.side }

// Variant returns the symmetry rule this index answers with.
func (ix *Index) Variant() Variant { return ix.variant }

// InBounds reports whether (x,y) lies within the coordinate domain.
// Complexity: O(1).
func (ix *Index) InBounds(x, y int) bool {
	return x >= -ix.half && x <= ix.half && y >= -ix.half && y <= ix.half
}

// Cell returns the cell at (x,y). The second return is false when the
// coordinate is outside the domain. Complexity: O(1).
func (ix *Index) Cell(x, y int) (Cell, bool) {
	i, ok := ix.byCoord[Coord{X: x, Y: y}]
	if !ok {
		return Cell{}, false
	}

	return ix.cells[i], true
}

// Cells returns every cell in row-major order from the top-left
// corner. The slice is a copy; the index stays immutable.
func (ix *Index) Cells() []Cell {
	out := make([]Cell, len(ix.cells))
	copy(out, ix.cells)

	return out
}

// CellByLocator returns the cell whose Region/Area/Cell bigram values
// match the given triple. A linear scan on purpose: the domain is at
// most 729 cells and a reverse bigram index is not justified at that
// scale. Complexity: O(side²).
func (ix *Index) CellByLocator(region, area, cell int) (Cell, bool) {
	for i := range ix.cells {
		c := &ix.cells[i]
		if c.Bigrams[BigramRegion].Ternary() == region &&
			c.Bigrams[BigramArea].Ternary() == area &&
			c.Bigrams[BigramCell].Ternary() == cell {
			return *c, true
		}
	}

	return Cell{}, false
}

// SymmetryGroup returns the cells related to (x,y) under the index's
// variant, identity first, deduplicated, with out-of-domain
// reflections filtered out. An out-of-domain (x,y) yields nil.
//
//	FullSymmetry:   (x,y), (−x,−y), (−x,y), (x,−y)
//	HorizontalOnly: (x,y), (−x,y) — one cell when x == 0
//
// Complexity: O(1).
func (ix *Index) SymmetryGroup(x, y int) []Cell {
	var candidates []Coord
	switch ix.variant {
	case FullSymmetry:
		candidates = []Coord{{x, y}, {-x, -y}, {-x, y}, {x, -y}}
	case HorizontalOnly:
		candidates = []Coord{{x, y}, {-x, y}}
	}

	out := make([]Cell, 0, len(candidates))
	seen := make(map[Coord]bool, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		cell, ok := ix.Cell(c.X, c.Y)
		if !ok {
			continue
		}
		out = append(out, cell)
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

// ChordValues returns the deduplicated, ascending decimal values of
// v's symmetry group. A value with no coordinate in the grid yields
// [v] unchanged — graceful degradation for downstream consumers, not
// an error. Complexity: O(1) plus a sort of at most four values.
func (ix *Index) ChordValues(v int64) []int64 {
	c, ok := ix.byValue[v]
	if !ok {
		return []int64{v}
	}

	group := ix.SymmetryGroup(c.X, c.Y)
	seen := make(map[int64]bool, len(group))
	out := make([]int64, 0, len(group))
	for _, cell := range group {
		if seen[cell.Value] {
			continue
		}
		seen[cell.Value] = true
		out = append(out, cell.Value)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
