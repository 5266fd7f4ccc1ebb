// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/TheDaniel166/tq.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrBadSide indicates a side length that is not an odd integer ≥ 3.
	ErrBadSide = errors.New("grid: side must be an odd integer >= 3")
	// ErrMissingCoordinate indicates a domain coordinate absent from one
	// of the source tables.
	ErrMissingCoordinate = errors.New("grid: coordinate missing from source table")
	// ErrDuplicateValue indicates the value table is not injective, which
	// would leave the reverse (value→coordinate) lookup ill-defined.
	ErrDuplicateValue = errors.New("grid: duplicate decimal value in source table")
	// ErrBadDigits indicates a digit string that is malformed, wider than
	// DigitWidth, or in disagreement with its coordinate's decimal value.
	ErrBadDigits = errors.New("grid: malformed ternary digit string")
)

// DigitWidth is the fixed width every cell's digit string is padded
// to. Six digits give three bigram pairs and cover values up to
// 3⁶−1 = 728, the full 27×27 domain.
const DigitWidth = 6

// Variant selects the symmetry rule used by SymmetryGroup.
type Variant int

const (
	// FullSymmetry relates a cell to its point reflection and both
	// single-axis reflections.
	FullSymmetry Variant = iota
	// HorizontalOnly relates a cell to its horizontal reflection only.
	HorizontalOnly
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case HorizontalOnly:
		return "horizontal-only"
	default:
		return "full-symmetry"
	}
}

// Coord is an integer grid coordinate. The domain is centered on the
// origin: both components range over −side/2 .. side/2.
type Coord struct {
	X, Y int
}

// Bigram is a pair of ternary digit values (0..2) read from symmetric
// positions of a cell's digit string.
type Bigram struct {
	Hi, Lo uint8
}

// Ternary returns the bigram's base-3 value, 0..8.
func (b Bigram) Ternary() int {
	return int(b.Hi)*3 + int(b.Lo)
}

// Bigram slots of a Cell, outermost digit pair first.
const (
	// BigramCell pairs digit positions (0, 5).
	BigramCell = iota
	// BigramArea pairs digit positions (1, 4).
	BigramArea
	// BigramRegion pairs digit positions (2, 3).
	BigramRegion
)

// Cell is one immutable grid entry. Bigrams and Family are derived
// views of Digits, never stored independently of it.
type Cell struct {
	X, Y   int
	Value  int64
	Digits string // fixed DigitWidth ternary form of Value
	// Bigrams holds the Cell/Area/Region locator pairs, indexed by the
	// Bigram* constants.
	Bigrams [3]Bigram
	// Family classifies the cell by its Region bigram's base-3 value.
	Family   int
	IsAxis   bool // x == 0 or y == 0
	IsOrigin bool // x == 0 and y == 0
}

// Options contains tunable parameters for index construction.
type Options struct {
	// Variant chooses the symmetry rule for SymmetryGroup queries.
	// Callers needing both rules simultaneously build two indices from
	// the same tables; construction is cheap and cells are shared by value.
	Variant Variant
}

// DefaultOptions returns Options with Variant=FullSymmetry.
func DefaultOptions() Options {
	return Options{Variant: FullSymmetry}
}

// Index owns the complete cell set plus both lookup tables. Immutable
// once built; safe for concurrent readers.
type Index struct {
	side    int
	half    int
	variant Variant
	cells   []Cell
	byCoord map[Coord]int
	byValue map[int64]Coord
}
