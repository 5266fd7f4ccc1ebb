// Package pattern defines the input and result types
// for the pattern subpackage of github.com/TheDaniel166/tq.
package pattern

// MemberCount is the fixed size of a core Quadset.
const MemberCount = 4

// Member is one core Quadset entry as pattern analysis sees it: the
// decimal value with its ternary digit string. Kept deliberately flat
// so the quadset package can depend on pattern without a cycle.
type Member struct {
	Value  int64
	Digits string
}

// Findings is the structured result of analyzing four core members.
// Adjacent-pair slots index the canonical pairs (0,1), (1,2), (2,3).
type Findings struct {
	// GCD and LCM of the four decimal values. By convention GCD is 0
	// only when all values are 0, and LCM is 0 when any value is 0.
	GCD int64
	LCM int64

	EvenCount  int
	OddCount   int
	PrimeCount int

	CongruentMod3 [MemberCount - 1]bool
	CongruentMod5 [MemberCount - 1]bool

	// Arithmetic/Geometric report whether some ordering of the four
	// values forms the progression. Geometric requires non-zero terms.
	Arithmetic bool
	Geometric  bool

	DecimalPalindrome [MemberCount]bool
	TernaryPalindrome [MemberCount]bool

	// DigitCounts tallies 0/1/2 occurrences across all four ternary
	// strings; BinaryLike is set when no '2' appears anywhere.
	DigitCounts [3]int
	BinaryLike  bool
}
