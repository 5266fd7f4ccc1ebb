// Package numprops defines result types and tunable constants
// for the numprops subpackage of github.com/TheDaniel166/tq.
package numprops

// DefaultOrdinalCeiling bounds PrimeOrdinal: inputs above it return
// OrdinalAboveCeiling instead of triggering an unbounded sieve.
const DefaultOrdinalCeiling = 1_000_000

// OrdinalAboveCeiling is the PrimeOrdinal sentinel for primes above
// DefaultOrdinalCeiling.
const OrdinalAboveCeiling = -1

// DefaultHappyCap bounds the happy-chain iteration. Unhappy numbers
// fall into the fixed 4→16→37→58→89→145→42→20→4 cycle well before
// this many steps.
const DefaultHappyCap = 100

// Factor is one term of an ordered prime factorization.
type Factor struct {
	Prime int64
	Exp   int
}

// Abundance classifies n by the sum of its proper divisors.
type Abundance int

const (
	// Deficient: proper-divisor sum < n. Also the convention for n ≤ 1.
	Deficient Abundance = iota
	// Perfect: proper-divisor sum == n.
	Perfect
	// Abundant: proper-divisor sum > n.
	Abundant
)

// String returns the classification name.
func (a Abundance) String() string {
	switch a {
	case Perfect:
		return "perfect"
	case Abundant:
		return "abundant"
	default:
		return "deficient"
	}
}

// Polygonal describes membership in a k-gonal (or centered k-gonal)
// family: n is the Index-th k-gonal number with Sides = k.
type Polygonal struct {
	Sides int
	Index int
}

// HappyResult carries the full iterated sum-of-squares chain for a
// value, its terminal state, and the number of iterations taken.
type HappyResult struct {
	Chain      []int64
	Happy      bool
	Iterations int
}
