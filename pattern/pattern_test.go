package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheDaniel166/tq/pattern"
)

// members builds the fixed-size input from value/digits pairs.
func members(v [4]int64, d [4]string) [pattern.MemberCount]pattern.Member {
	var out [pattern.MemberCount]pattern.Member
	for i := range out {
		out[i] = pattern.Member{Value: v[i], Digits: d[i]}
	}

	return out
}

// TestAnalyze_QuadsetOfFive checks the full findings for the Quadset
// of seed 5: values (5, 7, 7, 5) with digits (12, 21, 21, 12).
func TestAnalyze_QuadsetOfFive(t *testing.T) {
	f := pattern.Analyze(members(
		[4]int64{5, 7, 7, 5},
		[4]string{"12", "21", "21", "12"},
	))

	assert.Equal(t, int64(1), f.GCD)
	assert.Equal(t, int64(35), f.LCM)
	assert.Equal(t, 0, f.EvenCount)
	assert.Equal(t, 4, f.OddCount)
	assert.Equal(t, 4, f.PrimeCount, "5 and 7 are both prime")

	assert.Equal(t, [3]bool{false, true, false}, f.CongruentMod3)
	assert.Equal(t, [3]bool{false, true, false}, f.CongruentMod5)

	assert.False(t, f.Arithmetic, "{5,5,7,7} admits no arithmetic ordering")
	assert.False(t, f.Geometric)

	// Single decimal digits are trivially palindromic.
	assert.Equal(t, [4]bool{true, true, true, true}, f.DecimalPalindrome)
	assert.Equal(t, [4]bool{false, false, false, false}, f.TernaryPalindrome)

	assert.Equal(t, [3]int{0, 4, 4}, f.DigitCounts)
	assert.False(t, f.BinaryLike)
}

// TestAnalyze_ArithmeticInSomeOrdering feeds a scrambled arithmetic
// progression: the check must enumerate orderings, not trust input order.
func TestAnalyze_ArithmeticInSomeOrdering(t *testing.T) {
	f := pattern.Analyze(members(
		[4]int64{7, 1, 5, 3},
		[4]string{"21", "1", "12", "10"},
	))
	assert.True(t, f.Arithmetic, "1,3,5,7 is arithmetic in sorted order")
	assert.False(t, f.Geometric)
}

// TestAnalyze_GeometricInSomeOrdering feeds a scrambled geometric
// progression 2,6,18,54 (ratio 3).
func TestAnalyze_GeometricInSomeOrdering(t *testing.T) {
	f := pattern.Analyze(members(
		[4]int64{18, 2, 54, 6},
		[4]string{"200", "2", "2000", "20"},
	))
	assert.True(t, f.Geometric)
	assert.False(t, f.Arithmetic)
}

// TestAnalyze_AllZero covers the degenerate Quadset of seed 0.
func TestAnalyze_AllZero(t *testing.T) {
	f := pattern.Analyze(members(
		[4]int64{0, 0, 0, 0},
		[4]string{"0", "0", "0", "0"},
	))

	assert.Equal(t, int64(0), f.GCD)
	assert.Equal(t, int64(0), f.LCM, "LCM with a zero member is 0")
	assert.Equal(t, 4, f.EvenCount)
	assert.Equal(t, 0, f.PrimeCount)
	assert.True(t, f.Arithmetic, "constant sequence is arithmetic")
	assert.False(t, f.Geometric, "geometric requires non-zero terms")
	assert.Equal(t, [3]int{4, 0, 0}, f.DigitCounts)
	assert.True(t, f.BinaryLike)
}

// TestAnalyze_Palindromes covers decimal and ternary palindrome flags.
func TestAnalyze_Palindromes(t *testing.T) {
	// 121 decimal is a palindrome; its ternary form 11111 also is.
	f := pattern.Analyze(members(
		[4]int64{121, 10, 13, 22},
		[4]string{"11111", "101", "111", "211"},
	))
	assert.True(t, f.DecimalPalindrome[0])
	assert.True(t, f.TernaryPalindrome[0])
	assert.False(t, f.DecimalPalindrome[1], "10 is not a decimal palindrome")
	assert.True(t, f.TernaryPalindrome[1], "101 is a ternary palindrome")
	assert.True(t, f.DecimalPalindrome[3], "22 is a decimal palindrome")
	assert.False(t, f.TernaryPalindrome[3])
	assert.False(t, f.DecimalPalindrome[2], "13 is not a decimal palindrome")
	assert.True(t, f.TernaryPalindrome[2])
}

// TestSummary_Deterministic verifies the report mentions the headline
// findings and is stable across calls.
func TestSummary_Deterministic(t *testing.T) {
	in := members(
		[4]int64{7, 1, 5, 3},
		[4]string{"21", "1", "12", "10"},
	)
	f := pattern.Analyze(in)
	s := f.Summary()

	assert.Contains(t, s, "gcd 1, lcm 105")
	assert.Contains(t, s, "0 even / 4 odd")
	assert.Contains(t, s, "3 prime")
	assert.Contains(t, s, "arithmetic progression")
	assert.Equal(t, s, pattern.Analyze(in).Summary())
}
