package numprops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheDaniel166/tq/numprops"
)

//----------------------------------------------------------------------------//
// Digit Function Tests
//----------------------------------------------------------------------------//

// TestDigitSum_And_DigitalRoot pins decimal digit sums and roots.
func TestDigitSum_And_DigitalRoot(t *testing.T) {
	cases := []struct {
		n         int64
		sum, root int64
	}{
		{0, 0, 0},
		{5, 5, 5},
		{9, 9, 9},
		{10, 1, 1},
		{18, 9, 9},
		{99, 18, 9},
		{12345, 15, 6},
		{999999999, 81, 9},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.sum, numprops.DigitSum(tc.n), "DigitSum(%d)", tc.n)
		assert.Equal(t, tc.root, numprops.DigitalRoot(tc.n), "DigitalRoot(%d)", tc.n)
	}
}

// TestDigitalRoot_MatchesIteratedSum cross-checks the closed form
// against explicit iteration.
func TestDigitalRoot_MatchesIteratedSum(t *testing.T) {
	for n := int64(0); n <= 5_000; n++ {
		iter := n
		for iter > 9 {
			iter = numprops.DigitSum(iter)
		}
		if got := numprops.DigitalRoot(n); got != iter {
			t.Fatalf("DigitalRoot(%d) = %d; iterated sum = %d", n, got, iter)
		}
	}
}

//----------------------------------------------------------------------------//
// Happy Number Tests
//----------------------------------------------------------------------------//

// TestHappyChain covers a happy value, an unhappy value, and both edges.
func TestHappyChain(t *testing.T) {
	// 19 → 82 → 68 → 100 → 1 is the classic happy chain.
	r := numprops.HappyChain(19)
	assert.True(t, r.Happy)
	assert.Equal(t, []int64{19, 82, 68, 100, 1}, r.Chain)
	assert.Equal(t, 4, r.Iterations)

	// 4 opens the fixed unhappy cycle and must terminate on revisit.
	r = numprops.HappyChain(4)
	assert.False(t, r.Happy)
	assert.Equal(t, []int64{4, 16, 37, 58, 89, 145, 42, 20}, r.Chain)
	assert.Less(t, r.Iterations, numprops.DefaultHappyCap)

	r = numprops.HappyChain(1)
	assert.True(t, r.Happy)
	assert.Equal(t, []int64{1}, r.Chain)
	assert.Equal(t, 0, r.Iterations)

	r = numprops.HappyChain(0)
	assert.False(t, r.Happy, "0 maps to itself, never reaching 1")
}

// TestIsHappy spot-checks known happy and unhappy values.
func TestIsHappy(t *testing.T) {
	for _, h := range []int64{1, 7, 10, 13, 19, 23, 28, 97} {
		assert.True(t, numprops.IsHappy(h), "IsHappy(%d)", h)
	}
	for _, u := range []int64{2, 3, 4, 5, 6, 8, 9, 11} {
		assert.False(t, numprops.IsHappy(u), "IsHappy(%d)", u)
	}
}

//----------------------------------------------------------------------------//
// Figurate Family Tests
//----------------------------------------------------------------------------//

// TestIsSquare_IsCube covers edges and boundary-adjacent values.
func TestIsSquare_IsCube(t *testing.T) {
	for _, s := range []int64{0, 1, 4, 9, 144, 1_000_000} {
		assert.True(t, numprops.IsSquare(s), "IsSquare(%d)", s)
	}
	for _, s := range []int64{2, 3, 5, 143, 145, 999_999} {
		assert.False(t, numprops.IsSquare(s), "IsSquare(%d)", s)
	}
	for _, c := range []int64{0, 1, 8, 27, 729, 1_000_000} {
		assert.True(t, numprops.IsCube(c), "IsCube(%d)", c)
	}
	for _, c := range []int64{2, 9, 26, 28, 100} {
		assert.False(t, numprops.IsCube(c), "IsCube(%d)", c)
	}
}

// TestIsFibonacci includes both edge values and near misses.
func TestIsFibonacci(t *testing.T) {
	for _, f := range []int64{0, 1, 2, 3, 5, 8, 13, 21, 34, 6765} {
		assert.True(t, numprops.IsFibonacci(f), "IsFibonacci(%d)", f)
	}
	for _, f := range []int64{4, 6, 7, 9, 20, 6764, 6766} {
		assert.False(t, numprops.IsFibonacci(f), "IsFibonacci(%d)", f)
	}
}

// TestPronicIndex verifies k·(k+1) detection including zero.
func TestPronicIndex(t *testing.T) {
	cases := []struct {
		n, k int64
		ok   bool
	}{
		{0, 0, true},
		{2, 1, true},
		{6, 2, true},
		{12, 3, true},
		{56, 7, true},
		{1, 0, false},
		{5, 0, false},
		{57, 0, false},
	}
	for _, tc := range cases {
		k, ok := numprops.PronicIndex(tc.n)
		assert.Equal(t, tc.ok, ok, "PronicIndex(%d) ok", tc.n)
		assert.Equal(t, tc.k, k, "PronicIndex(%d) k", tc.n)
	}
}

// TestPolygonalInfo verifies family membership with smallest-k priority.
func TestPolygonalInfo(t *testing.T) {
	cases := []struct {
		n     int64
		sides int
		index int
		ok    bool
	}{
		{1, 3, 1, true},   // 1 opens every family; triangular reported first
		{3, 3, 2, true},   // triangular: 1, 3, 6, 10
		{6, 3, 3, true},
		{10, 3, 4, true},
		{4, 4, 2, true},   // square: 1, 4, 9
		{9, 4, 3, true},   // 9 is square, not triangular: smallest-k priority
		{5, 5, 2, true},   // pentagonal: 1, 5, 12
		{12, 5, 3, true},
		{7, 7, 2, true},   // heptagonal
		{2, 0, 0, false},  // 2 is in no k-gonal family for k=3..12
		{0, 0, 0, false},
	}
	for _, tc := range cases {
		p, ok := numprops.PolygonalInfo(tc.n)
		assert.Equal(t, tc.ok, ok, "PolygonalInfo(%d) ok", tc.n)
		if tc.ok {
			assert.Equal(t, numprops.Polygonal{Sides: tc.sides, Index: tc.index}, p, "PolygonalInfo(%d)", tc.n)
		}
	}
}

// TestCenteredPolygonalInfo verifies the centered families.
func TestCenteredPolygonalInfo(t *testing.T) {
	cases := []struct {
		n     int64
		sides int
		index int
		ok    bool
	}{
		{1, 3, 0, true},
		{4, 3, 1, true},   // centered triangular: 1, 4, 10, 19
		{10, 3, 2, true},
		{19, 3, 3, true},
		{5, 4, 1, true},   // centered square: 1, 5, 13, 25
		{13, 4, 2, true},
		{6, 5, 1, true},   // centered pentagonal: 1, 6, 16
		{16, 5, 2, true},
		{2, 0, 0, false},
		{0, 0, 0, false},
	}
	for _, tc := range cases {
		p, ok := numprops.CenteredPolygonalInfo(tc.n)
		assert.Equal(t, tc.ok, ok, "CenteredPolygonalInfo(%d) ok", tc.n)
		if tc.ok {
			assert.Equal(t, numprops.Polygonal{Sides: tc.sides, Index: tc.index}, p, "CenteredPolygonalInfo(%d)", tc.n)
		}
	}
}

// TestThreeDimensionalFigurates pins the first members of each family.
func TestThreeDimensionalFigurates(t *testing.T) {
	for _, n := range []int64{1, 4, 10, 20, 35, 56} {
		assert.True(t, numprops.IsTetrahedral(n), "IsTetrahedral(%d)", n)
	}
	assert.False(t, numprops.IsTetrahedral(0))
	assert.False(t, numprops.IsTetrahedral(5))
	assert.False(t, numprops.IsTetrahedral(21))

	for _, n := range []int64{1, 5, 14, 30, 55, 91} {
		assert.True(t, numprops.IsSquarePyramidal(n), "IsSquarePyramidal(%d)", n)
	}
	assert.False(t, numprops.IsSquarePyramidal(0))
	assert.False(t, numprops.IsSquarePyramidal(15))

	for _, n := range []int64{1, 6, 19, 44, 85, 146} {
		assert.True(t, numprops.IsOctahedral(n), "IsOctahedral(%d)", n)
	}
	assert.False(t, numprops.IsOctahedral(0))
	assert.False(t, numprops.IsOctahedral(7))
}

//----------------------------------------------------------------------------//
// Profile Tests
//----------------------------------------------------------------------------//

// TestProfile_KeyStability asserts every documented key is present and
// spot-checks values for a representative input.
func TestProfile_KeyStability(t *testing.T) {
	keys := []string{
		"is_prime", "prime_ordinal", "prime_factorization", "factors",
		"abundance", "digit_sum", "digital_root", "is_fibonacci",
		"is_happy", "happy_iterations", "is_square", "is_cube",
		"is_pronic", "pronic_index", "polygonal", "is_polygonal",
		"centered_polygonal", "is_centered_polygonal",
		"is_tetrahedral", "is_square_pyramidal", "is_octahedral",
	}
	p := numprops.Profile(28)
	for _, k := range keys {
		_, ok := p[k]
		assert.True(t, ok, "Profile missing key %q", k)
	}

	assert.Equal(t, false, p["is_prime"])
	assert.Equal(t, numprops.Perfect, p["abundance"])
	assert.Equal(t, int64(10), p["digit_sum"])
	assert.Equal(t, int64(1), p["digital_root"])
	assert.Equal(t, true, p["is_happy"], "28 is a happy number")
	assert.Equal(t, true, p["is_polygonal"], "28 is triangular")
}
