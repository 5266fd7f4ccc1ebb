package numprops

import "math"

// IsSquare reports whether n is a perfect square. IsSquare(0) == true.
// Complexity: O(1).
func IsSquare(n int64) bool {
	if n < 0 {
		return false
	}
	r := int64(math.Sqrt(float64(n)))
	// Guard against float rounding at the boundary.
	for _, s := range []int64{r - 1, r, r + 1} {
		if s >= 0 && s*s == n {
			return true
		}
	}

	return false
}

// IsCube reports whether n is a perfect cube. IsCube(0) == true.
// Complexity: O(1).
func IsCube(n int64) bool {
	if n < 0 {
		return false
	}
	r := int64(math.Cbrt(float64(n)))
	for _, s := range []int64{r - 1, r, r + 1} {
		if s >= 0 && s*s*s == n {
			return true
		}
	}

	return false
}

// IsFibonacci reports whether n appears in the Fibonacci sequence.
// IsFibonacci(0) and IsFibonacci(1) are both true.
// Iterative to stay overflow-safe across the full int64 range.
// Complexity: O(log_φ n).
func IsFibonacci(n int64) bool {
	if n < 0 {
		return false
	}
	a, b := int64(0), int64(1)
	for a < n {
		a, b = b, a+b
		if a < 0 { // int64 overflow: n exceeds the largest int64 Fibonacci
			return false
		}
	}

	return a == n
}

// PronicIndex returns k such that n == k·(k+1), with ok reporting
// whether such k exists. PronicIndex(0) == (0, true).
// Complexity: O(1).
func PronicIndex(n int64) (k int64, ok bool) {
	if n < 0 {
		return 0, false
	}
	k = int64(math.Sqrt(float64(n)))
	for _, c := range []int64{k - 1, k, k + 1} {
		if c >= 0 && c*(c+1) == n {
			return c, true
		}
	}

	return 0, false
}

// PolygonalInfo reports whether n is a k-gonal number for some
// k = 3..12, returning the smallest such k and n's 1-based index in
// that family. The k-gonal numbers follow P(k,i) = ((k−2)i² − (k−4)i)/2,
// so every family starts 1, k, 3k−3, …. PolygonalInfo(0) reports no
// membership; PolygonalInfo(1) returns (3, 1) since 1 opens every family.
// Complexity: O(√n) per family.
func PolygonalInfo(n int64) (Polygonal, bool) {
	if n < 1 {
		return Polygonal{}, false
	}
	for k := 3; k <= 12; k++ {
		for i := int64(1); ; i++ {
			p := (int64(k-2)*i*i - int64(k-4)*i) / 2
			if p == n {
				return Polygonal{Sides: k, Index: int(i)}, true
			}
			if p > n || p < 0 { // p < 0 only on int64 overflow
				break
			}
		}
	}

	return Polygonal{}, false
}

// CenteredPolygonalInfo reports whether n is a centered k-gonal number
// for some k = 3..12, returning the smallest such k and n's 0-based
// index. The centered k-gonal numbers follow C(k,i) = k·i·(i+1)/2 + 1,
// so every family starts 1, k+1, 3k+1, …. CenteredPolygonalInfo(1)
// returns (3, 0); values below 1 report no membership.
// Complexity: O(√n) per family.
func CenteredPolygonalInfo(n int64) (Polygonal, bool) {
	if n < 1 {
		return Polygonal{}, false
	}
	if n == 1 {
		return Polygonal{Sides: 3, Index: 0}, true
	}
	for k := 3; k <= 12; k++ {
		for i := int64(1); ; i++ {
			c := int64(k)*i*(i+1)/2 + 1
			if c == n {
				return Polygonal{Sides: k, Index: int(i)}, true
			}
			if c > n || c < 0 { // c < 0 only on int64 overflow
				break
			}
		}
	}

	return Polygonal{}, false
}

// IsTetrahedral reports whether n == i(i+1)(i+2)/6 for some i ≥ 1.
// Complexity: O(∛n).
func IsTetrahedral(n int64) bool {
	if n < 1 {
		return false
	}
	for i := int64(1); ; i++ {
		t := i * (i + 1) * (i + 2) / 6
		if t == n {
			return true
		}
		if t > n || t < 0 { // t < 0 only on int64 overflow
			return false
		}
	}
}

// IsSquarePyramidal reports whether n == i(i+1)(2i+1)/6 for some i ≥ 1.
// Complexity: O(∛n).
func IsSquarePyramidal(n int64) bool {
	if n < 1 {
		return false
	}
	for i := int64(1); ; i++ {
		t := i * (i + 1) * (2*i + 1) / 6
		if t == n {
			return true
		}
		if t > n || t < 0 { // t < 0 only on int64 overflow
			return false
		}
	}
}

// IsOctahedral reports whether n == i(2i²+1)/3 for some i ≥ 1.
// Complexity: O(∛n).
func IsOctahedral(n int64) bool {
	if n < 1 {
		return false
	}
	for i := int64(1); ; i++ {
		t := i * (2*i*i + 1) / 3
		if t == n {
			return true
		}
		if t > n || t < 0 { // t < 0 only on int64 overflow
			return false
		}
	}
}
