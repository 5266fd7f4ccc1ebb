package pattern

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/TheDaniel166/tq/numprops"
)

// Analyze computes the full Findings set over the four core members,
// given in canonical order (Original, Conrune, Reversal,
// Conrune-Reversal). Analyze never fails: every check is total over
// its inputs.
//
// Complexity: O(√max) for the prime count, O(24·4) for progressions,
// O(total digits) otherwise.
func Analyze(members [MemberCount]Member) Findings {
	var f Findings

	values := make([]int64, MemberCount)
	for i, m := range members {
		values[i] = m.Value
	}

	f.GCD = gcdAll(values)
	f.LCM = lcmAll(values)

	for i, v := range values {
		if v%2 == 0 {
			f.EvenCount++
		} else {
			f.OddCount++
		}
		if numprops.IsPrime(v) {
			f.PrimeCount++
		}
		f.DecimalPalindrome[i] = isPalindrome(strconv.FormatInt(v, 10))
		f.TernaryPalindrome[i] = isPalindrome(members[i].Digits)
	}

	for i := 0; i < MemberCount-1; i++ {
		f.CongruentMod3[i] = values[i]%3 == values[i+1]%3
		f.CongruentMod5[i] = values[i]%5 == values[i+1]%5
	}

	f.Arithmetic, f.Geometric = progressions(values)

	hasTwo := false
	for _, m := range members {
		for i := 0; i < len(m.Digits); i++ {
			switch m.Digits[i] {
			case '0':
				f.DigitCounts[0]++
			case '1':
				f.DigitCounts[1]++
			case '2':
				f.DigitCounts[2]++
				hasTwo = true
			}
		}
	}
	f.BinaryLike = !hasTwo

	return f
}

// progressions reports whether any of the 24 orderings of the four
// values forms an arithmetic or geometric progression. Geometric is
// checked by cross-multiplication on non-zero terms to avoid division.
func progressions(values []int64) (arithmetic, geometric bool) {
	for _, perm := range combin.Permutations(MemberCount, MemberCount) {
		v := [MemberCount]int64{}
		for i, p := range perm {
			v[i] = values[p]
		}
		if v[1]-v[0] == v[2]-v[1] && v[2]-v[1] == v[3]-v[2] {
			arithmetic = true
		}
		if v[0] != 0 && v[1] != 0 && v[2] != 0 &&
			v[1]*v[1] == v[0]*v[2] && v[2]*v[2] == v[1]*v[3] {
			geometric = true
		}
		if arithmetic && geometric {
			return
		}
	}

	return
}

// isPalindrome reports whether s reads the same in both directions.
func isPalindrome(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}

	return true
}

// gcd is the non-negative Euclidean greatest common divisor.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func gcdAll(values []int64) int64 {
	var g int64
	for _, v := range values {
		g = gcd(g, v)
	}

	return g
}

func lcmAll(values []int64) int64 {
	l := int64(1)
	for _, v := range values {
		if v == 0 {
			return 0
		}
		l = l / gcd(l, v) * v
	}

	return l
}

// Summary renders the findings as the human-readable report attached
// to a QuadsetResult. Deterministic: same findings, same text.
func (f Findings) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "gcd %d, lcm %d", f.GCD, f.LCM)
	fmt.Fprintf(&b, "; %d even / %d odd", f.EvenCount, f.OddCount)
	fmt.Fprintf(&b, "; %d prime", f.PrimeCount)

	if f.Arithmetic {
		b.WriteString("; arithmetic progression in some ordering")
	}
	if f.Geometric {
		b.WriteString("; geometric progression in some ordering")
	}

	if n := countTrue(f.CongruentMod3[:]); n > 0 {
		fmt.Fprintf(&b, "; %d adjacent pair(s) congruent mod 3", n)
	}
	if n := countTrue(f.CongruentMod5[:]); n > 0 {
		fmt.Fprintf(&b, "; %d adjacent pair(s) congruent mod 5", n)
	}
	if n := countTrue(f.DecimalPalindrome[:]); n > 0 {
		fmt.Fprintf(&b, "; %d decimal palindrome(s)", n)
	}
	if n := countTrue(f.TernaryPalindrome[:]); n > 0 {
		fmt.Fprintf(&b, "; %d ternary palindrome(s)", n)
	}

	fmt.Fprintf(&b, "; digit counts 0:%d 1:%d 2:%d",
		f.DigitCounts[0], f.DigitCounts[1], f.DigitCounts[2])
	if f.BinaryLike {
		b.WriteString("; binary-like (digits 0/1 only)")
	}

	return b.String()
}

func countTrue(flags []bool) int {
	n := 0
	for _, ok := range flags {
		if ok {
			n++
		}
	}

	return n
}
