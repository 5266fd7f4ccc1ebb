package numprops

import "sort"

// IsPrime reports whether n is prime by trial division up to √n.
// n ≤ 1 is not prime by convention.
// Complexity: O(√n).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := int64(3); d <= n/d; d += 2 { // d <= n/d avoids d*d overflow
		if n%d == 0 {
			return false
		}
	}

	return true
}

// PrimeFactorization returns the ordered prime factorization of n as
// (prime, exponent) pairs, smallest prime first. For n ≤ 1 the result
// is empty. Complexity: O(√n).
func PrimeFactorization(n int64) []Factor {
	if n < 2 {
		return nil
	}
	var out []Factor
	for _, p := range []int64{2, 3} {
		if exp := divideOut(&n, p); exp > 0 {
			out = append(out, Factor{Prime: p, Exp: exp})
		}
	}
	// Remaining factors are of the form 6k±1.
	for d := int64(5); d <= n/d; d += 6 {
		for _, p := range []int64{d, d + 2} {
			if exp := divideOut(&n, p); exp > 0 {
				out = append(out, Factor{Prime: p, Exp: exp})
			}
		}
	}
	if n > 1 {
		out = append(out, Factor{Prime: n, Exp: 1})
	}

	return out
}

// divideOut strips every factor p from *n and returns the exponent.
func divideOut(n *int64, p int64) int {
	exp := 0
	for *n%p == 0 {
		*n /= p
		exp++
	}

	return exp
}

// Divisors returns the complete sorted divisor list of n, including 1
// and n itself. For n == 0 it returns nil (every integer divides 0;
// the list is not finite). Divisors(1) == [1].
// Complexity: O(√n) plus the sort of d(n) divisors.
func Divisors(n int64) []int64 {
	if n == 0 {
		return nil
	}
	var out []int64
	for d := int64(1); d <= n/d; d++ {
		if n%d != 0 {
			continue
		}
		out = append(out, d)
		if q := n / d; q != d {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// AbundanceOf classifies n as Perfect, Abundant or Deficient by the
// sum of its proper divisors. n ≤ 1 is Deficient by convention.
// Complexity: O(√n).
func AbundanceOf(n int64) Abundance {
	if n < 2 {
		return Deficient
	}
	var sum int64
	for _, d := range Divisors(n) {
		if d != n {
			sum += d
		}
	}
	switch {
	case sum == n:
		return Perfect
	case sum > n:
		return Abundant
	default:
		return Deficient
	}
}

// PrimeOrdinal returns the 1-based index of n among the primes
// (PrimeOrdinal(2)=1, PrimeOrdinal(3)=2, …). Non-primes return 0.
// Primes above DefaultOrdinalCeiling return OrdinalAboveCeiling
// rather than forcing an unbounded sieve.
// Complexity: O(c log log c) with c = DefaultOrdinalCeiling.
func PrimeOrdinal(n int64) int {
	if !IsPrime(n) {
		return 0
	}
	if n > DefaultOrdinalCeiling {
		return OrdinalAboveCeiling
	}

	// Sieve of Eratosthenes up to n, counting as we go.
	composite := make([]bool, n+1)
	ordinal := 0
	for p := int64(2); p <= n; p++ {
		if composite[p] {
			continue
		}
		ordinal++
		for m := p * p; m <= n; m += p {
			composite[m] = true
		}
	}

	return ordinal
}
