package numprops

// DigitSum returns the sum of n's decimal digits. DigitSum(0) == 0.
// Complexity: O(log₁₀ n).
func DigitSum(n int64) int64 {
	if n < 0 {
		n = -n
	}
	var sum int64
	for n > 0 {
		sum += n % 10
		n /= 10
	}

	return sum
}

// DigitalRoot returns the iterated decimal digit sum of n reduced to a
// single digit, via the closed form n mod 9 with 9 substituted for 0
// when n > 0. DigitalRoot(0) == 0.
// Complexity: O(1).
func DigitalRoot(n int64) int64 {
	if n == 0 {
		return 0
	}
	if n < 0 {
		n = -n
	}
	if r := n % 9; r != 0 {
		return r
	}

	return 9
}

// sumSquaredDigits is one happy-chain step.
func sumSquaredDigits(n int64) int64 {
	var sum int64
	for n > 0 {
		d := n % 10
		sum += d * d
		n /= 10
	}

	return sum
}

// HappyChain iterates the sum-of-squared-decimal-digits map from n
// until it reaches 1 (happy) or revisits a value (the fixed unhappy
// cycle). The returned chain starts at n and includes the terminal
// value; Iterations counts the steps taken. DefaultHappyCap bounds the
// loop as a hard termination guarantee.
//
// HappyChain(0) reports unhappy with chain [0] (0 maps to itself).
// HappyChain(1) reports happy with chain [1] and zero iterations.
// Complexity: O(cap · log₁₀ n) worst case, a handful of steps in practice.
func HappyChain(n int64) HappyResult {
	chain := []int64{n}
	seen := map[int64]bool{n: true}
	cur := n
	for i := 0; i < DefaultHappyCap; i++ {
		if cur == 1 {
			return HappyResult{Chain: chain, Happy: true, Iterations: i}
		}
		cur = sumSquaredDigits(cur)
		if seen[cur] {
			return HappyResult{Chain: chain, Happy: false, Iterations: i + 1}
		}
		seen[cur] = true
		chain = append(chain, cur)
	}

	return HappyResult{Chain: chain, Happy: false, Iterations: DefaultHappyCap}
}

// IsHappy reports whether iterating the sum of squared decimal digits
// from n reaches 1.
func IsHappy(n int64) bool {
	return HappyChain(n).Happy
}
