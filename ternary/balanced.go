package ternary

import "math"

// EncodeBalanced converts n to balanced ternary using the digit set
// {T, 0, 1}, where 'T' denotes the negative unit (−1). Negative
// integers encode natively, with no separate sign character:
//
//	EncodeBalanced(5)  = "1TT"  (9 − 3 − 1)
//	EncodeBalanced(-5) = "T11"  (−9 + 3 + 1)
//
// Returns ErrUnsupportedRange for math.MinInt64.
// Complexity: O(log₃ |n|).
func EncodeBalanced(n int64) (string, error) {
	if n == math.MinInt64 {
		return "", ErrUnsupportedRange
	}
	if n == 0 {
		return "0", nil
	}

	var buf [42]byte
	i := len(buf)
	for n != 0 {
		i--
		rem := n % Base
		n /= Base
		switch rem {
		case 0:
			buf[i] = DigitZero
		case 1, -2:
			buf[i] = DigitOne
			if rem == -2 {
				n--
			}
		case 2, -1:
			buf[i] = DigitNeg
			if rem == 2 {
				n++
			}
		}
	}

	return string(buf[i:]), nil
}

// DecodeBalanced converts a balanced ternary digit string (digits in
// {T, 0, 1}) to its integer value. The empty string and "0" map to 0.
// Returns ErrInvalidDigit for any other rune and ErrUnsupportedRange
// on int64 overflow. Complexity: O(len(digits)).
func DecodeBalanced(digits string) (int64, error) {
	var v int64
	for i := 0; i < len(digits); i++ {
		var d int64
		switch digits[i] {
		case DigitZero:
			d = 0
		case DigitOne:
			d = 1
		case DigitNeg:
			d = -1
		default:
			return 0, ErrInvalidDigit
		}
		if v > (math.MaxInt64-1)/Base || v < (math.MinInt64+1)/Base {
			return 0, ErrUnsupportedRange
		}
		v = v*Base + d
	}

	return v, nil
}
