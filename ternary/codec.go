package ternary

import (
	"math"
	"strings"
)

// Encode converts n to its unbalanced ternary digit string.
// For n == 0 it returns "0". For n < 0 it encodes |n|; the codec is
// unsigned-digit based and sign handling stays with the caller (use
// EncodeBalanced for a representation that carries sign natively).
// Returns ErrUnsupportedRange only for math.MinInt64, whose magnitude
// does not fit in int64.
// Complexity: O(log₃ n).
func Encode(n int64) (string, error) {
	if n == math.MinInt64 {
		return "", ErrUnsupportedRange
	}
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return "0", nil
	}

	// 41 digits cover the full int64 range (3^40 > 2^63).
	var buf [41]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(DigitZero + n%Base)
		n /= Base
	}

	return string(buf[i:]), nil
}

// Decode converts an unbalanced ternary digit string to its integer
// value. The empty string and "0" both map to 0; leading zeros are
// accepted.
// Returns ErrInvalidDigit for any rune outside {0,1,2} and
// ErrUnsupportedRange if the value overflows int64.
// Complexity: O(len(digits)).
func Decode(digits string) (int64, error) {
	var v int64
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < DigitZero || c > DigitTwo {
			return 0, ErrInvalidDigit
		}
		d := int64(c - DigitZero)
		if v > (math.MaxInt64-d)/Base {
			return 0, ErrUnsupportedRange
		}
		v = v*Base + d
	}

	return v, nil
}

// Conrune applies the digit-wise substitution 0→0, 1→2, 2→1.
// Length-preserving and involutive: Conrune(Conrune(d)) == d.
// Returns ErrInvalidDigit for any rune outside {0,1,2}.
// Complexity: O(len(digits)).
func Conrune(digits string) (string, error) {
	out := make([]byte, len(digits))
	for i := 0; i < len(digits); i++ {
		switch digits[i] {
		case DigitZero:
			out[i] = DigitZero
		case DigitOne:
			out[i] = DigitTwo
		case DigitTwo:
			out[i] = DigitOne
		default:
			return "", ErrInvalidDigit
		}
	}

	return string(out), nil
}

// Reverse returns digits in reverse character order.
// Digits are single-byte ASCII, so byte reversal is exact.
// Length-preserving and involutive. Complexity: O(len(digits)).
func Reverse(digits string) string {
	out := make([]byte, len(digits))
	for i := 0; i < len(digits); i++ {
		out[i] = digits[len(digits)-1-i]
	}

	return string(out)
}

// PadLeft left-pads digits with zeros to width. Strings already at or
// beyond width are returned unchanged. Complexity: O(width).
func PadLeft(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}

	return strings.Repeat("0", width-len(digits)) + digits
}
