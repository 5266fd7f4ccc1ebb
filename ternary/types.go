// Package ternary defines core types and sentinel errors
// for the ternary subpackage of github.com/TheDaniel166/tq.
package ternary

import (
	"errors"
)

// Sentinel errors for codec operations.
var (
	// ErrInvalidDigit indicates a digit string contains a rune outside {0,1,2}
	// (or outside {T,0,1} for balanced strings).
	ErrInvalidDigit = errors.New("ternary: digit string contains an invalid digit")
	// ErrUnsupportedRange indicates a magnitude the codec cannot represent
	// within int64.
	ErrUnsupportedRange = errors.New("ternary: value outside supported integer range")
)

// Digit characters of the unbalanced codec.
const (
	DigitZero = '0'
	DigitOne  = '1'
	DigitTwo  = '2'
	// DigitNeg is the balanced-ternary negative unit (−1).
	// The symbol is deliberately distinct from 0/1/2 so balanced and
	// unbalanced strings can never be confused for one another.
	DigitNeg = 'T'
)

// Base is the radix of every codec operation.
const Base = 3

// Value pairs an integer with its canonical unbalanced ternary digits.
// Invariant: Decode(Digits) == N exactly, with no leading zero padding.
type Value struct {
	N      int64
	Digits string
}

// NewValue encodes n and returns the paired Value.
// Returns ErrUnsupportedRange for n == math.MinInt64.
func NewValue(n int64) (Value, error) {
	d, err := Encode(n)
	if err != nil {
		return Value{}, err
	}

	return Value{N: n, Digits: d}, nil
}

// ParseValue decodes digits and returns the paired Value with the
// canonical (unpadded) digit form.
// Returns ErrInvalidDigit or ErrUnsupportedRange from Decode.
func ParseValue(digits string) (Value, error) {
	n, err := Decode(digits)
	if err != nil {
		return Value{}, err
	}
	// Re-encode so Digits is canonical even if the input was padded.
	d, err := Encode(n)
	if err != nil {
		return Value{}, err
	}

	return Value{N: n, Digits: d}, nil
}
