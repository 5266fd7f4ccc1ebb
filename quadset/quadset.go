package quadset

import (
	"fmt"

	"github.com/TheDaniel166/tq/numprops"
	"github.com/TheDaniel166/tq/pattern"
	"github.com/TheDaniel166/tq/ternary"
)

// Analyze builds the full seven-member Quadset of seed n, attaches the
// numprops property battery to every member, and runs cross-member
// pattern analysis over the four core members.
//
// Negative seeds return ErrNegativeInput. Any codec failure aborts the
// whole analysis; a Result is returned only when complete.
//
// Complexity: dominated by the per-member property battery, O(√max)
// per member over seven members.
func Analyze(n int64) (*Result, error) {
	if n < 0 {
		return nil, ErrNegativeInput
	}

	origDigits, err := ternary.Encode(n)
	if err != nil {
		return nil, fmt.Errorf("quadset: encoding seed: %w", err)
	}

	conDigits, err := ternary.Conrune(origDigits)
	if err != nil {
		return nil, fmt.Errorf("quadset: conrune of seed digits: %w", err)
	}
	conValue, err := ternary.Decode(conDigits)
	if err != nil {
		return nil, fmt.Errorf("quadset: decoding conrune: %w", err)
	}

	revDigits := ternary.Reverse(origDigits)
	revValue, err := ternary.Decode(revDigits)
	if err != nil {
		return nil, fmt.Errorf("quadset: decoding reversal: %w", err)
	}

	conRevDigits, err := ternary.Conrune(revDigits)
	if err != nil {
		return nil, fmt.Errorf("quadset: conrune of reversal: %w", err)
	}
	conRevValue, err := ternary.Decode(conRevDigits)
	if err != nil {
		return nil, fmt.Errorf("quadset: decoding conrune-reversal: %w", err)
	}

	upper, err := differential(n, conValue)
	if err != nil {
		return nil, fmt.Errorf("quadset: upper differential: %w", err)
	}
	lower, err := differential(revValue, conRevValue)
	if err != nil {
		return nil, fmt.Errorf("quadset: lower differential: %w", err)
	}

	transDigits, err := ternary.Transition(upper.Digits, lower.Digits)
	if err != nil {
		return nil, fmt.Errorf("quadset: transgram transition: %w", err)
	}
	transValue, err := ternary.Decode(transDigits)
	if err != nil {
		return nil, fmt.Errorf("quadset: decoding transgram: %w", err)
	}

	res := &Result{Seed: n}
	res.members = [roleCount]Member{
		newMember(Original, n, origDigits),
		newMember(Conrune, conValue, conDigits),
		newMember(Reversal, revValue, revDigits),
		newMember(ConruneReversal, conRevValue, conRevDigits),
		newMember(UpperDifferential, upper.N, upper.Digits),
		newMember(LowerDifferential, lower.N, lower.Digits),
		newMember(Transgram, transValue, transDigits),
	}

	var core [pattern.MemberCount]pattern.Member
	for i, m := range res.members[:CoreCount] {
		core[i] = pattern.Member{Value: m.Value, Digits: m.Digits}
	}
	res.Findings = pattern.Analyze(core)

	return res, nil
}

// differential builds the |a−b| member value with its own ternary form.
func differential(a, b int64) (ternary.Value, error) {
	d := a - b
	if d < 0 {
		d = -d
	}

	return ternary.NewValue(d)
}

// newMember runs the property battery and assembles one entry.
func newMember(role Role, value int64, digits string) Member {
	return Member{
		Role:       role,
		Value:      value,
		Digits:     digits,
		Properties: numprops.Profile(value),
	}
}
