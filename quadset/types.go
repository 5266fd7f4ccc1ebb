// Package quadset defines member roles, the Result type, and sentinel
// errors for the quadset subpackage of github.com/TheDaniel166/tq.
package quadset

import (
	"errors"

	"github.com/TheDaniel166/tq/pattern"
)

// Sentinel errors for Quadset analysis.
var (
	// ErrNegativeInput indicates a seed below zero; the Quadset is
	// defined over non-negative integers.
	ErrNegativeInput = errors.New("quadset: seed must be non-negative")
)

// Role names one of the seven Quadset members.
type Role int

const (
	Original Role = iota
	Conrune
	Reversal
	ConruneReversal
	UpperDifferential
	LowerDifferential
	Transgram

	// roleCount is the total member count (the "septad").
	roleCount
)

// CoreCount is the number of core members (the Quadset proper).
const CoreCount = 4

// String returns the member's display name.
func (r Role) String() string {
	switch r {
	case Original:
		return "Original"
	case Conrune:
		return "Conrune"
	case Reversal:
		return "Reversal"
	case ConruneReversal:
		return "Conrune-Reversal"
	case UpperDifferential:
		return "Upper Differential"
	case LowerDifferential:
		return "Lower Differential"
	case Transgram:
		return "Transgram"
	default:
		return "Unknown"
	}
}

// Member is one fully analyzed Quadset entry. Constructed once by
// Analyze and immutable thereafter; owned by its Result.
type Member struct {
	Role       Role
	Value      int64
	Digits     string
	Properties map[string]any
}

// Result aggregates the seven members of one analysis plus the
// cross-member pattern findings. Totals are methods, never fields:
// they are recomputed from the members on each call so they cannot
// drift from the data they summarize.
type Result struct {
	Seed     int64
	members  [roleCount]Member
	Findings pattern.Findings
}

// Member returns the entry for the given role.
func (r *Result) Member(role Role) Member {
	return r.members[role]
}

// Core returns the four core members in canonical order.
func (r *Result) Core() [CoreCount]Member {
	var out [CoreCount]Member
	copy(out[:], r.members[:CoreCount])

	return out
}

// Members returns all seven members in canonical order.
func (r *Result) Members() []Member {
	out := make([]Member, roleCount)
	copy(out, r.members[:])

	return out
}

// QuadsetSum is the sum of the four core member values.
func (r *Result) QuadsetSum() int64 {
	var sum int64
	for _, m := range r.members[:CoreCount] {
		sum += m.Value
	}

	return sum
}

// SeptadTotal is the sum of all seven member values.
func (r *Result) SeptadTotal() int64 {
	var sum int64
	for _, m := range r.members {
		sum += m.Value
	}

	return sum
}

// Summary renders the pattern findings as the textual report.
func (r *Result) Summary() string {
	return r.Findings.Summary()
}
