// Package pattern runs cross-member analysis over the four core values
// of a Quadset: shared arithmetic structure (GCD/LCM), parity and
// primality counts, adjacent-pair congruences, progression detection
// across every ordering, palindromes, and ternary digit frequency.
//
// 🚀 What does pattern find?
//
//	Given the four (decimal, ternary) pairs in canonical order
//	(Original, Conrune, Reversal, Conrune-Reversal):
//	  • GCD and LCM of the four decimal values
//	  • even/odd and prime counts
//	  • congruence mod 3 and mod 5 of each adjacent pair
//	  • arithmetic / geometric progression in at least one ordering
//	    (all 24 permutations enumerated — "in some ordering" is part
//	    of the definition, input order carries no significance there)
//	  • decimal and ternary palindrome flags per member
//	  • 0/1/2 digit counts across the four ternary strings, plus a
//	    binary-like flag when no '2' appears anywhere
//
// Every check is pure and order-independent except the progression
// checks, which by definition quantify over orderings.
//
// Complexity: O(24·4) for progressions, O(√max) for the prime count,
// O(total digits) for everything else.
package pattern
