package numprops

// Profile runs the full property battery over n and assembles the
// results into a stable-keyed map, the shape Quadset members carry.
//
// Keys (always present):
//
//	"is_prime"            bool
//	"prime_ordinal"       int    (0 non-prime, −1 above ceiling)
//	"prime_factorization" []Factor
//	"factors"             []int64
//	"abundance"           Abundance
//	"digit_sum"           int64
//	"digital_root"        int64
//	"is_fibonacci"        bool
//	"is_happy"            bool
//	"happy_iterations"    int
//	"is_square"           bool
//	"is_cube"             bool
//	"is_pronic"           bool
//	"pronic_index"        int64  (only meaningful when is_pronic)
//	"polygonal"           Polygonal (zero value when absent)
//	"is_polygonal"        bool
//	"centered_polygonal"  Polygonal (zero value when absent)
//	"is_centered_polygonal" bool
//	"is_tetrahedral"      bool
//	"is_square_pyramidal" bool
//	"is_octahedral"       bool
//
// Complexity: dominated by PrimeOrdinal's sieve for primes below the
// ceiling, otherwise O(√n).
func Profile(n int64) map[string]any {
	happy := HappyChain(n)
	poly, isPoly := PolygonalInfo(n)
	cpoly, isCPoly := CenteredPolygonalInfo(n)
	pronic, isPronic := PronicIndex(n)

	return map[string]any{
		"is_prime":              IsPrime(n),
		"prime_ordinal":         PrimeOrdinal(n),
		"prime_factorization":   PrimeFactorization(n),
		"factors":               Divisors(n),
		"abundance":             AbundanceOf(n),
		"digit_sum":             DigitSum(n),
		"digital_root":          DigitalRoot(n),
		"is_fibonacci":          IsFibonacci(n),
		"is_happy":              happy.Happy,
		"happy_iterations":      happy.Iterations,
		"is_square":             IsSquare(n),
		"is_cube":               IsCube(n),
		"is_pronic":             isPronic,
		"pronic_index":          pronic,
		"polygonal":             poly,
		"is_polygonal":          isPoly,
		"centered_polygonal":    cpoly,
		"is_centered_polygonal": isCPoly,
		"is_tetrahedral":        IsTetrahedral(n),
		"is_square_pyramidal":   IsSquarePyramidal(n),
		"is_octahedral":         IsOctahedral(n),
	}
}
