// Package numprops answers number-theoretic questions about a single
// non-negative integer: primality, factor structure, digit behavior,
// and membership in classical figurate families.
//
// 🚀 What is numprops?
//
//	A flat collection of pure query functions the Quadset engine runs
//	over every member value:
//	  • IsPrime, PrimeFactorization, Divisors, PrimeOrdinal
//	  • AbundanceOf — Perfect / Abundant / Deficient
//	  • DigitSum, DigitalRoot, IsHappy + HappyChain
//	  • IsFibonacci, IsSquare, IsCube, PronicIndex
//	  • PolygonalInfo / CenteredPolygonalInfo for k = 3..12
//	  • 3D figurate: tetrahedral, square-pyramidal, octahedral
//
// ✨ Conventions:
//
//   - Every function is total over non-negative int64: 0 and 1 get
//     documented answers per function instead of errors.
//   - PrimeOrdinal is deliberately bounded: above DefaultOrdinalCeiling
//     it returns OrdinalAboveCeiling (−1) rather than sieving without
//     bound. A documented precision/performance trade-off.
//   - HappyChain caps iteration at DefaultHappyCap; unhappy numbers
//     provably cycle, so the cap only guards against implementation
//     mistakes, it never truncates a real chain.
//
// All functions are side-effect free and safe to call concurrently.
package numprops
