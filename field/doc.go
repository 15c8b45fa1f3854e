// Package field provides the exact-arithmetic capability consumed by every
// surface descriptor: field elements supporting +, −, ×, ÷, comparisons and
// exact equality, with no floating point anywhere.
//
// What:
//
//   - Element: one value of an exact field (add/sub/mul/div/neg, sign,
//     comparison, exact equality).
//   - Field: the capability to embed integers and rationals and to produce
//     0 and 1.
//   - Rationals: ℚ, backed by math/big rationals.
//   - NumberField: a real algebraic number field ℚ[x]/(m(x)) for a monic
//     irreducible m, with the generator pinned to a chosen real root by a
//     rational bracket; signs are decided exactly by interval refinement.
//
// Why:
//
//   - Flat-geometry constructions (octagons, the E-infinity weights) live
//     in ℚ(√2) or a cubic field, not in ℚ — and certainly not in float64.
//   - Gluing combinatorics branch on exact sign tests; a rounding error
//     would silently break the involution invariant.
//
// Complexity:
//
//   - Rationals: each operation is one big.Rat operation.
//   - NumberField: add/sub O(d), mul O(d²), div O(d²) (extended Euclid),
//     sign O(d·k) where k is the number of bracket bisections needed to
//     separate the value from zero (finite for nonzero elements because
//     m is irreducible).
//
// Errors:
//
//   - ErrDivisionByZero: Div with a zero divisor.
//   - ErrZeroDenominator: FromRat with denominator zero.
//   - ErrBadModulus: NumberField modulus not monic or of degree < 2.
//   - ErrNoRootInBracket: the supplied bracket does not straddle a root.
//
// Mixing elements of two different fields in one operation is a programmer
// error and panics, the same way big.Rat panics on a zero denominator.
package field
