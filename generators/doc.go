// Package generators builds the stock example surfaces: small finite
// similarity and translation surfaces from explicit gluing tables, plus
// origamis defined by a permutation pair.
//
// What:
//
//   - TrianglePair: the two-triangle similarity surface example.
//   - RightAngleTriangle: a right triangle doubled across its hypotenuse.
//   - RegularOctagon: the genus-2 surface gluing opposite octagon sides.
//   - OctagonAndSquares: the octagon with two rotated squares, over ℚ(√2).
//   - Billiard: the unfolding double of an arbitrary polygon.
//   - Origami: unit squares indexed by an integer domain, glued by the
//     horizontal permutation r (edges 1↔3) and vertical permutation u
//     (edges 2↔0).
//
// Every finite builder routes through surface.NewFinite, so a bad
// hand-built gluing table fails at construction with
// surface.ErrMalformedGluing rather than at the first bad query. Origamis
// over all of ℤ cannot be checked eagerly; they verify r∘rr = u∘uu = id
// on each query instead.
//
// Errors: surface.ErrMalformedGluing, surface.ErrInvalidParameter, and
// the poly construction errors for degenerate input polygons.
package generators
