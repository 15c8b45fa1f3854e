// Package poly provides exact polygons: ordered tuples of edge vectors
// over a field.Field, closed up to the zero vector.
//
// What:
//
//   - Vec: a 2-vector of field.Element with exact Add/Sub/Neg/Scale.
//   - Mat2: a 2×2 matrix for rotations and similarities.
//   - Polygon: n ≥ 3 edge vectors summing to zero; vertices, exact signed
//     area (shoelace), scaling, linear transforms.
//   - Builders: Square, Rectangle, RegularOctagon (over ℚ(√2)).
//
// Why:
//
//   - Surface descriptors hand out one Polygon per label; for infinite
//     families these are scaled copies of a few templates, so scaling and
//     equality must be exact and cheap.
//
// Complexity: every operation is O(n) field operations for an n-gon.
//
// Errors:
//
//   - ErrTooFewSides: fewer than 3 edge vectors.
//   - ErrNotClosed: edge vectors do not sum to zero.
//   - ErrEdgeRange: edge index outside [0, n).
//   - ErrNotPositive: a Rectangle dimension with non-positive sign.
package poly
