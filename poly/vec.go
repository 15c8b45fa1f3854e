// Package poly - exact 2-vectors and 2×2 matrices.
package poly

import (
	"fmt"

	"github.com/ldelanis/flatsurf/field"
)

// Vec is a 2-vector over an exact field. Immutable, like its components.
type Vec struct {
	X, Y field.Element
}

// V builds a vector from two elements of the same field.
func V(x, y field.Element) Vec { return Vec{X: x, Y: y} }

// Add returns v + w.
func (v Vec) Add(w Vec) Vec { return Vec{X: v.X.Add(w.X), Y: v.Y.Add(w.Y)} }

// Sub returns v − w.
func (v Vec) Sub(w Vec) Vec { return Vec{X: v.X.Sub(w.X), Y: v.Y.Sub(w.Y)} }

// Neg returns −v.
func (v Vec) Neg() Vec { return Vec{X: v.X.Neg(), Y: v.Y.Neg()} }

// Scale returns c·v.
func (v Vec) Scale(c field.Element) Vec { return Vec{X: v.X.Mul(c), Y: v.Y.Mul(c)} }

// Cross returns the scalar cross product v.X·w.Y − v.Y·w.X.
func (v Vec) Cross(w Vec) field.Element {
	return v.X.Mul(w.Y).Sub(v.Y.Mul(w.X))
}

// Equal reports exact component-wise equality.
func (v Vec) Equal(w Vec) bool { return v.X.Equal(w.X) && v.Y.Equal(w.Y) }

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool { return v.X.IsZero() && v.Y.IsZero() }

// String renders "(x, y)".
func (v Vec) String() string { return fmt.Sprintf("(%s, %s)", v.X, v.Y) }

// Mat2 is a 2×2 matrix [[A, B], [C, D]] over an exact field, used for
// rotations and similarities applied to polygons.
type Mat2 struct {
	A, B field.Element
	C, D field.Element
}

// Apply returns the matrix-vector product m·v.
func (m Mat2) Apply(v Vec) Vec {
	return Vec{
		X: m.A.Mul(v.X).Add(m.B.Mul(v.Y)),
		Y: m.C.Mul(v.X).Add(m.D.Mul(v.Y)),
	}
}
