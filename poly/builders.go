// Package poly - stock polygon builders used by the surface generators.
package poly

import (
	"fmt"

	"github.com/ldelanis/flatsurf/field"
)

// Square returns the unit square over f with edges
// (1,0), (0,1), (−1,0), (0,−1).
func Square(f field.Field) Polygon {
	one := f.One()
	zero := f.Zero()
	p, err := FromEdges(f, []Vec{
		{X: one, Y: zero},
		{X: zero, Y: one},
		{X: one.Neg(), Y: zero},
		{X: zero, Y: one.Neg()},
	})
	if err != nil {
		panic(err) // fixed edges; cannot fail
	}
	return p
}

// Rectangle returns the axis-aligned w×h rectangle over f with edges
// (w,0), (0,h), (−w,0), (0,−h). Both dimensions must be strictly
// positive; otherwise ErrNotPositive.
func Rectangle(f field.Field, w, h field.Element) (Polygon, error) {
	if w.Sign() <= 0 {
		return Polygon{}, fmt.Errorf("poly: width %s: %w", w, ErrNotPositive)
	}
	if h.Sign() <= 0 {
		return Polygon{}, fmt.Errorf("poly: height %s: %w", h, ErrNotPositive)
	}
	zero := f.Zero()
	return FromEdges(f, []Vec{
		{X: w, Y: zero},
		{X: zero, Y: h},
		{X: w.Neg(), Y: zero},
		{X: zero, Y: h.Neg()},
	})
}

// RegularOctagon returns the regular octagon with unit sides over ℚ(√2),
// together with the field it lives in. Edge vectors, counterclockwise
// starting at (1,0), use s = √2/2:
//
//	(1,0), (s,s), (0,1), (−s,s), (−1,0), (−s,−s), (0,−1), (s,−s)
func RegularOctagon() (Polygon, *field.NumberField) {
	f := field.Sqrt2()
	two := f.FromInt(2)
	s, err := f.Gen().Div(two)
	if err != nil {
		panic(err) // dividing by the constant 2
	}
	one := f.One()
	zero := f.Zero()
	p, err := FromEdges(f, []Vec{
		{X: one, Y: zero},
		{X: s, Y: s},
		{X: zero, Y: one},
		{X: s.Neg(), Y: s},
		{X: one.Neg(), Y: zero},
		{X: s.Neg(), Y: s.Neg()},
		{X: zero, Y: one.Neg()},
		{X: s, Y: s.Neg()},
	})
	if err != nil {
		panic(err) // fixed edges; cannot fail
	}
	return p, f
}
