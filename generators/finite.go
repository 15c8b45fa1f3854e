// Package generators - finite example surfaces from explicit tables.
package generators

import (
	"fmt"

	"github.com/ldelanis/flatsurf/field"
	"github.com/ldelanis/flatsurf/poly"
	"github.com/ldelanis/flatsurf/surface"
)

// pairs builds a symmetric gluing table from one-directional entries.
func pairs(half map[surface.EdgeID]surface.EdgeID) map[surface.EdgeID]surface.EdgeID {
	out := make(map[surface.EdgeID]surface.EdgeID, 2*len(half))
	for k, v := range half {
		out[k] = v
		out[v] = k
	}
	return out
}

// edge is shorthand for an EdgeID with an integer label.
func edge(p int64, e int) surface.EdgeID {
	return surface.EdgeID{Label: surface.IntLabel(p), Edge: e}
}

// TrianglePair returns the two-triangle similarity surface example:
// triangles (0,0),(2,−2),(2,0) and (0,0),(2,0),(1,3), glued edge to
// edge across the pair.
func TrianglePair() (*surface.Finite, error) {
	f := field.Q()
	v := func(x, y int64) poly.Vec {
		return poly.Vec{X: f.FromInt(x), Y: f.FromInt(y)}
	}
	p0, err := poly.FromVertices(f, []poly.Vec{v(0, 0), v(2, -2), v(2, 0)})
	if err != nil {
		return nil, err
	}
	p1, err := poly.FromVertices(f, []poly.Vec{v(0, 0), v(2, 0), v(1, 3)})
	if err != nil {
		return nil, err
	}
	glue := pairs(map[surface.EdgeID]surface.EdgeID{
		edge(0, 0): edge(1, 1),
		edge(0, 1): edge(1, 2),
		edge(0, 2): edge(1, 0),
	})
	return surface.NewFinite("Similarity surface built from two triangles",
		f, []poly.Polygon{p0, p1}, glue)
}

// RightAngleTriangle returns the right triangle with legs w and h doubled
// across its three sides. w and h must be strictly positive.
func RightAngleTriangle(f field.Field, w, h field.Element) (*surface.Finite, error) {
	if f == nil || w == nil || h == nil {
		return nil, fmt.Errorf("generators: nil input: %w", surface.ErrInvalidParameter)
	}
	if w.Sign() <= 0 || h.Sign() <= 0 {
		return nil, fmt.Errorf("generators: sides w=%s h=%s must be positive: %w",
			w, h, surface.ErrInvalidParameter)
	}
	zero := f.Zero()
	p1, err := poly.FromEdges(f, []poly.Vec{
		{X: w, Y: zero},
		{X: w.Neg(), Y: h},
		{X: zero, Y: h.Neg()},
	})
	if err != nil {
		return nil, err
	}
	p2, err := poly.FromEdges(f, []poly.Vec{
		{X: zero, Y: h},
		{X: w.Neg(), Y: h.Neg()},
		{X: w, Y: zero},
	})
	if err != nil {
		return nil, err
	}
	glue := pairs(map[surface.EdgeID]surface.EdgeID{
		edge(0, 0): edge(1, 2),
		edge(0, 1): edge(1, 1),
		edge(0, 2): edge(1, 0),
	})
	return surface.NewFinite("Right angle triangle double", f,
		[]poly.Polygon{p1, p2}, glue)
}

// RegularOctagon returns the translation surface built from the regular
// octagon by identifying opposite sides — the classical genus-2 surface
// in H(2).
func RegularOctagon() (*surface.Finite, error) {
	o, f := poly.RegularOctagon()
	half := make(map[surface.EdgeID]surface.EdgeID, 4)
	for i := 0; i < 4; i++ {
		half[edge(0, i)] = edge(0, i+4)
	}
	return surface.NewFinite("Translation surface built from the regular octagon",
		f, []poly.Polygon{o}, pairs(half))
}

// OctagonAndSquares returns the translation surface gluing the regular
// octagon to two side-2 squares, one rotated by π/4 — all over ℚ(√2).
func OctagonAndSquares() (*surface.Finite, error) {
	o, f := poly.RegularOctagon()
	two := f.FromInt(2)
	sqrt2 := f.Gen()
	s, err := sqrt2.Div(two)
	if err != nil {
		return nil, err
	}
	rot := poly.Mat2{A: s, B: s.Neg(), C: s, D: s}
	sq := poly.Square(f).Scale(two)
	polygons := []poly.Polygon{o, sq, sq.Transform(rot)}
	glue := pairs(map[surface.EdgeID]surface.EdgeID{
		edge(0, 0): edge(1, 3),
		edge(0, 1): edge(2, 3),
		edge(0, 2): edge(1, 0),
		edge(0, 3): edge(2, 0),
		edge(0, 4): edge(1, 1),
		edge(0, 5): edge(2, 1),
		edge(0, 6): edge(1, 2),
		edge(0, 7): edge(2, 2),
	})
	return surface.NewFinite("Octagon and squares", f, polygons, glue)
}

// Billiard returns the unfolding double of p: the polygon and its mirror
// image, with edge i of the original glued to edge n−1−i of the mirror.
// This is the standard first step of billiard unfolding.
func Billiard(p poly.Polygon) (*surface.Finite, error) {
	if p.Sides() == 0 {
		return nil, fmt.Errorf("generators: empty polygon: %w", surface.ErrInvalidParameter)
	}
	n := p.Sides()
	half := make(map[surface.EdgeID]surface.EdgeID, n)
	for i := 0; i < n; i++ {
		half[edge(0, i)] = edge(1, n-1-i)
	}
	return surface.NewFinite("Billiard double", p.Field(),
		[]poly.Polygon{p, p.Mirror()}, pairs(half))
}
