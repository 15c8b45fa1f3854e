// Package poly - the Polygon type: construction, accessors, transforms.
package poly

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ldelanis/flatsurf/field"
)

// Sentinel errors for polygon construction and queries.
var (
	// ErrTooFewSides indicates fewer than 3 edge vectors.
	ErrTooFewSides = errors.New("poly: polygon needs at least 3 sides")

	// ErrNotClosed indicates edge vectors that do not sum to zero.
	ErrNotClosed = errors.New("poly: edge vectors must sum to the zero vector")

	// ErrEdgeRange indicates an edge index outside [0, sides).
	ErrEdgeRange = errors.New("poly: edge index out of range")

	// ErrNotPositive indicates a non-positive Rectangle dimension.
	ErrNotPositive = errors.New("poly: dimension must be strictly positive")
)

// Polygon is an ordered sequence of edge vectors over one field, closed up
// to the zero vector. Vertices start at the origin: vertex i is the sum of
// edges 0..i−1. Immutable after construction.
type Polygon struct {
	f     field.Field
	edges []Vec
}

// FromEdges builds a polygon from its edge vectors.
// Returns ErrTooFewSides for n < 3 and ErrNotClosed when the vectors do
// not sum to zero.
func FromEdges(f field.Field, edges []Vec) (Polygon, error) {
	if len(edges) < 3 {
		return Polygon{}, fmt.Errorf("poly: %d edges: %w", len(edges), ErrTooFewSides)
	}
	sum := Vec{X: f.Zero(), Y: f.Zero()}
	for _, e := range edges {
		sum = sum.Add(e)
	}
	if !sum.IsZero() {
		return Polygon{}, fmt.Errorf("poly: edges sum to %s: %w", sum, ErrNotClosed)
	}
	own := make([]Vec, len(edges))
	copy(own, edges)
	return Polygon{f: f, edges: own}, nil
}

// FromVertices builds a polygon from its vertex list (the closing edge
// back to the first vertex is implied).
func FromVertices(f field.Field, vertices []Vec) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, fmt.Errorf("poly: %d vertices: %w", len(vertices), ErrTooFewSides)
	}
	edges := make([]Vec, len(vertices))
	for i := range vertices {
		next := vertices[(i+1)%len(vertices)]
		edges[i] = next.Sub(vertices[i])
	}
	return FromEdges(f, edges)
}

// Field returns the field the polygon's coordinates live in.
func (p Polygon) Field() field.Field { return p.f }

// Sides returns the number of edges.
func (p Polygon) Sides() int { return len(p.edges) }

// Edge returns edge vector i, or ErrEdgeRange.
func (p Polygon) Edge(i int) (Vec, error) {
	if i < 0 || i >= len(p.edges) {
		return Vec{}, fmt.Errorf("poly: edge %d of %d-gon: %w", i, len(p.edges), ErrEdgeRange)
	}
	return p.edges[i], nil
}

// Edges returns a copy of all edge vectors in order.
func (p Polygon) Edges() []Vec {
	out := make([]Vec, len(p.edges))
	copy(out, p.edges)
	return out
}

// Vertices returns the vertex list starting at the origin.
func (p Polygon) Vertices() []Vec {
	out := make([]Vec, len(p.edges))
	cur := Vec{X: p.f.Zero(), Y: p.f.Zero()}
	for i, e := range p.edges {
		out[i] = cur
		cur = cur.Add(e)
	}
	return out
}

// Area returns the exact signed area (shoelace over the vertex list);
// positive for counterclockwise polygons.
func (p Polygon) Area() field.Element {
	verts := p.Vertices()
	acc := p.f.Zero()
	for i, v := range verts {
		acc = acc.Add(v.Cross(verts[(i+1)%len(verts)]))
	}
	half, err := p.f.FromRat(1, 2)
	if err != nil {
		panic(err) // denominator is fixed and nonzero
	}
	return acc.Mul(half)
}

// Scale returns the polygon with every edge multiplied by c.
// Closure is preserved, so no revalidation happens.
func (p Polygon) Scale(c field.Element) Polygon {
	out := make([]Vec, len(p.edges))
	for i, e := range p.edges {
		out[i] = e.Scale(c)
	}
	return Polygon{f: p.f, edges: out}
}

// Transform returns the polygon with every edge mapped through m.
// Linearity preserves closure.
func (p Polygon) Transform(m Mat2) Polygon {
	out := make([]Vec, len(p.edges))
	for i, e := range p.edges {
		out[i] = m.Apply(e)
	}
	return Polygon{f: p.f, edges: out}
}

// Mirror returns the polygon reflected across the x-axis with the vertex
// order reversed, so orientation is preserved. Edge i of the mirror image
// corresponds to edge Sides()−1−i of the original.
func (p Polygon) Mirror() Polygon {
	n := len(p.edges)
	out := make([]Vec, n)
	for i, e := range p.edges {
		out[n-1-i] = Vec{X: e.X.Neg(), Y: e.Y}
	}
	return Polygon{f: p.f, edges: out}
}

// Equal reports exact edge-wise equality.
func (p Polygon) Equal(q Polygon) bool {
	if len(p.edges) != len(q.edges) {
		return false
	}
	for i := range p.edges {
		if !p.edges[i].Equal(q.edges[i]) {
			return false
		}
	}
	return true
}

// String renders the edge vectors in order.
func (p Polygon) String() string {
	parts := make([]string, len(p.edges))
	for i, e := range p.edges {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
