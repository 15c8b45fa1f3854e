// Package einfinity - the surface type, weight recurrences and gluing.
package einfinity

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ldelanis/flatsurf/field"
	"github.com/ldelanis/flatsurf/poly"
	"github.com/ldelanis/flatsurf/surface"
)

// Surface is the E-infinity translation surface over a fixed λ. Immutable
// after construction apart from its internal weight caches.
type Surface struct {
	f      field.Field
	lambda field.Element

	// mu serializes cache misses for both weight sequences; the
	// recurrences are mutually recursive, so one lock guards both maps.
	mu    sync.Mutex
	black map[int64]field.Element
	white map[int64]field.Element
}

// LambdaField returns the default coefficient field ℚ(λ), with λ the real
// root of x³ − 5x² + 4x − 1 lying in (4, 5) — the largest of its three
// real roots.
func LambdaField() *field.NumberField {
	f, err := field.NewNumberField("QQ(lambda)", "l",
		[]*big.Rat{
			big.NewRat(-1, 1),
			big.NewRat(4, 1),
			big.NewRat(-5, 1),
			big.NewRat(1, 1),
		},
		big.NewRat(4, 1), big.NewRat(5, 1))
	if err != nil {
		panic(err) // fixed parameters; cannot fail
	}
	return f
}

// New returns the E-infinity surface over the default field ℚ(λ).
func New() *Surface {
	f := LambdaField()
	s, err := NewWithLambda(f, f.Gen())
	if err != nil {
		panic(err) // generator of a freshly built field; cannot fail
	}
	return s
}

// NewWithLambda returns the E-infinity surface for a caller-supplied λ in
// a caller-supplied field. Nil arguments are surface.ErrInvalidParameter.
func NewWithLambda(f field.Field, lambda field.Element) (*Surface, error) {
	if f == nil || lambda == nil {
		return nil, fmt.Errorf("einfinity: nil field or lambda: %w", surface.ErrInvalidParameter)
	}
	return &Surface{
		f:      f,
		lambda: lambda,
		black:  make(map[int64]field.Element),
		white:  make(map[int64]field.Element),
	}, nil
}

// Name implements surface.Descriptor.
func (s *Surface) Name() string { return "The E-infinity surface" }

// Field implements surface.Descriptor.
func (s *Surface) Field() field.Field { return s.f }

// LabelSpace implements surface.Descriptor: all of ℤ.
func (s *Surface) LabelSpace() surface.LabelSpace { return surface.Integers() }

// BaseLabel implements surface.Descriptor.
func (s *Surface) BaseLabel() surface.Label { return surface.IntLabel(0) }

// IsFinite implements surface.Descriptor.
func (s *Surface) IsFinite() bool { return false }

// Lambda returns the λ the surface was built with.
func (s *Surface) Lambda() field.Element { return s.lambda }

// White returns the weight of the white endpoint of edge n.
func (s *Surface) White(n int64) field.Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.whiteLocked(n)
}

// Black returns the weight of the black endpoint of edge n.
func (s *Surface) Black(n int64) field.Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blackLocked(n)
}

// whiteLocked computes W(n) under s.mu.
func (s *Surface) whiteLocked(n int64) field.Element {
	if v, ok := s.white[n]; ok {
		return v
	}
	l := s.lambda
	var v field.Element
	switch {
	case n == 0 || n == 1:
		v = l
	case n == -1:
		v = l.Sub(s.f.One())
	case n == 2:
		// 1 − 3λ + λ²
		v = s.f.One().Sub(s.f.FromInt(3).Mul(l)).Add(l.Mul(l))
	case n > 2:
		v = l.Mul(s.blackLocked(n)).Sub(s.whiteLocked(n - 1))
	default: // n < −1
		v = s.whiteLocked(-n)
	}
	s.white[n] = v
	return v
}

// blackLocked computes B(n) under s.mu.
func (s *Surface) blackLocked(n int64) field.Element {
	if v, ok := s.black[n]; ok {
		return v
	}
	l := s.lambda
	var v field.Element
	switch {
	case n == 0:
		v = s.f.One()
	case n == 1 || n == -1 || n == 2:
		v = l.Sub(s.f.One())
	case n > 2:
		v = s.whiteLocked(n - 1).Sub(s.blackLocked(n - 1))
	default: // n < 0, n ∉ {0, 1, −1}
		v = s.blackLocked(1 - n)
	}
	s.black[n] = v
	return v
}

// Polygon implements surface.Descriptor: the rectangle of width 2·B(n)
// and height W(n).
func (s *Surface) Polygon(l surface.Label) (poly.Polygon, error) {
	n, ok := l.(surface.IntLabel)
	if !ok {
		return poly.Polygon{}, fmt.Errorf("einfinity: label %s: %w", l, surface.ErrInvalidLabel)
	}
	w := s.f.FromInt(2).Mul(s.Black(int64(n)))
	h := s.White(int64(n))
	zero := s.f.Zero()
	return poly.FromEdges(s.f, []poly.Vec{
		{X: w, Y: zero},
		{X: zero, Y: h},
		{X: w.Neg(), Y: zero},
		{X: zero, Y: h.Neg()},
	})
}

// pair is one target of the hand-built gluing core.
type pair struct {
	p surface.IntLabel
	e int
}

// coreGluing is the hand-built gluing for the four labels where the
// bipartite graph branches; rows are indexed by edge.
var coreGluing = map[surface.IntLabel][4]pair{
	0:  {{0, 2}, {1, 3}, {0, 0}, {1, 1}},
	1:  {{-1, 2}, {0, 3}, {2, 0}, {0, 1}},
	-1: {{2, 2}, {-1, 3}, {1, 0}, {-1, 1}},
	2:  {{1, 2}, {-2, 3}, {-1, 0}, {-2, 1}},
}

// OppositeEdge implements surface.Descriptor. Labels −1, 0, 1 and 2 carry
// the hand-built core of the bipartite graph; every other label follows
// the uniform parity rule: odd edges go to (−p, e+2), even edges to
// (1−p, e+2).
func (s *Surface) OppositeEdge(l surface.Label, e int) (surface.Label, int, error) {
	p, ok := l.(surface.IntLabel)
	if !ok {
		return nil, 0, fmt.Errorf("einfinity: label %s: %w", l, surface.ErrInvalidLabel)
	}
	if e < 0 || e > 3 {
		return nil, 0, fmt.Errorf("einfinity: edge %d of %s: %w", e, l, surface.ErrInvalidEdge)
	}
	if row, ok := coreGluing[p]; ok {
		return row[e].p, row[e].e, nil
	}
	if e%2 == 1 {
		return -p, (e + 2) % 4, nil
	}
	return 1 - p, (e + 2) % 4, nil
}
