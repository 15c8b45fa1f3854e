// Package staircase - the infinite staircase descriptor.
package staircase

import (
	"fmt"

	"github.com/ldelanis/flatsurf/field"
	"github.com/ldelanis/flatsurf/generators"
	"github.com/ldelanis/flatsurf/poly"
	"github.com/ldelanis/flatsurf/surface"
)

// Surface is the infinite staircase over ℚ. Immutable.
type Surface struct {
	f  field.Rationals
	sq poly.Polygon
}

// New returns the infinite staircase.
func New() *Surface {
	f := field.Q()
	return &Surface{f: f, sq: poly.Square(f)}
}

// Name implements surface.Descriptor.
func (s *Surface) Name() string { return "The infinite staircase" }

// Field implements surface.Descriptor: the rational field.
func (s *Surface) Field() field.Field { return s.f }

// LabelSpace implements surface.Descriptor: all of ℤ.
func (s *Surface) LabelSpace() surface.LabelSpace { return surface.Integers() }

// BaseLabel implements surface.Descriptor.
func (s *Surface) BaseLabel() surface.Label { return surface.IntLabel(0) }

// IsFinite implements surface.Descriptor.
func (s *Surface) IsFinite() bool { return false }

// Polygon implements surface.Descriptor: every label carries the unit
// square.
func (s *Surface) Polygon(l surface.Label) (poly.Polygon, error) {
	if _, ok := l.(surface.IntLabel); !ok {
		return poly.Polygon{}, fmt.Errorf("staircase: label %s: %w", l, surface.ErrInvalidLabel)
	}
	return s.sq, nil
}

// OppositeEdge implements surface.Descriptor: the parity of p+e selects
// the shift direction, the edge always flips to (e+2) mod 4.
func (s *Surface) OppositeEdge(l surface.Label, e int) (surface.Label, int, error) {
	p, ok := l.(surface.IntLabel)
	if !ok {
		return nil, 0, fmt.Errorf("staircase: label %s: %w", l, surface.ErrInvalidLabel)
	}
	if e < 0 || e > 3 {
		return nil, 0, fmt.Errorf("staircase: edge %d of %s: %w", e, l, surface.ErrInvalidEdge)
	}
	if (int64(p)+int64(e))%2 != 0 {
		return p + 1, (e + 2) % 4, nil
	}
	return p - 1, (e + 2) % 4, nil
}

// NewOrigami returns the infinite staircase built as an origami over ℤ
// with the parity-shift permutations
//
//	r(x) = x+1 for even x, x−1 for odd x      (edges 1 and 3)
//	u(x) = x+1 for odd x, x−1 for even x      (edges 2 and 0)
//
// Both permutations are involutions, so they serve as their own inverses,
// and the resulting descriptor agrees with New query for query.
func NewOrigami() (*generators.Origami, error) {
	r := func(x int64) int64 {
		if mod2(x) == 0 {
			return x + 1
		}
		return x - 1
	}
	u := func(x int64) int64 {
		if mod2(x) != 0 {
			return x + 1
		}
		return x - 1
	}
	return generators.NewOrigami("The infinite staircase", r, u, r, u, surface.Integers())
}

// mod2 is the nonnegative parity of x.
func mod2(x int64) int64 {
	m := x % 2
	if m < 0 {
		m += 2
	}
	return m
}
