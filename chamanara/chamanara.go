// Package chamanara - the X_α descriptor and its translation cover hook.
package chamanara

import (
	"fmt"

	"github.com/ldelanis/flatsurf/field"
	"github.com/ldelanis/flatsurf/poly"
	"github.com/ldelanis/flatsurf/surface"
)

// Surface is Chamanara's surface X_α. Immutable.
type Surface struct {
	f     field.Field
	alpha field.Element
	p     poly.Polygon
}

// BasePolygon returns the quadrilateral underlying X_α, with edge vectors
//
//	(1,0), (−x,x), (0,−1), (x−1,1−x)      where x = 1/(1−α).
//
// α must lie strictly between 0 and 1; otherwise surface.ErrInvalidParameter.
func BasePolygon(f field.Field, alpha field.Element) (poly.Polygon, error) {
	if f == nil || alpha == nil {
		return poly.Polygon{}, fmt.Errorf("chamanara: nil field or alpha: %w", surface.ErrInvalidParameter)
	}
	one := f.One()
	if alpha.Sign() <= 0 || alpha.Cmp(one) >= 0 {
		return poly.Polygon{}, fmt.Errorf("chamanara: alpha=%s not in (0,1): %w",
			alpha, surface.ErrInvalidParameter)
	}
	// x = 1/(1−α), the geometric series Σ αⁿ.
	x, err := one.Div(one.Sub(alpha))
	if err != nil {
		return poly.Polygon{}, fmt.Errorf("chamanara: 1/(1-alpha): %w", err)
	}
	zero := f.Zero()
	return poly.FromEdges(f, []poly.Vec{
		{X: one, Y: zero},
		{X: x.Neg(), Y: x},
		{X: zero, Y: one.Neg()},
		{X: x.Sub(one), Y: one.Sub(x)},
	})
}

// New builds X_α over f. α must lie strictly between 0 and 1.
func New(f field.Field, alpha field.Element) (*Surface, error) {
	p, err := BasePolygon(f, alpha)
	if err != nil {
		return nil, err
	}
	return &Surface{f: f, alpha: alpha, p: p}, nil
}

// Name implements surface.Descriptor.
func (s *Surface) Name() string {
	return fmt.Sprintf("Chamanara surface with parameter %s", s.alpha)
}

// Field implements surface.Descriptor.
func (s *Surface) Field() field.Field { return s.f }

// LabelSpace implements surface.Descriptor: all of ℤ.
func (s *Surface) LabelSpace() surface.LabelSpace { return surface.Integers() }

// BaseLabel implements surface.Descriptor.
func (s *Surface) BaseLabel() surface.Label { return surface.IntLabel(0) }

// IsFinite implements surface.Descriptor.
func (s *Surface) IsFinite() bool { return false }

// Alpha returns the parameter the surface was built with.
func (s *Surface) Alpha() field.Element { return s.alpha }

// Polygon implements surface.Descriptor: the one shared quadrilateral.
// Labeled copies are identified by the gluing, not by distinct shapes.
func (s *Surface) Polygon(l surface.Label) (poly.Polygon, error) {
	if _, ok := l.(surface.IntLabel); !ok {
		return poly.Polygon{}, fmt.Errorf("chamanara: label %s: %w", l, surface.ErrInvalidLabel)
	}
	return s.p, nil
}

// OppositeEdge implements surface.Descriptor.
func (s *Surface) OppositeEdge(l surface.Label, e int) (surface.Label, int, error) {
	p, ok := l.(surface.IntLabel)
	if !ok {
		return nil, 0, fmt.Errorf("chamanara: label %s: %w", l, surface.ErrInvalidLabel)
	}
	switch e {
	case 0, 2:
		return 1 - p, e, nil
	case 1:
		switch {
		case p < 0:
			return p + 1, 3, nil
		case p > 1:
			return p - 1, 3, nil
		default: // p == 0 or p == 1
			return 1 - p, 1, nil
		}
	case 3:
		if p <= 0 {
			return p - 1, 1, nil
		}
		// p >= 1
		return p + 1, 1, nil
	default:
		return nil, 0, fmt.Errorf("chamanara: edge %d of %s: %w", e, l, surface.ErrInvalidEdge)
	}
}

// GlueSequence returns the labels reached from the base label by crossing
// edge 3 repeatedly, n times — the adjacency walk used to lay out the
// surface for display.
func (s *Surface) GlueSequence(n int) ([]surface.Label, error) {
	if n < 0 {
		return nil, fmt.Errorf("chamanara: n=%d: %w", n, surface.ErrInvalidParameter)
	}
	out := make([]surface.Label, 0, n+1)
	var cur surface.Label = s.BaseLabel()
	out = append(out, cur)
	for i := 0; i < n; i++ {
		next, _, err := s.OppositeEdge(cur, 3)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
		cur = next
	}
	return out, nil
}

// TranslationSurface builds Chamanara's translation surface by composing
// X_α with an external minimal-translation-cover construction.
func TranslationSurface(f field.Field, alpha field.Element, cover surface.Cover) (surface.Descriptor, error) {
	if cover == nil {
		return nil, fmt.Errorf("chamanara: nil cover: %w", surface.ErrInvalidParameter)
	}
	s, err := New(f, alpha)
	if err != nil {
		return nil, err
	}
	return cover(s)
}
