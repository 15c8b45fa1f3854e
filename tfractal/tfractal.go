// Package tfractal - the surface type, shape templates and gluing table.
package tfractal

import (
	"fmt"
	"sync"

	"github.com/ldelanis/flatsurf/field"
	"github.com/ldelanis/flatsurf/poly"
	"github.com/ldelanis/flatsurf/surface"
)

// Surface is the T-fractal surface with parameters w, r, h1, h2. Immutable
// after construction apart from the per-depth scale cache.
type Surface struct {
	f  field.Field
	w  field.Element
	r  field.Element
	h1 field.Element
	h2 field.Element

	// templates holds the four base rectangles; polygons at word u are
	// these scaled by r^(−|u|), so memoization is per template and per
	// depth, never per label.
	templates [4]poly.Polygon

	mu     sync.Mutex
	scales map[int]field.Element // depth ↦ r^(−depth)
}

// New builds the T-fractal surface over f. All four parameters must be
// strictly positive; violations are surface.ErrInvalidParameter.
func New(f field.Field, w, r, h1, h2 field.Element) (*Surface, error) {
	if f == nil {
		return nil, fmt.Errorf("tfractal: nil field: %w", surface.ErrInvalidParameter)
	}
	for name, v := range map[string]field.Element{"w": w, "r": r, "h1": h1, "h2": h2} {
		if v == nil || v.Sign() <= 0 {
			return nil, fmt.Errorf("tfractal: %s must be positive: %w", name, surface.ErrInvalidParameter)
		}
	}
	wr, err := w.Div(r)
	if err != nil {
		return nil, fmt.Errorf("tfractal: w/r: %w", err)
	}
	s := &Surface{f: f, w: w, r: r, h1: h1, h2: h2, scales: map[int]field.Element{0: f.One()}}
	for i, dims := range [4][2]field.Element{{w, h1}, {wr, h2}, {w, h2}, {wr, h2}} {
		p, err := poly.Rectangle(f, dims[0], dims[1])
		if err != nil {
			return nil, fmt.Errorf("tfractal: template %d: %w", i, err)
		}
		s.templates[i] = p
	}
	return s, nil
}

// Default returns the T-fractal surface over ℚ with w=h1=h2=1 and r=2.
func Default() *Surface {
	f := field.Q()
	s, err := New(f, f.One(), f.FromInt(2), f.One(), f.One())
	if err != nil {
		panic(err) // fixed positive parameters; cannot fail
	}
	return s
}

// Name implements surface.Descriptor.
func (s *Surface) Name() string {
	return fmt.Sprintf("The T-fractal surface with parameters w=%s, r=%s, h1=%s, h2=%s",
		s.w, s.r, s.h1, s.h2)
}

// Field implements surface.Descriptor.
func (s *Surface) Field() field.Field { return s.f }

// LabelSpace implements surface.Descriptor: {L,R}* × {0,1,2,3}.
func (s *Surface) LabelSpace() surface.LabelSpace { return surface.WordTags(4) }

// BaseLabel implements surface.Descriptor: (ε, 0), the trunk's bottom
// rectangle.
func (s *Surface) BaseLabel() surface.Label {
	return surface.WordTag{W: surface.Epsilon, Tag: 0}
}

// IsFinite implements surface.Descriptor.
func (s *Surface) IsFinite() bool { return false }

// scale returns r^(−depth), memoized with compute-once locking.
func (s *Surface) scale(depth int) field.Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.scales[depth]; ok {
		return v
	}
	// Fill upward from the deepest cached value.
	last := depth - 1
	for ; ; last-- {
		if _, ok := s.scales[last]; ok {
			break
		}
	}
	for k := last + 1; k <= depth; k++ {
		v, err := s.scales[k-1].Div(s.r)
		if err != nil {
			panic(err) // r validated positive at construction
		}
		s.scales[k] = v
	}
	return s.scales[depth]
}

// Polygon implements surface.Descriptor: base shape of the tag, scaled by
// r^(−|word|).
func (s *Surface) Polygon(l surface.Label) (poly.Polygon, error) {
	p, ok := l.(surface.WordTag)
	if !ok || !s.LabelSpace().Contains(l) {
		return poly.Polygon{}, fmt.Errorf("tfractal: label %s: %w", l, surface.ErrInvalidLabel)
	}
	if p.W.IsEmpty() {
		return s.templates[p.Tag], nil
	}
	return s.templates[p.Tag].Scale(s.scale(p.W.Len())), nil
}

// OppositeEdge implements surface.Descriptor: the 16-case table over
// (tag, edge), with recursive ascent/descent through the word tree and
// the empty-word cases closing the trunk.
func (s *Surface) OppositeEdge(l surface.Label, e int) (surface.Label, int, error) {
	p, ok := l.(surface.WordTag)
	if !ok || !s.LabelSpace().Contains(l) {
		return nil, 0, fmt.Errorf("tfractal: label %s: %w", l, surface.ErrInvalidLabel)
	}
	if e < 0 || e > 3 {
		return nil, 0, fmt.Errorf("tfractal: edge %d of %s: %w", e, l, surface.ErrInvalidEdge)
	}
	w := p.W
	at := func(u surface.Word, tag, edge int) (surface.Label, int, error) {
		return surface.WordTag{W: u, Tag: tag}, edge, nil
	}
	switch p.Tag {
	case 0:
		switch e {
		case 0:
			// Bottom of the cell: ascend to the parent, or close the
			// trunk at the empty word.
			if last, ok := w.Last(); ok {
				if last == surface.L {
					return at(w.Parent(), 1, 2)
				}
				return at(w.Parent(), 3, 2)
			}
			return at(w, 2, 2)
		case 1:
			return at(w, 0, 3)
		case 2:
			return at(w, 2, 0)
		default:
			return at(w, 0, 1)
		}
	case 1:
		switch e {
		case 0:
			return at(w.Append(surface.L), 2, 2)
		case 1:
			return at(w, 2, 3)
		case 2:
			return at(w.Append(surface.L), 0, 0)
		default:
			return at(w, 3, 1)
		}
	case 2:
		switch e {
		case 0:
			return at(w, 0, 2)
		case 1:
			return at(w, 3, 3)
		case 2:
			// Top of the cell: ascend to the parent, or close the
			// trunk at the empty word.
			if last, ok := w.Last(); ok {
				if last == surface.L {
					return at(w.Parent(), 1, 0)
				}
				return at(w.Parent(), 3, 0)
			}
			return at(w, 0, 0)
		default:
			return at(w, 1, 1)
		}
	default: // tag 3
		switch e {
		case 0:
			return at(w.Append(surface.R), 2, 2)
		case 1:
			return at(w, 1, 3)
		case 2:
			return at(w.Append(surface.R), 0, 0)
		default:
			return at(w, 2, 1)
		}
	}
}
