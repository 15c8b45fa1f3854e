// Package surface - finite surfaces built from explicit polygon lists and
// hand-written gluing tables.
package surface

import (
	"fmt"

	"github.com/ldelanis/flatsurf/field"
	"github.com/ldelanis/flatsurf/poly"
)

// Finite is a surface described by an explicit list of polygons (labels
// 0..n−1) and a gluing table. The table is validated at construction, so
// a Finite in hand always satisfies the involution invariant.
type Finite struct {
	name     string
	f        field.Field
	polygons []poly.Polygon
	gluing   map[EdgeID]EdgeID
}

// NewFinite builds a Finite surface from polygons and a gluing table.
//
// The table must be total over the edge set of the supplied polygons, map
// only edges of that set, contain no fixed points, and be an involution;
// any violation is ErrMalformedGluing. An empty polygon list is
// ErrInvalidParameter.
func NewFinite(name string, f field.Field, polygons []poly.Polygon, gluing map[EdgeID]EdgeID) (*Finite, error) {
	if len(polygons) == 0 {
		return nil, fmt.Errorf("surface: no polygons: %w", ErrInvalidParameter)
	}
	total := 0
	for _, p := range polygons {
		total += p.Sides()
	}
	if len(gluing) != total {
		return nil, fmt.Errorf("surface: table has %d entries for %d edges: %w",
			len(gluing), total, ErrMalformedGluing)
	}
	inRange := func(id EdgeID) bool {
		p, ok := id.Label.(IntLabel)
		if !ok || p < 0 || int64(p) >= int64(len(polygons)) {
			return false
		}
		return id.Edge >= 0 && id.Edge < polygons[p].Sides()
	}
	for from, to := range gluing {
		if !inRange(from) || !inRange(to) {
			return nil, fmt.Errorf("surface: entry %s -> %s out of range: %w",
				from, to, ErrMalformedGluing)
		}
		if from == to {
			return nil, fmt.Errorf("surface: edge %s glued to itself: %w",
				from, ErrMalformedGluing)
		}
		back, ok := gluing[to]
		if !ok || back != from {
			return nil, fmt.Errorf("surface: %s -> %s is not mirrored: %w",
				from, to, ErrMalformedGluing)
		}
	}
	own := make(map[EdgeID]EdgeID, len(gluing))
	for k, v := range gluing {
		own[k] = v
	}
	return &Finite{name: name, f: f, polygons: polygons, gluing: own}, nil
}

// Name implements Descriptor.
func (s *Finite) Name() string { return s.name }

// Field implements Descriptor.
func (s *Finite) Field() field.Field { return s.f }

// LabelSpace implements Descriptor.
func (s *Finite) LabelSpace() LabelSpace { return FiniteInts(len(s.polygons)) }

// BaseLabel implements Descriptor.
func (s *Finite) BaseLabel() Label { return IntLabel(0) }

// IsFinite implements Descriptor.
func (s *Finite) IsFinite() bool { return true }

// Polygon implements Descriptor.
func (s *Finite) Polygon(l Label) (poly.Polygon, error) {
	p, ok := l.(IntLabel)
	if !ok || !s.LabelSpace().Contains(l) {
		return poly.Polygon{}, fmt.Errorf("surface: label %s: %w", l, ErrInvalidLabel)
	}
	return s.polygons[p], nil
}

// OppositeEdge implements Descriptor.
func (s *Finite) OppositeEdge(l Label, e int) (Label, int, error) {
	p, err := s.Polygon(l)
	if err != nil {
		return nil, 0, err
	}
	if e < 0 || e >= p.Sides() {
		return nil, 0, fmt.Errorf("surface: edge %d of %s: %w", e, l, ErrInvalidEdge)
	}
	to := s.gluing[EdgeID{Label: l, Edge: e}]
	return to.Label, to.Edge, nil
}
