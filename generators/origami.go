// Package generators - origamis: unit squares glued by a permutation pair.
package generators

import (
	"fmt"

	"github.com/ldelanis/flatsurf/field"
	"github.com/ldelanis/flatsurf/poly"
	"github.com/ldelanis/flatsurf/surface"
)

// PermFunc maps an integer label to an integer label; an origami is
// defined by two such permutations of its domain.
type PermFunc func(int64) int64

// Origami is the translation surface of unit squares indexed by an
// integer domain, with edge 1 of square p glued to edge 3 of square r(p)
// (horizontal permutation) and edge 2 of p glued to edge 0 of u(p)
// (vertical permutation).
type Origami struct {
	name   string
	r, u   PermFunc
	rr, uu PermFunc // inverses of r and u
	domain surface.LabelSpace
	f      field.Rationals
	sq     poly.Polygon
}

// NewOrigami builds an origami from the permutations r and u with
// inverses rr and uu over the given integer domain.
//
// For a finite domain, nil inverses are computed by enumeration, and the
// whole configuration is validated fail-fast (r∘rr = u∘uu = id on every
// label): violations are surface.ErrMalformedGluing. For an infinite
// domain both inverses must be supplied and each query re-verifies the
// inverse pair locally.
func NewOrigami(name string, r, u, rr, uu PermFunc, domain surface.LabelSpace) (*Origami, error) {
	if r == nil || u == nil || domain == nil {
		return nil, fmt.Errorf("generators: nil permutation or domain: %w", surface.ErrInvalidParameter)
	}
	if !domain.IsFinite() && (rr == nil || uu == nil) {
		return nil, fmt.Errorf("generators: infinite domain needs explicit inverses: %w",
			surface.ErrInvalidParameter)
	}
	if domain.IsFinite() {
		labels := domain.Labels()
		if len(labels) == 0 {
			return nil, fmt.Errorf("generators: empty domain: %w", surface.ErrInvalidParameter)
		}
		if rr == nil {
			rr = invertOn(r, labels)
		}
		if uu == nil {
			uu = invertOn(u, labels)
		}
		for _, l := range labels {
			n := int64(l.(surface.IntLabel))
			for _, fn := range []struct{ fwd, inv PermFunc }{{r, rr}, {u, uu}} {
				img := fn.fwd(n)
				if !domain.Contains(surface.IntLabel(img)) || fn.inv(img) != n {
					return nil, fmt.Errorf("generators: permutation not invertible at %d: %w",
						n, surface.ErrMalformedGluing)
				}
			}
		}
	}
	f := field.Q()
	return &Origami{
		name: name, r: r, u: u, rr: rr, uu: uu,
		domain: domain, f: f, sq: poly.Square(f),
	}, nil
}

// invertOn builds the inverse of p by enumerating a finite label set.
func invertOn(p PermFunc, labels []surface.Label) PermFunc {
	inv := make(map[int64]int64, len(labels))
	for _, l := range labels {
		n := int64(l.(surface.IntLabel))
		inv[p(n)] = n
	}
	return func(n int64) int64 { return inv[n] }
}

// Name implements surface.Descriptor.
func (o *Origami) Name() string { return o.name }

// Field implements surface.Descriptor.
func (o *Origami) Field() field.Field { return o.f }

// LabelSpace implements surface.Descriptor.
func (o *Origami) LabelSpace() surface.LabelSpace { return o.domain }

// BaseLabel implements surface.Descriptor: label 0 for infinite domains,
// the first enumerated label otherwise.
func (o *Origami) BaseLabel() surface.Label {
	if o.domain.IsFinite() {
		return o.domain.Labels()[0]
	}
	return surface.IntLabel(0)
}

// IsFinite implements surface.Descriptor.
func (o *Origami) IsFinite() bool { return o.domain.IsFinite() }

// Polygon implements surface.Descriptor: every square is the unit square.
func (o *Origami) Polygon(l surface.Label) (poly.Polygon, error) {
	if !o.domain.Contains(l) {
		return poly.Polygon{}, fmt.Errorf("generators: label %s: %w", l, surface.ErrInvalidLabel)
	}
	return o.sq, nil
}

// OppositeEdge implements surface.Descriptor. Each crossing re-verifies
// that the supplied inverse actually inverts the permutation at this
// label; a mismatch is surface.ErrMalformedGluing.
func (o *Origami) OppositeEdge(l surface.Label, e int) (surface.Label, int, error) {
	p, ok := l.(surface.IntLabel)
	if !ok || !o.domain.Contains(l) {
		return nil, 0, fmt.Errorf("generators: label %s: %w", l, surface.ErrInvalidLabel)
	}
	n := int64(p)
	var (
		img  int64
		back PermFunc
		out  int
	)
	switch e {
	case 0:
		img, back, out = o.uu(n), o.u, 2
	case 1:
		img, back, out = o.r(n), o.rr, 3
	case 2:
		img, back, out = o.u(n), o.uu, 0
	case 3:
		img, back, out = o.rr(n), o.r, 1
	default:
		return nil, 0, fmt.Errorf("generators: edge %d of %s: %w", e, l, surface.ErrInvalidEdge)
	}
	if !o.domain.Contains(surface.IntLabel(img)) || back(img) != n {
		return nil, 0, fmt.Errorf("generators: permutation pair inconsistent at %d (edge %d): %w",
			n, e, surface.ErrMalformedGluing)
	}
	return surface.IntLabel(img), out, nil
}
