// Package surface - the Descriptor contract and the external cover hook.
package surface

import (
	"github.com/ldelanis/flatsurf/field"
	"github.com/ldelanis/flatsurf/poly"
)

// Descriptor describes a translation or similarity surface combinatorially:
// a label space, a polygon for every label, and an involutive edge gluing.
//
// Every implementation guarantees:
//
//   - Polygon and OppositeEdge are pure functions of the label/edge and
//     the descriptor's fixed construction parameters; internal
//     memoization is invisible to callers and safe for concurrent use.
//   - OppositeEdge is a fixed-point-free involution over all reachable
//     edges: applying it twice returns to the start and no edge is glued
//     to itself.
//   - Polygon fails with ErrInvalidLabel for labels outside the space;
//     OppositeEdge additionally fails with ErrInvalidEdge for edge
//     indices outside [0, sides).
type Descriptor interface {
	// Name is a human-readable display identity. Metadata only: two
	// descriptors with different names may describe the same surface.
	Name() string

	// Field returns the exact field all polygon coordinates live in.
	Field() field.Field

	// LabelSpace returns the index domain of the surface's polygons.
	LabelSpace() LabelSpace

	// BaseLabel is the canonical starting label for traversal.
	BaseLabel() Label

	// IsFinite reports whether the label space is finite.
	IsFinite() bool

	// Polygon returns the polygon carrying label l.
	Polygon(l Label) (poly.Polygon, error)

	// OppositeEdge returns the (label, edge) pair glued to (l, e).
	OppositeEdge(l Label, e int) (Label, int, error)
}

// Cover is the external covering-construction capability: it unwinds a
// similarity or half-dilation surface into a translation surface. The
// construction itself lives outside this module; descriptors that compose
// with a cover (Chamanara's translation surface) accept one as a
// parameter.
type Cover func(Descriptor) (Descriptor, error)
