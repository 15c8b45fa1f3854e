// Package surface defines the combinatorial contract every flat-surface
// descriptor satisfies: a label space indexing polygons, a polygon map,
// and an involutive edge-gluing map — queried lazily, never materialized.
//
// What:
//
//   - Label variants: IntLabel (ℤ), Word (finite {L,R} strings) and
//     WordTag (Word × small tag) — all comparable, all usable as map keys.
//   - LabelSpace: membership plus enumeration for finite spaces only.
//   - Descriptor: Polygon(label), OppositeEdge(label, edge), BaseLabel,
//     IsFinite, Field, Name — the whole contract consumed by covering
//     builders, plotting layers and tests.
//   - Finite: a descriptor built from an explicit polygon list plus a
//     gluing table, validated fail-fast as a fixed-point-free involution.
//   - Walk / CheckInvolution: bounded breadth-first traversal from the
//     base label, and the involution property check built on it.
//
// Why:
//
//   - Infinite families (staircase, E-infinity, T-fractal, Chamanara)
//     cannot enumerate their labels; everything downstream must work from
//     membership tests and lazy queries alone.
//   - The gluing map is the surface: if it is not a fixed-point-free
//     involution, the object described is not a surface at all. The
//     invariant is checked eagerly for finite tables and checkable by
//     bounded traversal for infinite ones.
//
// Complexity:
//
//   - Walk: O(V·s) queries for V labels discovered within the depth
//     bound, s = sides per polygon. Memory: O(V).
//   - NewFinite validation: O(E) over the finite edge set.
//
// Errors:
//
//   - ErrInvalidLabel: label outside the descriptor's label space.
//   - ErrInvalidEdge: edge index outside [0, sides).
//   - ErrInvalidParameter: construction parameter outside its domain.
//   - ErrMalformedGluing: a gluing table that is not a total,
//     fixed-point-free involution.
//   - ErrNotInvolution / ErrFixedEdge: involution check failures.
package surface
