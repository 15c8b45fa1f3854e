// Package einfinity implements the translation surface built on the
// E-infinity bipartite graph: one rectangle per integer label, with widths
// and heights driven by a pair of mutually recursive weight sequences.
//
// The bipartite graph, with edges numbered:
//
//	 0   1   2  -2   3  -3   4  -4
//	*---o---*---o---*---o---*---o---*...
//	        |
//	        |-1
//	        o
//
// Black vertices (*) represent vertical cylinders and white vertices (o)
// horizontal cylinders. The rectangle at label n has width 2·B(n) and
// height W(n), where B and W satisfy
//
//	W(0)=W(1)=λ   W(−1)=λ−1   W(2)=1−3λ+λ²
//	W(n)=λ·B(n)−W(n−1)  (n>2)    W(n)=W(−n)  (n<−1)
//	B(0)=1   B(1)=B(−1)=B(2)=λ−1
//	B(n)=W(n−1)−B(n−1)  (n>2)    B(n)=B(1−n)  (n<0, n∉{−1})
//
// and λ is, by default, the real root of x³−5x²+4x−1 in (4,5). Both
// sequences are memoized per surface instance with compute-once locking,
// so concurrent readers are safe and each weight is derived exactly once.
//
// For the rectangle at any label actually glued into a geometrically valid
// surface, 2·B(n) and W(n) are strictly positive. That is a property of λ,
// not something this package checks per query.
//
// Errors: surface.ErrInvalidLabel, surface.ErrInvalidEdge,
// surface.ErrInvalidParameter (nil λ or field at construction).
package einfinity
