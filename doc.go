// Package flatsurf is an in-memory toolkit for describing translation and
// similarity surfaces — surfaces glued from countably many polygons — as
// lazy combinatorial objects over exact arithmetic.
//
// 🚀 What is flatsurf?
//
//	A pure-Go library that brings together:
//		• Exact fields: rationals and real algebraic number fields ℚ(θ)
//		• Polygons: edge-vector polygons with exact area, scaling & rotation
//		• Descriptors: the polygon/opposite-edge contract for lazy surfaces
//		• Infinite families: the infinite staircase, E-infinity, T-fractal,
//		  and Chamanara's X_α
//		• Finite generators: triangle pairs, doubled triangles, the regular
//		  octagon, octagon-and-squares, origamis and billiard doubles
//
// ✨ Why choose flatsurf?
//
//   - Lazy – infinite label spaces are never materialized; every query is
//     a pure function of a label and the surface's fixed parameters
//   - Exact – no floating point anywhere; all coordinates live in ℚ or a
//     real number field with exact sign decisions
//   - Verifiable – bounded traversal and involution checking built in
//
// Everything is organized under flat subpackages:
//
//	field/      — exact Element/Field capability: ℚ and ℚ[x]/(m(x))
//	poly/       — exact polygons built from edge vectors
//	surface/    — labels, label spaces, the Descriptor contract, traversal
//	staircase/  — the infinite staircase
//	einfinity/  — the E-infinity surface and its weight recurrences
//	tfractal/   — the self-similar T-fractal surface
//	chamanara/  — Chamanara's infinite-genus surface X_α
//	generators/ — finite example surfaces and origamis
//
// Quick ASCII example (the infinite staircase):
//
//	 ...
//	 +--+--+
//	 |  |  |
//	 +--+--+--+
//	    |  |  |
//	    +--+--+--+
//	       |  |  |
//	       +--+--+
//	           ...
//
// Each square is one label in ℤ; crossing an edge shifts the label by ±1
// depending on the parity of label+edge.
//
//	go get github.com/ldelanis/flatsurf
package flatsurf
