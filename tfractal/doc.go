// Package tfractal implements the T-fractal translation surface: a finite
// "trunk" of four rectangles repeated, scaled by 1/r, inside each of the
// infinitely many {L,R}-indexed subdivision cells.
//
// The building block at word w (all widths scaled by r^(−|w|)):
//
//	 w/r    w     w/r
//	+---+------+---+
//	| 1 |   2  | 3 | h2
//	+---+------+---+
//	    |   0  | h1
//	    +------+
//	        w
//
// Labels are (word, tag) pairs with tag ∈ {0,1,2,3}; the surface for
// default parameters w=h1=h2=1, r=2 has finite area 4.
//
// The gluing is a 16-case table over (tag, edge). Three behaviors recur:
// pure reindexing within one word (the 0↔2 vertical pairs, the 1/3 side
// pairs), recursive descent appending L or R when crossing from tag 1 or
// 3 into the child cell, and recursive ascent stripping the last letter
// when leaving through the top of tag 2 or the bottom of tag 0. At the
// empty word there is no parent: those two cases instead close up within
// the base cell (bottom of tag 0 meets top of tag 2), anchoring the
// trunk. Every crossing composes with the edge flip (e+2) mod 4.
//
// Errors: surface.ErrInvalidParameter (non-positive w, r, h1, h2 or nil
// field), surface.ErrInvalidLabel, surface.ErrInvalidEdge.
package tfractal
