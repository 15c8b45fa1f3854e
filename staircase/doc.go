// Package staircase implements the infinite staircase: unit squares
// indexed by ℤ, climbing diagonally forever.
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
// Crossing edge e of square p lands in square p+1 when p+e is odd and
// square p−1 when p+e is even, always on edge (e+2) mod 4. The same
// surface also arises as an origami over ℤ with parity-shift
// permutations; NewOrigami builds that second construction, and the two
// agree query for query.
//
// Errors: surface.ErrInvalidLabel, surface.ErrInvalidEdge.
package staircase
