// Package surface - labels, edge identifiers, sentinel errors.
package surface

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors shared by every descriptor implementation.
var (
	// ErrInvalidLabel indicates a label outside the descriptor's label space.
	ErrInvalidLabel = errors.New("surface: label not in label space")

	// ErrInvalidEdge indicates an edge index outside [0, sides).
	ErrInvalidEdge = errors.New("surface: edge index out of range")

	// ErrInvalidParameter indicates a construction parameter outside its
	// required domain.
	ErrInvalidParameter = errors.New("surface: invalid parameter")

	// ErrMalformedGluing indicates a gluing table that is not a total,
	// fixed-point-free involution over the finite edge set.
	ErrMalformedGluing = errors.New("surface: gluing is not a fixed-point-free involution")

	// ErrNotInvolution is reported by CheckInvolution when applying the
	// gluing twice does not return to the starting edge.
	ErrNotInvolution = errors.New("surface: opposite_edge is not an involution")

	// ErrFixedEdge is reported by CheckInvolution when an edge is glued
	// to itself.
	ErrFixedEdge = errors.New("surface: edge glued to itself")
)

// Label identifies one polygon instance of a surface. The concrete
// variants (IntLabel, Word, WordTag) are all comparable, so Label values
// can key Go maps directly. The set of variants is closed.
type Label interface {
	fmt.Stringer
	isLabel()
}

// IntLabel is a label in ℤ.
type IntLabel int64

func (IntLabel) isLabel() {}

// String implements fmt.Stringer.
func (p IntLabel) String() string { return strconv.FormatInt(int64(p), 10) }

// Letter is one symbol of the {L, R} alphabet indexing recursive
// subdivision trees.
type Letter byte

// The two letters of the word alphabet.
const (
	L Letter = 'L'
	R Letter = 'R'
)

// Word is a finite word over {L, R}, the empty word included. The zero
// value is the empty word. Words are built by Append and shrunk by
// Parent; both are pure.
type Word string

func (Word) isLabel() {}

// Epsilon is the empty word.
const Epsilon Word = ""

// IsEmpty reports whether w is the empty word.
func (w Word) IsEmpty() bool { return len(w) == 0 }

// Len returns the number of letters in w.
func (w Word) Len() int { return len(w) }

// Last returns the final letter of w; ok is false for the empty word.
func (w Word) Last() (Letter, bool) {
	if len(w) == 0 {
		return 0, false
	}
	return Letter(w[len(w)-1]), true
}

// Parent returns w with its final letter stripped; the empty word is its
// own parent.
func (w Word) Parent() Word {
	if len(w) == 0 {
		return w
	}
	return w[:len(w)-1]
}

// Append returns w extended by one letter.
func (w Word) Append(l Letter) Word { return w + Word(l) }

// Valid reports whether every letter of w is L or R.
func (w Word) Valid() bool {
	for i := 0; i < len(w); i++ {
		if w[i] != byte(L) && w[i] != byte(R) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer; the empty word prints as "ε".
func (w Word) String() string {
	if len(w) == 0 {
		return "ε"
	}
	return string(w)
}

// WordTag is the product label (Word, Tag) used by tree-indexed surfaces:
// the word addresses a subdivision cell, the tag one of finitely many
// polygons inside it.
type WordTag struct {
	W   Word
	Tag int
}

func (WordTag) isLabel() {}

// String implements fmt.Stringer.
func (p WordTag) String() string { return fmt.Sprintf("(%s, %d)", p.W, p.Tag) }

// EdgeID addresses one directed edge of a surface: polygon label plus
// edge index within that polygon.
type EdgeID struct {
	Label Label
	Edge  int
}

// String implements fmt.Stringer.
func (e EdgeID) String() string { return fmt.Sprintf("(%s, %d)", e.Label, e.Edge) }
