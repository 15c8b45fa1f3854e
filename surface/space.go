// Package surface - label spaces: membership for all, enumeration for
// finite spaces only.
package surface

// LabelSpace is the index domain of a surface's polygons.
//
// Infinite spaces support membership only; Labels returns nil for them.
// Finite spaces additionally enumerate their members in a fixed order.
type LabelSpace interface {
	// Contains reports whether l belongs to the space.
	Contains(l Label) bool

	// IsFinite reports whether the space can be enumerated.
	IsFinite() bool

	// Labels enumerates a finite space in a fixed order; nil for
	// infinite spaces.
	Labels() []Label
}

// Integers returns the label space ℤ: every IntLabel is a member.
func Integers() LabelSpace { return intSpace{} }

type intSpace struct{}

func (intSpace) Contains(l Label) bool {
	_, ok := l.(IntLabel)
	return ok
}

func (intSpace) IsFinite() bool  { return false }
func (intSpace) Labels() []Label { return nil }

// Words returns the space of all finite {L,R} words, the empty word
// included.
func Words() LabelSpace { return wordSpace{} }

type wordSpace struct{}

func (wordSpace) Contains(l Label) bool {
	w, ok := l.(Word)
	return ok && w.Valid()
}

func (wordSpace) IsFinite() bool  { return false }
func (wordSpace) Labels() []Label { return nil }

// WordTags returns the product space Words × {0, …, tags−1}.
func WordTags(tags int) LabelSpace { return wordTagSpace{tags: tags} }

type wordTagSpace struct {
	tags int
}

func (s wordTagSpace) Contains(l Label) bool {
	p, ok := l.(WordTag)
	return ok && p.W.Valid() && p.Tag >= 0 && p.Tag < s.tags
}

func (wordTagSpace) IsFinite() bool  { return false }
func (wordTagSpace) Labels() []Label { return nil }

// FiniteInts returns the finite space {0, …, n−1} ⊂ ℤ.
func FiniteInts(n int) LabelSpace { return finiteIntSpace{n: n} }

type finiteIntSpace struct {
	n int
}

func (s finiteIntSpace) Contains(l Label) bool {
	p, ok := l.(IntLabel)
	return ok && p >= 0 && int64(p) < int64(s.n)
}

func (s finiteIntSpace) IsFinite() bool { return true }

func (s finiteIntSpace) Labels() []Label {
	out := make([]Label, s.n)
	for i := 0; i < s.n; i++ {
		out[i] = IntLabel(i)
	}
	return out
}
