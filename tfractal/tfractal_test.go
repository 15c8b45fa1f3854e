package tfractal_test

import (
	"testing"

	"github.com/ldelanis/flatsurf/field"
	"github.com/ldelanis/flatsurf/surface"
	"github.com/ldelanis/flatsurf/tfractal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wt builds a (word, tag) label.
func wt(w string, tag int) surface.WordTag {
	return surface.WordTag{W: surface.Word(w), Tag: tag}
}

// TestNew_Validation rejects non-positive parameters and a nil field.
func TestNew_Validation(t *testing.T) {
	f := field.Q()
	one := f.One()
	two := f.FromInt(2)

	_, err := tfractal.New(nil, one, two, one, one)
	assert.ErrorIs(t, err, surface.ErrInvalidParameter, "nil field must be rejected")

	_, err = tfractal.New(f, f.Zero(), two, one, one)
	assert.ErrorIs(t, err, surface.ErrInvalidParameter, "w=0 must be rejected")

	_, err = tfractal.New(f, one, f.FromInt(-2), one, one)
	assert.ErrorIs(t, err, surface.ErrInvalidParameter, "r<0 must be rejected")

	_, err = tfractal.New(f, one, two, f.Zero(), one)
	assert.ErrorIs(t, err, surface.ErrInvalidParameter, "h1=0 must be rejected")
}

// TestPolygon_BaseShapes: tags 0..3 at the empty word have the documented
// widths and heights.
func TestPolygon_BaseShapes(t *testing.T) {
	s := tfractal.Default()

	cases := []struct {
		tag  int
		wantW, wantH string
	}{
		{0, "1", "1"},
		{1, "1/2", "1"},
		{2, "1", "1"},
		{3, "1/2", "1"},
	}
	for _, c := range cases {
		p, err := s.Polygon(wt("", c.tag))
		require.NoError(t, err)
		bottom, err := p.Edge(0)
		require.NoError(t, err)
		left, err := p.Edge(1)
		require.NoError(t, err)
		assert.Equal(t, c.wantW, bottom.X.String(), "width of tag %d", c.tag)
		assert.Equal(t, c.wantH, left.Y.String(), "height of tag %d", c.tag)
	}

	_, err := s.Polygon(wt("", 4))
	assert.ErrorIs(t, err, surface.ErrInvalidLabel, "tag 4 is outside the space")
	_, err = s.Polygon(surface.IntLabel(0))
	assert.ErrorIs(t, err, surface.ErrInvalidLabel)
}

// TestPolygon_RecursiveScaling: at word LRL the tag-0 rectangle has width
// 1/8 and area 1/64 under the default parameters — three levels of
// recursion, each scaling lengths by 1/r = 1/2.
func TestPolygon_RecursiveScaling(t *testing.T) {
	s := tfractal.Default()
	f := s.Field()

	p, err := s.Polygon(wt("LRL", 0))
	require.NoError(t, err)

	bottom, err := p.Edge(0)
	require.NoError(t, err)
	assert.True(t, bottom.X.Equal(mustRat(t, f, 1, 8)), "width must be 1/8")
	assert.True(t, p.Area().Equal(mustRat(t, f, 1, 64)), "area must be 1/64")

	base, err := s.Polygon(wt("", 0))
	require.NoError(t, err)
	scale := mustRat(t, f, 1, 64)
	assert.True(t, p.Area().Equal(base.Area().Mul(scale)), "area scales by r^(-2·|w|)")
}

// TestOppositeEdge_EmptyWordBoundary: at the empty word the bottom of
// tag 0 and the top of tag 2 close the trunk instead of ascending.
func TestOppositeEdge_EmptyWordBoundary(t *testing.T) {
	s := tfractal.Default()

	q, e, err := s.OppositeEdge(wt("", 0), 0)
	require.NoError(t, err)
	assert.Equal(t, wt("", 2), q, "bottom of the trunk wraps to tag 2")
	assert.Equal(t, 2, e)

	q, e, err = s.OppositeEdge(wt("", 2), 2)
	require.NoError(t, err)
	assert.Equal(t, wt("", 0), q, "top of the trunk wraps to tag 0")
	assert.Equal(t, 0, e)
}

// TestOppositeEdge_AscentDescent: crossing into a child appends the
// letter, leaving a child strips it and lands on the matching side tag.
func TestOppositeEdge_AscentDescent(t *testing.T) {
	s := tfractal.Default()

	// Descent from tag 1 appends L; from tag 3 appends R.
	q, e, err := s.OppositeEdge(wt("R", 1), 0)
	require.NoError(t, err)
	assert.Equal(t, wt("RL", 2), q)
	assert.Equal(t, 2, e)

	q, e, err = s.OppositeEdge(wt("R", 3), 2)
	require.NoError(t, err)
	assert.Equal(t, wt("RR", 0), q)
	assert.Equal(t, 0, e)

	// Ascent from a word ending in L lands on tag 1, ending in R on tag 3.
	q, e, err = s.OppositeEdge(wt("RL", 0), 0)
	require.NoError(t, err)
	assert.Equal(t, wt("R", 1), q)
	assert.Equal(t, 2, e)

	q, e, err = s.OppositeEdge(wt("LR", 2), 2)
	require.NoError(t, err)
	assert.Equal(t, wt("L", 3), q)
	assert.Equal(t, 0, e)
}

// TestOppositeEdge_FullTableInvolution: every (tag, edge) case of the
// 16-case table is involutive over a bounded walk.
func TestOppositeEdge_FullTableInvolution(t *testing.T) {
	require.NoError(t, surface.CheckInvolution(tfractal.Default(), 8))
}

// TestOppositeEdge_Errors covers bad labels and edges.
func TestOppositeEdge_Errors(t *testing.T) {
	s := tfractal.Default()

	_, _, err := s.OppositeEdge(wt("", 0), 4)
	assert.ErrorIs(t, err, surface.ErrInvalidEdge)
	_, _, err = s.OppositeEdge(wt("LX", 0), 0)
	assert.ErrorIs(t, err, surface.ErrInvalidLabel, "invalid letters must be rejected")
	_, _, err = s.OppositeEdge(surface.IntLabel(3), 0)
	assert.ErrorIs(t, err, surface.ErrInvalidLabel)
}

// TestBaseLabel: the trunk's bottom rectangle at the empty word.
func TestBaseLabel(t *testing.T) {
	s := tfractal.Default()
	assert.Equal(t, wt("", 0), s.BaseLabel())
	assert.False(t, s.IsFinite())
	assert.Equal(t,
		"The T-fractal surface with parameters w=1, r=2, h1=1, h2=1",
		s.Name())
}

// mustRat embeds num/den into f or fails the test.
func mustRat(t *testing.T, f field.Field, num, den int64) field.Element {
	t.Helper()
	v, err := f.FromRat(num, den)
	require.NoError(t, err)
	return v
}
