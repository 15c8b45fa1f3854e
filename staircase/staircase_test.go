package staircase_test

import (
	"testing"

	"github.com/ldelanis/flatsurf/staircase"
	"github.com/ldelanis/flatsurf/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOppositeEdge_ParityRule pins the documented spot values and the
// parity rule across negative labels.
func TestOppositeEdge_ParityRule(t *testing.T) {
	s := staircase.New()

	cases := []struct {
		p     int64
		e     int
		wantP int64
		wantE int
	}{
		{0, 0, -1, 2},
		{0, 1, 1, 3},
		{0, 2, -1, 0},
		{0, 3, 1, 1},
		{1, 0, 2, 2},
		{1, 1, 0, 3},
		{-1, 0, 0, 2},
		{-1, 1, -2, 3},
		{-2, 2, -3, 0},
	}
	for _, c := range cases {
		q, e, err := s.OppositeEdge(surface.IntLabel(c.p), c.e)
		require.NoError(t, err)
		assert.Equal(t, surface.IntLabel(c.wantP), q, "opposite of (%d,%d)", c.p, c.e)
		assert.Equal(t, c.wantE, e, "opposite edge of (%d,%d)", c.p, c.e)
	}

	_, _, err := s.OppositeEdge(surface.IntLabel(0), -1)
	assert.ErrorIs(t, err, surface.ErrInvalidEdge)
	_, _, err = s.OppositeEdge(surface.Word("L"), 0)
	assert.ErrorIs(t, err, surface.ErrInvalidLabel)
}

// TestPolygon_UnitSquares: every label carries the unit square.
func TestPolygon_UnitSquares(t *testing.T) {
	s := staircase.New()
	f := s.Field()

	for _, n := range []int64{-5, 0, 17} {
		p, err := s.Polygon(surface.IntLabel(n))
		require.NoError(t, err)
		assert.Equal(t, 4, p.Sides())
		assert.True(t, p.Area().Equal(f.One()), "square %d has area 1", n)
	}
}

// TestInvolution_Bounded: the parity rule is a fixed-point-free
// involution on a deep walk.
func TestInvolution_Bounded(t *testing.T) {
	require.NoError(t, surface.CheckInvolution(staircase.New(), 50))
}

// TestOrigamiConstruction_Agrees: the origami-built staircase answers
// every query exactly like the direct construction.
func TestOrigamiConstruction_Agrees(t *testing.T) {
	direct := staircase.New()
	origami, err := staircase.NewOrigami()
	require.NoError(t, err)

	assert.Equal(t, direct.Name(), origami.Name())
	assert.False(t, origami.IsFinite())

	for p := int64(-10); p <= 10; p++ {
		for e := 0; e < 4; e++ {
			q1, e1, err := direct.OppositeEdge(surface.IntLabel(p), e)
			require.NoError(t, err)
			q2, e2, err := origami.OppositeEdge(surface.IntLabel(p), e)
			require.NoError(t, err)
			assert.Equal(t, q1, q2, "labels at (%d,%d)", p, e)
			assert.Equal(t, e1, e2, "edges at (%d,%d)", p, e)
		}
	}

	require.NoError(t, surface.CheckInvolution(origami, 50))
}

// TestDescriptor_Metadata: base label, finiteness, label space.
func TestDescriptor_Metadata(t *testing.T) {
	s := staircase.New()
	assert.Equal(t, surface.IntLabel(0), s.BaseLabel())
	assert.False(t, s.IsFinite())
	assert.True(t, s.LabelSpace().Contains(surface.IntLabel(-100)))
	assert.Equal(t, "The infinite staircase", s.Name())
	assert.Equal(t, "QQ", s.Field().Name())
}
