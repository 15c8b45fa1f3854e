package chamanara_test

import (
	"fmt"
	"testing"

	"github.com/ldelanis/flatsurf/chamanara"
	"github.com/ldelanis/flatsurf/field"
	"github.com/ldelanis/flatsurf/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// half returns α = 1/2 over ℚ.
func half(t *testing.T) (field.Field, field.Element) {
	t.Helper()
	f := field.Q()
	a, err := f.FromRat(1, 2)
	require.NoError(t, err)
	return f, a
}

// TestNew_ParameterDomain: α must lie strictly inside (0,1).
func TestNew_ParameterDomain(t *testing.T) {
	f := field.Q()

	for _, bad := range []struct {
		num, den int64
		why      string
	}{
		{0, 1, "alpha=0"},
		{1, 1, "alpha=1"},
		{-1, 2, "alpha<0"},
		{3, 2, "alpha>1"},
	} {
		a, err := f.FromRat(bad.num, bad.den)
		require.NoError(t, err)
		_, err = chamanara.New(f, a)
		assert.ErrorIs(t, err, surface.ErrInvalidParameter, bad.why)
	}

	_, err := chamanara.New(nil, f.One())
	assert.ErrorIs(t, err, surface.ErrInvalidParameter, "nil field")
	_, err = chamanara.New(f, nil)
	assert.ErrorIs(t, err, surface.ErrInvalidParameter, "nil alpha")
}

// TestBasePolygon_Half: with α = 1/2 we get x = 2 and the edge vectors
// (1,0), (−2,2), (0,−1), (1,−1), i.e. vertices
// (0,0), (1,0), (−1,2), (−1,1).
func TestBasePolygon_Half(t *testing.T) {
	f, a := half(t)
	s, err := chamanara.New(f, a)
	require.NoError(t, err)

	p, err := s.Polygon(surface.IntLabel(0))
	require.NoError(t, err)
	require.Equal(t, 4, p.Sides())

	wantEdges := [][2]int64{{1, 0}, {-2, 2}, {0, -1}, {1, -1}}
	for i, w := range wantEdges {
		e, err := p.Edge(i)
		require.NoError(t, err)
		assert.True(t, e.X.Equal(f.FromInt(w[0])) && e.Y.Equal(f.FromInt(w[1])),
			"edge %d must be (%d,%d), got %s", i, w[0], w[1], e)
	}

	wantVerts := [][2]int64{{0, 0}, {1, 0}, {-1, 2}, {-1, 1}}
	verts := p.Vertices()
	for i, w := range wantVerts {
		assert.True(t, verts[i].X.Equal(f.FromInt(w[0])) && verts[i].Y.Equal(f.FromInt(w[1])),
			"vertex %d must be (%d,%d), got %s", i, w[0], w[1], verts[i])
	}
}

// TestPolygon_SharedShape: every label carries the same quadrilateral.
func TestPolygon_SharedShape(t *testing.T) {
	f, a := half(t)
	s, err := chamanara.New(f, a)
	require.NoError(t, err)

	p0, err := s.Polygon(surface.IntLabel(0))
	require.NoError(t, err)
	p7, err := s.Polygon(surface.IntLabel(-7))
	require.NoError(t, err)
	assert.True(t, p0.Equal(p7), "labeled copies share one shape")

	_, err = s.Polygon(surface.Word("L"))
	assert.ErrorIs(t, err, surface.ErrInvalidLabel)
}

// TestOppositeEdge_ThreeWayBranch pins the non-uniform combinatorics:
// the strictly-negative, strictly-greater-than-one and boundary branches
// of edges 1 and 3, plus the uniform reflection on edges 0 and 2.
func TestOppositeEdge_ThreeWayBranch(t *testing.T) {
	f, a := half(t)
	s, err := chamanara.New(f, a)
	require.NoError(t, err)

	cases := []struct {
		p     int64
		e     int
		wantP int64
		wantE int
	}{
		// Edges 0 and 2 always reflect p ↦ 1−p.
		{0, 0, 1, 0}, {5, 0, -4, 0}, {-3, 2, 4, 2},
		// Edge 1, boundary labels 0 and 1 reflect onto edge 1.
		{0, 1, 1, 1}, {1, 1, 0, 1},
		// Edge 1 off the boundary walks toward it.
		{-2, 1, -1, 3}, {4, 1, 3, 3},
		// Edge 3 walks away from the boundary.
		{0, 3, -1, 1}, {-5, 3, -6, 1}, {1, 3, 2, 1}, {6, 3, 7, 1},
	}
	for _, c := range cases {
		q, e, err := s.OppositeEdge(surface.IntLabel(c.p), c.e)
		require.NoError(t, err)
		assert.Equal(t, surface.IntLabel(c.wantP), q, "opposite of (%d,%d)", c.p, c.e)
		assert.Equal(t, c.wantE, e, "opposite edge of (%d,%d)", c.p, c.e)
	}

	_, _, err = s.OppositeEdge(surface.IntLabel(0), 4)
	assert.ErrorIs(t, err, surface.ErrInvalidEdge)
}

// TestInvolution_Bounded: depth-50 walk from the base label.
func TestInvolution_Bounded(t *testing.T) {
	f, a := half(t)
	s, err := chamanara.New(f, a)
	require.NoError(t, err)
	require.NoError(t, surface.CheckInvolution(s, 50))
}

// TestGlueSequence walks edge 3 repeatedly: 0, −1, −2, … toward the
// negative end.
func TestGlueSequence(t *testing.T) {
	f, a := half(t)
	s, err := chamanara.New(f, a)
	require.NoError(t, err)

	seq, err := s.GlueSequence(4)
	require.NoError(t, err)
	require.Len(t, seq, 5)
	want := []int64{0, -1, -2, -3, -4}
	for i, l := range seq {
		assert.Equal(t, surface.IntLabel(want[i]), l)
	}

	_, err = s.GlueSequence(-1)
	assert.ErrorIs(t, err, surface.ErrInvalidParameter)
}

// TestTranslationSurface_CoverHook: the cover is applied to the built
// descriptor; a nil cover is rejected.
func TestTranslationSurface_CoverHook(t *testing.T) {
	f, a := half(t)

	var got surface.Descriptor
	cover := func(d surface.Descriptor) (surface.Descriptor, error) {
		got = d
		return d, nil
	}
	d, err := chamanara.TranslationSurface(f, a, cover)
	require.NoError(t, err)
	assert.Same(t, got, d, "the hook's output is returned unchanged")
	assert.Equal(t, "Chamanara surface with parameter 1/2", got.Name())

	_, err = chamanara.TranslationSurface(f, a, nil)
	assert.ErrorIs(t, err, surface.ErrInvalidParameter)

	wantErr := fmt.Errorf("no cover available")
	_, err = chamanara.TranslationSurface(f, a, func(surface.Descriptor) (surface.Descriptor, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr, "cover errors propagate")
}
