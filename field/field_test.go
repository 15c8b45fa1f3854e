package field_test

import (
	"math/big"
	"testing"

	"github.com/ldelanis/flatsurf/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRationals_Arithmetic exercises the ℚ capability end to end:
// embeddings, the four operations, signs and comparisons.
func TestRationals_Arithmetic(t *testing.T) {
	f := field.Q()

	half, err := f.FromRat(1, 2)
	require.NoError(t, err, "1/2 is a valid rational")
	third, err := f.FromRat(1, 3)
	require.NoError(t, err)

	sum := half.Add(third)
	want, err := f.FromRat(5, 6)
	require.NoError(t, err)
	assert.True(t, sum.Equal(want), "1/2 + 1/3 must equal 5/6")

	assert.True(t, half.Mul(third).Equal(mustRat(t, f, 1, 6)), "1/2 * 1/3 = 1/6")
	assert.True(t, half.Sub(third).Equal(mustRat(t, f, 1, 6)), "1/2 - 1/3 = 1/6")

	q, err := half.Div(third)
	require.NoError(t, err)
	assert.True(t, q.Equal(mustRat(t, f, 3, 2)), "(1/2)/(1/3) = 3/2")

	assert.Equal(t, 1, half.Sign(), "1/2 is positive")
	assert.Equal(t, -1, half.Neg().Sign(), "-1/2 is negative")
	assert.Equal(t, 0, f.Zero().Sign(), "0 has sign 0")
	assert.Equal(t, -1, third.Cmp(half), "1/3 < 1/2")
	assert.True(t, f.Zero().IsZero())
	assert.False(t, f.One().IsZero())
	assert.Equal(t, "3/2", q.String())
}

// TestRationals_Errors covers the zero-denominator and zero-divisor
// failure modes.
func TestRationals_Errors(t *testing.T) {
	f := field.Q()

	_, err := f.FromRat(1, 0)
	assert.ErrorIs(t, err, field.ErrZeroDenominator, "den=0 must error")

	_, err = f.One().Div(f.Zero())
	assert.ErrorIs(t, err, field.ErrDivisionByZero, "division by zero must error")
}

// TestNumberField_Sqrt2 verifies the defining relation, exact equality,
// inversion, and sign decisions in ℚ(√2).
func TestNumberField_Sqrt2(t *testing.T) {
	f := field.Sqrt2()
	s := f.Gen()

	assert.Equal(t, 2, f.Degree())
	assert.True(t, s.Mul(s).Equal(f.FromInt(2)), "√2 · √2 must equal 2")

	// 1 + √2 times its inverse is 1.
	a := f.One().Add(s)
	inv, err := f.One().Div(a)
	require.NoError(t, err)
	assert.True(t, a.Mul(inv).Equal(f.One()), "a · a⁻¹ must be 1")

	// Conjugate product: (√2−1)(√2+1) = 1.
	b := s.Sub(f.One())
	prod := b.Mul(s.Add(f.One()))
	assert.True(t, prod.Equal(f.One()), "(√2−1)(√2+1) = 1")

	// Sign decisions that force bracket refinement: 1.41 < √2 < 1.42.
	low, err := f.FromRat(141, 100)
	require.NoError(t, err)
	high, err := f.FromRat(142, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Cmp(low), "√2 > 1.41")
	assert.Equal(t, -1, s.Cmp(high), "√2 < 1.42")
	assert.Equal(t, 1, s.Sign(), "the pinned root is the positive one")
	assert.Equal(t, 0, f.Zero().Sign())
}

// TestNumberField_Cubic pins the E-infinity modulus x³−5x²+4x−1 on (4,5)
// and checks the defining relation plus a tight rational separation.
func TestNumberField_Cubic(t *testing.T) {
	f, err := field.NewNumberField("QQ(l)", "l",
		[]*big.Rat{big.NewRat(-1, 1), big.NewRat(4, 1), big.NewRat(-5, 1), big.NewRat(1, 1)},
		big.NewRat(4, 1), big.NewRat(5, 1))
	require.NoError(t, err)

	l := f.Gen()
	// l³ − 5l² + 4l − 1 = 0.
	rel := l.Mul(l).Mul(l).
		Sub(f.FromInt(5).Mul(l.Mul(l))).
		Add(f.FromInt(4).Mul(l)).
		Sub(f.One())
	assert.True(t, rel.IsZero(), "the generator must satisfy its modulus")

	// The root in (4,5) is ≈ 4.0796; separate it from 4.07 and 4.08.
	assert.Equal(t, 1, l.Cmp(mustRat(t, f, 407, 100)), "l > 4.07")
	assert.Equal(t, -1, l.Cmp(mustRat(t, f, 408, 100)), "l < 4.08")

	inv, err := f.One().Div(l)
	require.NoError(t, err)
	assert.True(t, inv.Mul(l).Equal(f.One()), "l · l⁻¹ = 1")

	_, err = f.One().Div(f.Zero())
	assert.ErrorIs(t, err, field.ErrDivisionByZero)
}

// TestNumberField_ConstructionErrors covers bad moduli and bad brackets.
func TestNumberField_ConstructionErrors(t *testing.T) {
	one := big.NewRat(1, 1)
	two := big.NewRat(2, 1)

	// Degree 1 modulus.
	_, err := field.NewNumberField("bad", "x", []*big.Rat{one, one}, one, two)
	assert.ErrorIs(t, err, field.ErrBadModulus, "degree-1 modulus must be rejected")

	// Non-monic modulus.
	_, err = field.NewNumberField("bad", "x",
		[]*big.Rat{big.NewRat(-2, 1), new(big.Rat), two}, one, two)
	assert.ErrorIs(t, err, field.ErrBadModulus, "non-monic modulus must be rejected")

	// x²−2 has no sign change on (3, 4).
	_, err = field.NewNumberField("bad", "x",
		[]*big.Rat{big.NewRat(-2, 1), new(big.Rat), one},
		big.NewRat(3, 1), big.NewRat(4, 1))
	assert.ErrorIs(t, err, field.ErrNoRootInBracket, "bracket without a root must be rejected")

	// Inverted bracket.
	_, err = field.NewNumberField("bad", "x",
		[]*big.Rat{big.NewRat(-2, 1), new(big.Rat), one}, two, one)
	assert.ErrorIs(t, err, field.ErrNoRootInBracket, "lo ≥ hi must be rejected")
}

// TestMixedFields_Panics documents the cross-field misuse contract.
func TestMixedFields_Panics(t *testing.T) {
	q := field.Q()
	s := field.Sqrt2()

	assert.Panics(t, func() { q.One().Add(s.One()) }, "QQ + QQ(sqrt2) must panic")
	assert.Panics(t, func() { s.One().Add(q.One()) }, "QQ(sqrt2) + QQ must panic")
}

// TestNumberField_String renders a mixed-degree element.
func TestNumberField_String(t *testing.T) {
	f := field.Sqrt2()
	e := f.FromInt(3).Add(f.FromInt(2).Mul(f.Gen()))
	assert.Equal(t, "3 + 2*sqrt2", e.String())
	assert.Equal(t, "0", f.Zero().String())
}

// mustRat embeds num/den into f or fails the test.
func mustRat(t *testing.T, f field.Field, num, den int64) field.Element {
	t.Helper()
	v, err := f.FromRat(num, den)
	require.NoError(t, err)
	return v
}
