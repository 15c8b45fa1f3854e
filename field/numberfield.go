// Package field - real algebraic number fields ℚ[x]/(m(x)).
package field

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
)

// NumberField is ℚ[x]/(m(x)) for a monic irreducible modulus m, with the
// generator identified with one real root of m, pinned by a rational
// bracket [lo, hi] on which m changes sign.
//
// Arithmetic (Add/Sub/Mul/Div/Equal) is purely symbolic and never consults
// the bracket. Sign and Cmp refine the bracket by bisection until interval
// evaluation separates the value from zero; the refined bracket is shared
// by all elements of the field, under a mutex, so each refinement pays off
// for every later comparison.
//
// Irreducibility of m is a precondition, not something this type verifies:
// with a reducible modulus, Div may hit a zero divisor and Sign may fail to
// terminate on a nonzero zero-divisor element.
type NumberField struct {
	name string
	gen  string
	deg  int
	mod  []*big.Rat // coefficients of m, length deg+1, mod[deg] == 1

	mu sync.Mutex
	lo *big.Rat // m(lo) and m(hi) have opposite signs
	hi *big.Rat
}

// NewNumberField builds ℚ[x]/(m(x)) with the generator printed as gen and
// pinned to the unique root of m inside the bracket (lo, hi).
//
// modulus lists the coefficients of m by increasing degree and must be
// monic of degree ≥ 2 (ErrBadModulus). m must change sign between lo and
// hi (ErrNoRootInBracket). All inputs are copied.
func NewNumberField(name, gen string, modulus []*big.Rat, lo, hi *big.Rat) (*NumberField, error) {
	if len(modulus) < 3 || modulus[len(modulus)-1].Cmp(big.NewRat(1, 1)) != 0 {
		return nil, ErrBadModulus
	}
	if lo == nil || hi == nil || lo.Cmp(hi) >= 0 {
		return nil, ErrNoRootInBracket
	}
	mod := polyClone(modulus)
	if polyEval(mod, lo).Sign()*polyEval(mod, hi).Sign() >= 0 {
		return nil, ErrNoRootInBracket
	}
	return &NumberField{
		name: name,
		gen:  gen,
		deg:  len(mod) - 1,
		mod:  mod,
		lo:   new(big.Rat).Set(lo),
		hi:   new(big.Rat).Set(hi),
	}, nil
}

// Sqrt2 returns ℚ(√2) = ℚ[x]/(x²−2) with the generator at the positive
// root. Used by the regular-octagon constructions.
func Sqrt2() *NumberField {
	f, err := NewNumberField("QQ(sqrt2)", "sqrt2",
		[]*big.Rat{big.NewRat(-2, 1), new(big.Rat), big.NewRat(1, 1)},
		big.NewRat(1, 1), big.NewRat(2, 1))
	if err != nil {
		panic(err) // fixed parameters; cannot fail
	}
	return f
}

// Degree returns the degree of the field over ℚ.
func (f *NumberField) Degree() int { return f.deg }

// Gen returns the generator (the pinned root of the modulus).
func (f *NumberField) Gen() Element {
	c := zeroCoeffs(f.deg)
	c[1] = big.NewRat(1, 1)
	return algElem{f: f, c: c}
}

// Zero implements Field.
func (f *NumberField) Zero() Element { return algElem{f: f, c: zeroCoeffs(f.deg)} }

// One implements Field.
func (f *NumberField) One() Element {
	c := zeroCoeffs(f.deg)
	c[0] = big.NewRat(1, 1)
	return algElem{f: f, c: c}
}

// FromInt implements Field.
func (f *NumberField) FromInt(n int64) Element {
	c := zeroCoeffs(f.deg)
	c[0] = big.NewRat(n, 1)
	return algElem{f: f, c: c}
}

// FromRat implements Field.
func (f *NumberField) FromRat(num, den int64) (Element, error) {
	if den == 0 {
		return nil, ErrZeroDenominator
	}
	c := zeroCoeffs(f.deg)
	c[0] = big.NewRat(num, den)
	return algElem{f: f, c: c}, nil
}

// Name implements Field.
func (f *NumberField) Name() string { return f.name }

// signOf decides the exact sign of the residue c at the pinned root.
// Bisects the shared bracket until interval evaluation is decisive.
func (f *NumberField) signOf(c []*big.Rat) int {
	if ratsZero(c) {
		return 0
	}
	p := polyTrim(c)
	f.mu.Lock()
	defer f.mu.Unlock()
	half := big.NewRat(1, 2)
	for {
		iv := polyEvalInterval(p, ratInterval{Lo: f.lo, Hi: f.hi})
		if iv.Lo.Sign() > 0 {
			return 1
		}
		if iv.Hi.Sign() < 0 {
			return -1
		}
		// Bisect the root bracket and keep the sign-changing half.
		mid := new(big.Rat).Add(f.lo, f.hi)
		mid.Mul(mid, half)
		if polyEval(f.mod, mid).Sign() == polyEval(f.mod, f.lo).Sign() {
			f.lo = mid
		} else {
			f.hi = mid
		}
	}
}

// reduce takes raw coefficients of any degree and reduces them mod m into
// a residue of length f.deg.
func (f *NumberField) reduce(raw []*big.Rat) []*big.Rat {
	_, r := polyDivMod(raw, f.mod)
	out := zeroCoeffs(f.deg)
	for i, c := range r {
		out[i] = new(big.Rat).Set(c)
	}
	return out
}

// zeroCoeffs allocates a residue of n fresh zeros.
func zeroCoeffs(n int) []*big.Rat {
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = new(big.Rat)
	}
	return out
}

// algElem is an element of a NumberField: the residue c₀ + c₁·θ + … with
// a fixed coefficient slice of length f.deg. Immutable.
type algElem struct {
	f *NumberField
	c []*big.Rat
}

// sameField unwraps other or panics on a cross-field operand.
func (a algElem) sameField(other Element) algElem {
	b, ok := other.(algElem)
	if !ok || b.f != a.f {
		panic(fmt.Sprintf("field: mixed-field operation: %s with %T", a.f.name, other))
	}
	return b
}

// Add implements Element.
func (a algElem) Add(other Element) Element {
	b := a.sameField(other)
	out := make([]*big.Rat, a.f.deg)
	for i := range out {
		out[i] = new(big.Rat).Add(a.c[i], b.c[i])
	}
	return algElem{f: a.f, c: out}
}

// Sub implements Element.
func (a algElem) Sub(other Element) Element {
	b := a.sameField(other)
	out := make([]*big.Rat, a.f.deg)
	for i := range out {
		out[i] = new(big.Rat).Sub(a.c[i], b.c[i])
	}
	return algElem{f: a.f, c: out}
}

// Mul implements Element.
func (a algElem) Mul(other Element) Element {
	b := a.sameField(other)
	return algElem{f: a.f, c: a.f.reduce(polyMul(a.c, b.c))}
}

// Div implements Element. Inversion runs the extended Euclidean algorithm
// against the modulus; ErrDivisionByZero when other == 0.
func (a algElem) Div(other Element) (Element, error) {
	b := a.sameField(other)
	if ratsZero(b.c) {
		return nil, ErrDivisionByZero
	}
	inv := b.f.invert(b.c)
	return algElem{f: a.f, c: a.f.reduce(polyMul(a.c, inv))}, nil
}

// invert returns the residue u with u·c ≡ 1 (mod m), c nonzero.
func (f *NumberField) invert(c []*big.Rat) []*big.Rat {
	// Extended Euclid on (m, c), tracking only the coefficient of c.
	r0, r1 := polyClone(f.mod), polyTrim(polyClone(c))
	var s0 []*big.Rat
	s1 := []*big.Rat{big.NewRat(1, 1)}
	for len(r1) > 0 {
		q, r := polyDivMod(r0, r1)
		r0, r1 = r1, r
		s0, s1 = s1, polySub(s0, polyMul(q, s1))
	}
	// r0 is a nonzero constant (m irreducible, c nonzero mod m).
	scale := new(big.Rat).Inv(r0[0])
	return f.reduce(polyScale(s0, scale))
}

// Neg implements Element.
func (a algElem) Neg() Element {
	out := make([]*big.Rat, a.f.deg)
	for i := range out {
		out[i] = new(big.Rat).Neg(a.c[i])
	}
	return algElem{f: a.f, c: out}
}

// Sign implements Element via bracket refinement.
func (a algElem) Sign() int { return a.f.signOf(a.c) }

// Cmp implements Element: the sign of a − other.
func (a algElem) Cmp(other Element) int {
	return a.Sub(other).(algElem).Sign()
}

// Equal implements Element: residues are canonical, so equality is
// coefficient-wise and never refines the bracket.
func (a algElem) Equal(other Element) bool {
	b := a.sameField(other)
	for i := range a.c {
		if a.c[i].Cmp(b.c[i]) != 0 {
			return false
		}
	}
	return true
}

// IsZero implements Element.
func (a algElem) IsZero() bool { return ratsZero(a.c) }

// String implements Element ("1 - 3*l + l^2" with gen name l).
func (a algElem) String() string {
	var terms []string
	for i, c := range a.c {
		if c.Sign() == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, c.RatString())
		case 1:
			terms = append(terms, c.RatString()+"*"+a.f.gen)
		default:
			terms = append(terms, fmt.Sprintf("%s*%s^%d", c.RatString(), a.f.gen, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
