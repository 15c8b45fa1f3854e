// Package field - dense univariate polynomial arithmetic over ℚ.
//
// Polynomials are coefficient slices indexed by degree, kept trimmed so the
// leading coefficient is nonzero (the zero polynomial is the empty slice).
// These helpers back NumberField reduction, inversion and sign refinement.
package field

import "math/big"

// ratsZero reports whether every coefficient of p is zero.
func ratsZero(p []*big.Rat) bool {
	for _, c := range p {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// polyTrim drops trailing zero coefficients.
func polyTrim(p []*big.Rat) []*big.Rat {
	n := len(p)
	for n > 0 && p[n-1].Sign() == 0 {
		n--
	}
	return p[:n]
}

// polyClone deep-copies p.
func polyClone(p []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(p))
	for i, c := range p {
		out[i] = new(big.Rat).Set(c)
	}
	return out
}

// polySub returns a − b, trimmed.
func polySub(a, b []*big.Rat) []*big.Rat {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = new(big.Rat)
		if i < len(a) {
			out[i].Set(a[i])
		}
		if i < len(b) {
			out[i].Sub(out[i], b[i])
		}
	}
	return polyTrim(out)
}

// polyMul returns a · b, trimmed.
func polyMul(a, b []*big.Rat) []*big.Rat {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]*big.Rat, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	t := new(big.Rat)
	for i, ca := range a {
		if ca.Sign() == 0 {
			continue
		}
		for j, cb := range b {
			out[i+j].Add(out[i+j], t.Mul(ca, cb))
		}
	}
	return polyTrim(out)
}

// polyScale returns c · p, trimmed.
func polyScale(p []*big.Rat, c *big.Rat) []*big.Rat {
	if c.Sign() == 0 {
		return nil
	}
	out := make([]*big.Rat, len(p))
	for i, pc := range p {
		out[i] = new(big.Rat).Mul(pc, c)
	}
	return polyTrim(out)
}

// polyDivMod returns quotient and remainder of a by b (b nonzero, trimmed).
func polyDivMod(a, b []*big.Rat) (q, r []*big.Rat) {
	r = polyClone(a)
	r = polyTrim(r)
	if len(r) < len(b) {
		return nil, r
	}
	q = make([]*big.Rat, len(r)-len(b)+1)
	for i := range q {
		q[i] = new(big.Rat)
	}
	inv := new(big.Rat).Inv(b[len(b)-1])
	t := new(big.Rat)
	for len(r) >= len(b) {
		d := len(r) - len(b)
		c := new(big.Rat).Mul(r[len(r)-1], inv)
		q[d].Set(c)
		// r -= c * x^d * b
		for j, cb := range b {
			r[d+j].Sub(r[d+j], t.Mul(c, cb))
		}
		r = polyTrim(r)
	}
	return q, r
}

// polyEval evaluates p at the rational point x by Horner's rule.
func polyEval(p []*big.Rat, x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(p) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p[i])
	}
	return acc
}

// ratInterval is a closed rational interval [Lo, Hi].
type ratInterval struct {
	Lo, Hi *big.Rat
}

// mulPoint returns the interval iv · [x, x] ... both endpoint products,
// ordered.
func (iv ratInterval) mulInterval(other ratInterval) ratInterval {
	p1 := new(big.Rat).Mul(iv.Lo, other.Lo)
	p2 := new(big.Rat).Mul(iv.Lo, other.Hi)
	p3 := new(big.Rat).Mul(iv.Hi, other.Lo)
	p4 := new(big.Rat).Mul(iv.Hi, other.Hi)
	lo, hi := p1, p1
	for _, p := range []*big.Rat{p2, p3, p4} {
		if p.Cmp(lo) < 0 {
			lo = p
		}
		if p.Cmp(hi) > 0 {
			hi = p
		}
	}
	return ratInterval{Lo: lo, Hi: hi}
}

// addConst returns iv shifted by the rational c.
func (iv ratInterval) addConst(c *big.Rat) ratInterval {
	return ratInterval{
		Lo: new(big.Rat).Add(iv.Lo, c),
		Hi: new(big.Rat).Add(iv.Hi, c),
	}
}

// polyEvalInterval evaluates p over the interval x by interval Horner:
// the result encloses {p(t) : t ∈ x}.
func polyEvalInterval(p []*big.Rat, x ratInterval) ratInterval {
	acc := ratInterval{Lo: new(big.Rat), Hi: new(big.Rat)}
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc.mulInterval(x).addConst(p[i])
	}
	return acc
}
