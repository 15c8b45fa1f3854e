// Package field - the rational field ℚ on top of math/big.
package field

import (
	"fmt"
	"math/big"
)

// Rationals is the field ℚ. The zero value is ready to use; Q() reads
// better at call sites.
type Rationals struct{}

// Q returns the field of rational numbers.
func Q() Rationals { return Rationals{} }

// Zero returns 0 ∈ ℚ.
func (Rationals) Zero() Element { return Rat{v: new(big.Rat)} }

// One returns 1 ∈ ℚ.
func (Rationals) One() Element { return Rat{v: big.NewRat(1, 1)} }

// FromInt embeds n into ℚ.
func (Rationals) FromInt(n int64) Element { return Rat{v: big.NewRat(n, 1)} }

// FromRat returns num/den ∈ ℚ, or ErrZeroDenominator.
func (Rationals) FromRat(num, den int64) (Element, error) {
	if den == 0 {
		return nil, ErrZeroDenominator
	}
	return Rat{v: big.NewRat(num, den)}, nil
}

// Name implements Field.
func (Rationals) Name() string { return "QQ" }

// Rat is an element of ℚ. Immutable: operations never touch the wrapped
// big.Rat in place.
type Rat struct {
	v *big.Rat
}

// asRat unwraps other or panics on a cross-field operand.
func asRat(other Element) Rat {
	r, ok := other.(Rat)
	if !ok {
		panic(fmt.Sprintf("field: mixed-field operation: QQ with %T", other))
	}
	return r
}

// Add implements Element.
func (a Rat) Add(other Element) Element {
	return Rat{v: new(big.Rat).Add(a.v, asRat(other).v)}
}

// Sub implements Element.
func (a Rat) Sub(other Element) Element {
	return Rat{v: new(big.Rat).Sub(a.v, asRat(other).v)}
}

// Mul implements Element.
func (a Rat) Mul(other Element) Element {
	return Rat{v: new(big.Rat).Mul(a.v, asRat(other).v)}
}

// Div implements Element; ErrDivisionByZero when other == 0.
func (a Rat) Div(other Element) (Element, error) {
	b := asRat(other)
	if b.v.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return Rat{v: new(big.Rat).Quo(a.v, b.v)}, nil
}

// Neg implements Element.
func (a Rat) Neg() Element { return Rat{v: new(big.Rat).Neg(a.v)} }

// Sign implements Element.
func (a Rat) Sign() int { return a.v.Sign() }

// Cmp implements Element.
func (a Rat) Cmp(other Element) int { return a.v.Cmp(asRat(other).v) }

// Equal implements Element.
func (a Rat) Equal(other Element) bool { return a.v.Cmp(asRat(other).v) == 0 }

// IsZero implements Element.
func (a Rat) IsZero() bool { return a.v.Sign() == 0 }

// String implements Element ("7/3", "-2").
func (a Rat) String() string { return a.v.RatString() }
