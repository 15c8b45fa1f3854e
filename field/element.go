// Package field - Element and Field capability interfaces plus sentinel errors.
//
// This file declares the contract every exact field implementation obeys.
// Concrete implementations live in rational.go (ℚ) and numberfield.go
// (real number fields ℚ[x]/(m(x))).
package field

import "errors"

// Sentinel errors for field operations.
var (
	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrZeroDenominator is returned by FromRat when den == 0.
	ErrZeroDenominator = errors.New("field: zero denominator")

	// ErrBadModulus indicates a NumberField modulus that is not monic or
	// has degree < 2.
	ErrBadModulus = errors.New("field: modulus must be monic of degree ≥ 2")

	// ErrNoRootInBracket indicates the root bracket supplied to a
	// NumberField does not contain a sign change of the modulus.
	ErrNoRootInBracket = errors.New("field: modulus has no sign change on bracket")
)

// Element is one value of an exact field.
//
// Elements are immutable: every operation returns a fresh Element and never
// mutates its operands. Binary operations require both operands to belong
// to the same Field instance; mixing fields panics.
type Element interface {
	// Add returns the sum of the receiver and other.
	Add(other Element) Element

	// Sub returns the difference receiver − other.
	Sub(other Element) Element

	// Mul returns the product of the receiver and other.
	Mul(other Element) Element

	// Div returns the quotient receiver / other, or ErrDivisionByZero.
	Div(other Element) (Element, error)

	// Neg returns the additive inverse of the receiver.
	Neg() Element

	// Sign reports −1, 0 or +1 according to the sign of the receiver
	// under the field's real embedding.
	Sign() int

	// Cmp compares the receiver with other under the real embedding:
	// −1 if receiver < other, 0 if equal, +1 if receiver > other.
	Cmp(other Element) int

	// Equal reports exact equality with other. Unlike Cmp it never
	// needs to refine a root bracket.
	Equal(other Element) bool

	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool

	// String renders the element for diagnostics ("3/2", "1 - 3*l + l^2").
	String() string
}

// Field is the capability to produce elements of one exact field.
//
// A Field value is immutable and safe for concurrent use; descriptors hold
// exactly one Field for their whole lifetime.
type Field interface {
	// Zero returns the additive identity.
	Zero() Element

	// One returns the multiplicative identity.
	One() Element

	// FromInt embeds an integer into the field.
	FromInt(n int64) Element

	// FromRat embeds the rational num/den, or returns ErrZeroDenominator.
	FromRat(num, den int64) (Element, error)

	// Name is a short human-readable identifier ("QQ", "QQ(sqrt2)").
	// Metadata only; not part of any arithmetic contract.
	Name() string
}
