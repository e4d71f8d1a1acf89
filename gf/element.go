package gf

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when constructing a FieldElement from a
// byte string whose length doesn't match the modulus's fixed byte width.
var ErrLengthMismatch = errors.New("gf: byte length does not match field width")

// ErrNotInvertible is returned by Inverse for the zero element, or (in
// principle) for a non-primitive modulus under which no element has an
// inverse via the extended Euclidean algorithm.
var ErrNotInvertible = errors.New("gf: element has no multiplicative inverse")

// FieldElement is a BinaryPolynomial reduced modulo a fixed primitive
// Modulus: an element of GF(2^b) where b is the modulus's degree.
// FieldElements from different moduli are never equal and must not be mixed
// in arithmetic.
type FieldElement struct {
	value   BinaryPolynomial
	modulus *Modulus
}

// NewFieldElement reduces value modulo modulus and returns the resulting
// element.
func NewFieldElement(value BinaryPolynomial, modulus *Modulus) FieldElement {
	reduced, err := value.Mod(modulus.Poly())
	if err != nil {
		// modulus.Poly() is never the zero polynomial for a table-sourced
		// Modulus.
		panic(err)
	}
	return FieldElement{value: reduced, modulus: modulus}
}

// FieldElementFromInt64 reduces an int64 modulo modulus.
func FieldElementFromInt64(value int64, modulus *Modulus) FieldElement {
	return NewFieldElement(NewBinaryPolynomial(value), modulus)
}

// FieldElementFromBytes decodes a fixed-width big-endian byte string into a
// FieldElement, requiring len(b) == modulus.ByteWidth().
func FieldElementFromBytes(b []byte, modulus *Modulus) (FieldElement, error) {
	if len(b) != modulus.ByteWidth() {
		return FieldElement{}, fmt.Errorf("%w: want %d bytes, got %d",
			ErrLengthMismatch, modulus.ByteWidth(), len(b))
	}
	return NewFieldElement(FromBytes(b), modulus), nil
}

// Modulus returns the field element's modulus.
func (e FieldElement) Modulus() *Modulus {
	return e.modulus
}

// Value returns the reduced BinaryPolynomial backing e.
func (e FieldElement) Value() BinaryPolynomial {
	return e.value
}

// IsZero reports whether e is the additive identity.
func (e FieldElement) IsZero() bool {
	return e.value.IsZero()
}

// Bytes returns the big-endian encoding of e, zero-padded to the field's
// fixed byte width.
func (e FieldElement) Bytes() []byte {
	return e.value.BytesPadded(e.modulus.ByteWidth())
}

// sameField panics if e and other belong to different fields; arithmetic
// across fields is a programming error, not a recoverable one (the source
// spec has operators raise ValueError; Go arithmetic operators can't return
// errors, so this mirrors the teacher's pattern of panicking on invariant
// violations that indicate misuse, e.g. falcon's "crypto/rand should never
// fail" panic).
func (e FieldElement) sameField(other FieldElement) {
	if !e.modulus.Equal(other.modulus) {
		panic("gf: field elements belong to different fields")
	}
}

// Add returns e+other in the field.
func (e FieldElement) Add(other FieldElement) FieldElement {
	e.sameField(other)
	return NewFieldElement(e.value.Add(other.value), e.modulus)
}

// Sub returns e-other in the field (identical to Add in characteristic 2).
func (e FieldElement) Sub(other FieldElement) FieldElement {
	return e.Add(other)
}

// Mul returns e*other in the field: carryless multiply then reduce.
func (e FieldElement) Mul(other FieldElement) FieldElement {
	e.sameField(other)
	return NewFieldElement(e.value.Mul(other.value), e.modulus)
}

// Inverse returns the multiplicative inverse of e via the extended Euclidean
// algorithm over binary polynomials (spec.md §4.3). Returns ErrNotInvertible
// if e is zero (or, in principle, if the modulus is not primitive).
func (e FieldElement) Inverse() (FieldElement, error) {
	r := e.modulus.Poly()
	rPrime := e.value
	t := NewBinaryPolynomial(0)
	tPrime := NewBinaryPolynomial(1)
	for !rPrime.IsZero() {
		q, err := r.FloorDiv(rPrime)
		if err != nil {
			return FieldElement{}, err
		}
		r, rPrime = rPrime, r.Sub(q.Mul(rPrime))
		t, tPrime = tPrime, t.Sub(q.Mul(tPrime))
	}
	if !r.Equal(NewBinaryPolynomial(1)) {
		return FieldElement{}, ErrNotInvertible
	}
	return NewFieldElement(t, e.modulus), nil
}

// Div returns e/other, i.e. e * other.Inverse().
func (e FieldElement) Div(other FieldElement) (FieldElement, error) {
	e.sameField(other)
	inv, err := other.Inverse()
	if err != nil {
		return FieldElement{}, err
	}
	return e.Mul(inv), nil
}

// Pow raises e to a non-negative integer power by square-and-multiply.
func (e FieldElement) Pow(n int) FieldElement {
	if n < 0 {
		panic("gf: negative exponent")
	}
	result := FieldElementFromInt64(1, e.modulus)
	base := e
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// Equal reports whether e and other have the same value and modulus.
// Elements of different fields are never equal.
func (e FieldElement) Equal(other FieldElement) bool {
	return e.modulus.Equal(other.modulus) && e.value.Equal(other.value)
}

// String renders e in the reference implementation's "FieldElement(0b.., 0b..)" style.
func (e FieldElement) String() string {
	return "FieldElement(0b" + e.value.bigInt().Text(2) + ", 0b" + e.modulus.poly.bigInt().Text(2) + ")"
}
