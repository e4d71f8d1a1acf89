// Package gf implements arbitrary-width binary-polynomial and GF(2^n)
// finite-field arithmetic: BinaryPolynomial is the bit-field representation
// of a polynomial over GF(2); FieldElement reduces one modulo a primitive
// modulus to get a field element; FiniteFieldPolynomial is a polynomial whose
// coefficients are field elements, with Lagrange interpolation from points.
package gf

import (
	"errors"
	"math/big"
)

// ErrDivideByZero is returned by DivMod (and its derivatives FloorDiv, Mod)
// when the denominator is the zero polynomial.
var ErrDivideByZero = errors.New("gf: division by zero")

// BinaryPolynomial is a polynomial over GF(2), represented as the bit-field
// of its coefficients: bit i of the underlying integer is the coefficient of
// x^i. The degree of a nonzero polynomial is bitlen(value)-1; the zero
// polynomial has no degree. Values are always non-negative: constructing
// from a negative int replaces it with its absolute value.
type BinaryPolynomial struct {
	v *big.Int
}

// NewBinaryPolynomial builds a BinaryPolynomial from an integer bit-field,
// taking the absolute value of negative inputs.
func NewBinaryPolynomial(value int64) BinaryPolynomial {
	b := big.NewInt(value)
	b.Abs(b)
	return BinaryPolynomial{v: b}
}

// FromBigInt builds a BinaryPolynomial from a big.Int, taking the absolute
// value and copying it so the caller's int is never aliased.
func FromBigInt(value *big.Int) BinaryPolynomial {
	b := new(big.Int).Abs(value)
	return BinaryPolynomial{v: b}
}

// FromBytes decodes a big-endian byte string into a BinaryPolynomial.
func FromBytes(b []byte) BinaryPolynomial {
	return BinaryPolynomial{v: new(big.Int).SetBytes(b)}
}

func (p BinaryPolynomial) bigInt() *big.Int {
	if p.v == nil {
		return big.NewInt(0)
	}
	return p.v
}

// Bytes returns the big-endian, minimal-length encoding of p.
func (p BinaryPolynomial) Bytes() []byte {
	return p.bigInt().Bytes()
}

// BytesPadded returns the big-endian encoding of p, zero-padded on the left
// to exactly width bytes. Panics if p does not fit in width bytes.
func (p BinaryPolynomial) BytesPadded(width int) []byte {
	raw := p.Bytes()
	if len(raw) > width {
		panic("gf: value does not fit in requested width")
	}
	out := make([]byte, width)
	copy(out[width-len(raw):], raw)
	return out
}

// BitLen returns the number of bits needed to represent p; 0 for the zero
// polynomial, deg(p)+1 otherwise.
func (p BinaryPolynomial) BitLen() int {
	return p.bigInt().BitLen()
}

// IsZero reports whether p is the zero polynomial.
func (p BinaryPolynomial) IsZero() bool {
	return p.bigInt().Sign() == 0
}

// Equal reports whether p and other have the same bit-field.
func (p BinaryPolynomial) Equal(other BinaryPolynomial) bool {
	return p.bigInt().Cmp(other.bigInt()) == 0
}

// Int64 returns the underlying value as an int64. Panics if it overflows.
func (p BinaryPolynomial) Int64() int64 {
	if !p.bigInt().IsInt64() {
		panic("gf: value overflows int64")
	}
	return p.bigInt().Int64()
}

// String renders p in the same "BinaryPolynomial(0b...)" style as the
// reference implementation.
func (p BinaryPolynomial) String() string {
	return "BinaryPolynomial(0b" + p.bigInt().Text(2) + ")"
}

// Add returns the sum of p and other over GF(2), which is XOR.
func (p BinaryPolynomial) Add(other BinaryPolynomial) BinaryPolynomial {
	return BinaryPolynomial{v: new(big.Int).Xor(p.bigInt(), other.bigInt())}
}

// Sub returns the difference of p and other over GF(2). Subtraction is
// addition in characteristic 2, so this is identical to Add.
func (p BinaryPolynomial) Sub(other BinaryPolynomial) BinaryPolynomial {
	return p.Add(other)
}

// Mul returns the carryless (GF(2)) product of p and other, computed by the
// textbook shift-and-xor algorithm rather than big.Int's integer multiply.
func (p BinaryPolynomial) Mul(other BinaryPolynomial) BinaryPolynomial {
	a := new(big.Int).Set(p.bigInt())
	b := new(big.Int).Set(other.bigInt())
	product := new(big.Int)
	for b.Sign() != 0 {
		if b.Bit(0) == 1 {
			product.Xor(product, a)
		}
		b.Rsh(b, 1)
		a.Lsh(a, 1)
	}
	return BinaryPolynomial{v: product}
}

// DivMod performs long division of p by denom by repeated bit-shift
// reduction, returning (quotient, remainder). Returns ErrDivideByZero if
// denom is zero.
func (p BinaryPolynomial) DivMod(denom BinaryPolynomial) (quotient, remainder BinaryPolynomial, err error) {
	if denom.IsZero() {
		return BinaryPolynomial{}, BinaryPolynomial{}, ErrDivideByZero
	}
	q := new(big.Int)
	r := new(big.Int).Set(p.bigInt())
	d := denom.bigInt()
	dLen := d.BitLen()
	shifted := new(big.Int)
	for r.BitLen() >= dLen {
		shift := uint(r.BitLen() - dLen)
		q.SetBit(q, int(shift), 1)
		shifted.Lsh(d, shift)
		r.Xor(r, shifted)
	}
	return BinaryPolynomial{v: q}, BinaryPolynomial{v: r}, nil
}

// FloorDiv returns the quotient of p divided by denom.
func (p BinaryPolynomial) FloorDiv(denom BinaryPolynomial) (BinaryPolynomial, error) {
	q, _, err := p.DivMod(denom)
	return q, err
}

// Mod returns the remainder of p divided by denom.
func (p BinaryPolynomial) Mod(denom BinaryPolynomial) (BinaryPolynomial, error) {
	_, r, err := p.DivMod(denom)
	return r, err
}

// Pow raises p to a non-negative integer power n by square-and-multiply.
func (p BinaryPolynomial) Pow(n int) BinaryPolynomial {
	if n < 0 {
		panic("gf: negative exponent")
	}
	result := NewBinaryPolynomial(1)
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}
