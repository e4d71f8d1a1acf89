package gf

import (
	"errors"
	"fmt"
	"log"
	"math/big"
)

// ErrUnsupportedWidth is returned by GetModulus for a bit width absent from
// the canonical table.
var ErrUnsupportedWidth = errors.New("gf: unsupported bit width")

// exponents holds the three "middle" exponents e1 > e2 > e3 of a canonical
// modulus x^b + x^e1 + x^e2 + x^e3 + 1, each stored so it fits in one byte
// (required by shamir's commitment encoding, spec.md §4.6 step 1).
type exponents [3]byte

// primitivePolynomials is the compiled-in table of canonical primitive
// trinomial/pentanomial exponents per bit width, taken directly from
// original_source/gf.py's _default_prim_poly. The BIP-39 entropy widths
// (128/160/192/224/256) are the ones spec.md names; the smaller widths are
// carried from the original as "for testing" (its own comment), which
// spec.md §8's exhaustive b=16 and b=8 invariant tests require.
var primitivePolynomials = map[int]exponents{
	8:   {4, 3, 1}, // Rijndael modulus, for testing
	16:  {5, 3, 2}, // for testing
	32:  {7, 6, 2}, // for testing
	64:  {4, 3, 1}, // for testing
	128: {7, 2, 1},
	160: {5, 3, 2},
	192: {15, 11, 5},
	224: {12, 7, 2},
	256: {10, 5, 2},
}

// Modulus is a BinaryPolynomial of degree b, primitive over GF(2), drawn
// from the canonical table, together with the bit width and exponents used
// to build it (the latter needed verbatim by shamir's commitment scheme).
type Modulus struct {
	poly      BinaryPolynomial
	bitWidth  int
	exponents exponents
}

// GetModulus returns the canonical modulus x^b + x^e1 + x^e2 + x^e3 + 1 for
// the given bit width, or ErrUnsupportedWidth if b isn't in the table.
// Widths below 128 log a "short-width; testing only" diagnostic, since a
// field that small has no cryptographic value.
func GetModulus(bitWidth int) (*Modulus, error) {
	exps, ok := primitivePolynomials[bitWidth]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, bitWidth)
	}
	if bitWidth < 128 {
		log.Printf("gf: modulus width %d bits is short; testing only", bitWidth)
	}
	poly := buildModulusPoly(bitWidth, exps)
	return &Modulus{poly: poly, bitWidth: bitWidth, exponents: exps}, nil
}

// buildModulusPoly constructs x^b + x^e1 + x^e2 + x^e3 + 1 by setting the
// corresponding bits directly.
func buildModulusPoly(bitWidth int, exps exponents) BinaryPolynomial {
	v := new(big.Int)
	v.SetBit(v, bitWidth, 1)
	v.SetBit(v, 0, 1)
	for _, e := range exps {
		v.SetBit(v, int(e), 1)
	}
	return FromBigInt(v)
}

// BitWidth returns the degree b of the modulus.
func (m *Modulus) BitWidth() int {
	return m.bitWidth
}

// ByteWidth returns the fixed encoded width, in bytes, of a FieldElement
// reduced modulo m: ceil(b/8).
func (m *Modulus) ByteWidth() int {
	return (m.bitWidth + 7) / 8
}

// Poly returns the modulus as a BinaryPolynomial.
func (m *Modulus) Poly() BinaryPolynomial {
	return m.poly
}

// ExponentBytes returns the three middle exponents, each as one byte, in the
// fixed order required by shamir's SHAKE-256 absorption (spec.md §4.6 step 1
// and step 4).
func (m *Modulus) ExponentBytes() [3]byte {
	return m.exponents
}

// Equal reports whether two moduli describe the same polynomial.
func (m *Modulus) Equal(other *Modulus) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	return m.poly.Equal(other.poly)
}
