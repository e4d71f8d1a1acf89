// Package shamir implements the verifiable Shamir secret-sharing scheme:
// deterministic coefficient derivation from SHAKE-256, hash-based
// per-share commitments, share verification, and Lagrange-interpolation
// recovery with invalid-share rejection. It is a hash-binding variant
// inspired by Harn-Hsu's verifiable SSS: a share's commitment binds it to
// the split without revealing anything about the secret to a holder of
// only the public metadata.
package shamir

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/seedshard/seedshard/gf"
)

// Share is a FieldElement produced by Split. It implicitly carries an
// integer x-coordinate (1..n) that is not stored alongside it; Verify
// recovers that coordinate from the public metadata.
type Share = gf.FieldElement

// SplitResult is everything Split produces: the n shares and the public
// metadata (v, c, s) needed to verify and recover them.
type SplitResult struct {
	Shares []Share
	V      [][]byte
	C      gf.FiniteFieldPolynomial
	S      []int
}

const (
	tagDerive    = 0x00
	tagCommit    = 0xFF
	tagChallenge = 0xAA
)

// Split divides secret (one or two FieldElements over the same modulus)
// into n shares, k of which reconstruct it, per spec.md §4.6. salt
// perturbs the deterministic derivation without being secret itself.
func Split(secret []gf.FieldElement, k, n int, salt int64) (*SplitResult, error) {
	if len(secret) == 0 || len(secret) > 2 {
		panic("shamir: secret must contain one or two field elements")
	}
	if k < len(secret) {
		return nil, ErrTooFewShares
	}
	if n < k {
		return nil, ErrNotEnoughShares
	}

	modulus := secret[0].Modulus()
	randomCount := 2*k - len(secret)
	randoms, err := deriveRandomElements(secret, k, n, salt, modulus, randomCount)
	if err != nil {
		return nil, err
	}

	fMiddleCount := k - len(secret)
	fCoeffs := make([]gf.FieldElement, 0, k)
	if len(secret) == 2 {
		fCoeffs = append(fCoeffs, secret[1]) // m_2, leading coefficient
	}
	fCoeffs = append(fCoeffs, randoms[:fMiddleCount]...)
	fCoeffs = append(fCoeffs, secret[0]) // m_1, constant term
	f := gf.NewFiniteFieldPolynomial(modulus, fCoeffs...)

	gCoeffs := append([]gf.FieldElement(nil), randoms[fMiddleCount:randomCount]...)
	g := gf.NewFiniteFieldPolynomial(modulus, gCoeffs...)

	shares := make([]Share, n)
	gAtI := make([]gf.FieldElement, n)
	for i := 1; i <= n; i++ {
		x := gf.FieldElementFromInt64(int64(i), modulus)
		shares[i-1] = f.Eval(x)
		gAtI[i-1] = g.Eval(x)
	}

	exponentBytes := modulus.ExponentBytes()
	v := make([][]byte, n)
	for i := range shares {
		v[i] = commit(exponentBytes, shares[i], gAtI[i], modulus.ByteWidth())
	}

	r, err := chainChallenge(v, modulus)
	if err != nil {
		return nil, err
	}
	c := f.ScalarMul(r).Add(g)

	var s []int
	if len(secret) == 2 {
		s = []int{k - 1, 0}
	} else {
		s = []int{k - 1}
	}

	return &SplitResult{Shares: shares, V: v, C: c, S: s}, nil
}

// deriveRandomElements absorbs the split's parameters into SHAKE-256 and
// squeezes count field elements out of it (spec.md §4.6 step 1).
func deriveRandomElements(secret []gf.FieldElement, k, n int, salt int64, modulus *gf.Modulus, count int) ([]gf.FieldElement, error) {
	h := sha3.NewShake256()
	h.Write([]byte{tagDerive})
	exps := modulus.ExponentBytes()
	h.Write(exps[:])
	h.Write(secret[0].Bytes())
	h.Write(gf.FieldElementFromInt64(salt, modulus).Bytes())
	var kn [8]byte
	binary.BigEndian.PutUint32(kn[0:4], uint32(k))
	binary.BigEndian.PutUint32(kn[4:8], uint32(n))
	h.Write(kn[:])
	if len(secret) == 2 {
		h.Write(secret[1].Bytes())
	}

	width := modulus.ByteWidth()
	out := make([]byte, width*count)
	if _, err := h.Read(out); err != nil {
		return nil, err
	}
	elements := make([]gf.FieldElement, count)
	for i := 0; i < count; i++ {
		chunk := out[i*width : (i+1)*width]
		fe, err := gf.FieldElementFromBytes(chunk, modulus)
		if err != nil {
			return nil, err
		}
		elements[i] = fe
	}
	return elements, nil
}

// commit computes v_i = SHAKE-256(0xFF || modulus exponents || bytes(f_i) ||
// bytes(g_i), 2*width).
func commit(exponentBytes [3]byte, fShare, gShare gf.FieldElement, width int) []byte {
	h := sha3.NewShake256()
	h.Write([]byte{tagCommit})
	h.Write(exponentBytes[:])
	h.Write(fShare.Bytes())
	h.Write(gShare.Bytes())
	out := make([]byte, 2*width)
	h.Read(out)
	return out
}

// chainChallenge computes r = SHAKE-256(0xAA || v_1 || ... || v_n, width)
// interpreted as a FieldElement.
func chainChallenge(v [][]byte, modulus *gf.Modulus) (gf.FieldElement, error) {
	h := sha3.NewShake256()
	h.Write([]byte{tagChallenge})
	for _, vi := range v {
		h.Write(vi)
	}
	out := make([]byte, modulus.ByteWidth())
	if _, err := h.Read(out); err != nil {
		return gf.FieldElement{}, err
	}
	return gf.NewFieldElement(gf.FromBytes(out), modulus), nil
}

// Verify checks whether y is one of the n shares committed to by v under
// masked polynomial c, returning its x-coordinate (1..n) if so, or 0 if y
// matches no commitment or (anomalously) more than one.
func Verify(y gf.FieldElement, v [][]byte, c gf.FiniteFieldPolynomial) int {
	modulus := c.Modulus()
	r, err := chainChallenge(v, modulus)
	if err != nil {
		return 0
	}
	z := r.Mul(y)
	exponentBytes := modulus.ExponentBytes()
	width := modulus.ByteWidth()

	match := 0
	for i := 1; i <= len(v); i++ {
		x := gf.FieldElementFromInt64(int64(i), modulus)
		yg := c.Eval(x).Sub(z)
		candidate := commit(exponentBytes, y, yg, width)
		if bytesEqual(candidate, v[i-1]) {
			if match != 0 {
				return 0
			}
			match = i
		}
	}
	return match
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Recover verifies each of shares against (v, c) and, once k of them verify
// (k = len(c.Coefficients())), interpolates the unique degree-(k-1)
// polynomial through the accepted points and returns its coefficients at
// indices s. Shares that fail verification are collected and, if fewer than
// k shares verify overall, returned via a *TooFewValidSharesError.
func Recover(shares []Share, v [][]byte, c gf.FiniteFieldPolynomial, s []int) ([]gf.FieldElement, error) {
	modulus := c.Modulus()
	needed := len(c.Coefficients())

	accepted := make(map[int]gf.FieldElement, needed)
	var rejected []gf.FieldElement

	for _, share := range shares {
		if len(accepted) >= needed {
			break
		}
		x := Verify(share, v, c)
		if x == 0 {
			rejected = append(rejected, share)
			continue
		}
		if existing, ok := accepted[x]; ok {
			if !existing.Equal(share) {
				return nil, ErrConflictingShares
			}
			continue
		}
		accepted[x] = share
	}

	if len(accepted) < needed {
		return nil, &TooFewValidSharesError{Rejected: rejected, Accepted: len(accepted), Needed: needed}
	}

	points := make([]gf.Point, 0, needed)
	for x, y := range accepted {
		points = append(points, gf.Point{X: gf.FieldElementFromInt64(int64(x), modulus), Y: y})
	}
	poly, err := gf.FromPoints(points)
	if err != nil {
		return nil, err
	}

	coeffs := poly.Coefficients()
	result := make([]gf.FieldElement, len(s))
	for i, idx := range s {
		result[i] = coeffs[idx]
	}
	return result, nil
}
