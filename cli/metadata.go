package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/seedshard/seedshard/gf"
)

// byteArray marshals as a JSON array of small integers rather than Go's
// default base64 string, matching spec.md §6's metadata file format ("v":
// array of arrays of bytes, "c": array of arrays of bytes).
type byteArray []byte

func (b byteArray) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(b))
	for i, c := range b {
		ints[i] = int(c)
	}
	return json.Marshal(ints)
}

func (b *byteArray) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	out := make([]byte, len(ints))
	for i, v := range ints {
		out[i] = byte(v)
	}
	*b = out
	return nil
}

// metadataDoc is the on-disk JSON shape of a split's public metadata: v
// (per-share commitments, stored reversed), c (masked polynomial
// coefficients, high to low), s (coefficient indices naming the secret(s)).
type metadataDoc struct {
	V []byteArray `json:"v"`
	C []byteArray `json:"c"`
	S []int       `json:"s"`
}

// writeMetadata persists split metadata to path. v is stored reversed (spec.md
// §6: "ordered in reverse when persisted"); readMetadata reverses it back on
// the way in so split -> write -> read -> recover round-trips.
func writeMetadata(path string, v [][]byte, c gf.FiniteFieldPolynomial, s []int) error {
	reversedV := make([]byteArray, len(v))
	for i, vi := range v {
		reversedV[len(v)-1-i] = byteArray(vi)
	}
	coeffs := c.Coefficients()
	cOut := make([]byteArray, len(coeffs))
	for i, co := range coeffs {
		cOut[i] = byteArray(co.Bytes())
	}
	doc := metadataDoc{V: reversedV, C: cOut, S: s}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	return writeFileAtomic(path, data, 0o644)
}

// readMetadata loads split metadata from path. The field modulus is inferred
// from the byte width of c's coefficients (spec.md §6: "the bit width is
// inferred from the byte length ... and the canonical modulus looked up").
func readMetadata(path string) (v [][]byte, c gf.FiniteFieldPolynomial, s []int, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, gf.FiniteFieldPolynomial{}, nil, err
	}
	var doc metadataDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, gf.FiniteFieldPolynomial{}, nil, fmt.Errorf("invalid metadata JSON: %w", err)
	}
	if len(doc.C) == 0 {
		return nil, gf.FiniteFieldPolynomial{}, nil, fmt.Errorf("metadata: empty c polynomial")
	}

	n := len(doc.V)
	v = make([][]byte, n)
	for i, vi := range doc.V {
		v[n-1-i] = []byte(vi)
	}

	width := len(doc.C[0])
	modulus, err := gf.GetModulus(width * 8)
	if err != nil {
		return nil, gf.FiniteFieldPolynomial{}, nil, fmt.Errorf("metadata: %w", err)
	}
	coeffs := make([]gf.FieldElement, len(doc.C))
	for i, co := range doc.C {
		fe, err := gf.FieldElementFromBytes([]byte(co), modulus)
		if err != nil {
			return nil, gf.FiniteFieldPolynomial{}, nil, fmt.Errorf("metadata: coefficient %d: %w", i, err)
		}
		coeffs[i] = fe
	}
	c = gf.NewFiniteFieldPolynomial(modulus, coeffs...)
	s = doc.S
	return v, c, s, nil
}
