package gf

import "errors"

// ErrEmptyPoints is returned by FromPoints when given no points to
// interpolate.
var ErrEmptyPoints = errors.New("gf: cannot interpolate from zero points")

// ErrDuplicateX is returned by FromPoints when two points share the same
// x-coordinate.
var ErrDuplicateX = errors.New("gf: duplicate x-coordinate in interpolation points")

// Point is an (x, y) pair used as interpolation input for FromPoints.
type Point struct {
	X FieldElement
	Y FieldElement
}

// FiniteFieldPolynomial is a polynomial over a single field, represented by
// its coefficients from the highest degree term down to the constant term.
// A FiniteFieldPolynomial built from n points has degree n-1.
type FiniteFieldPolynomial struct {
	coeffs  []FieldElement // highest degree first
	modulus *Modulus
}

// NewFiniteFieldPolynomial builds a polynomial from coefficients given
// highest-degree-first. All coefficients must share modulus; panics
// otherwise (see FieldElement.sameField).
func NewFiniteFieldPolynomial(modulus *Modulus, coeffs ...FieldElement) FiniteFieldPolynomial {
	for _, c := range coeffs {
		if !c.Modulus().Equal(modulus) {
			panic("gf: coefficient belongs to a different field")
		}
	}
	cp := make([]FieldElement, len(coeffs))
	copy(cp, coeffs)
	return FiniteFieldPolynomial{coeffs: cp, modulus: modulus}
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial
// (here represented as having no coefficients).
func (p FiniteFieldPolynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns the polynomial's coefficients, highest degree first.
// The returned slice is a copy.
func (p FiniteFieldPolynomial) Coefficients() []FieldElement {
	cp := make([]FieldElement, len(p.coeffs))
	copy(cp, p.coeffs)
	return cp
}

// Modulus returns the field the polynomial's coefficients belong to.
func (p FiniteFieldPolynomial) Modulus() *Modulus {
	return p.modulus
}

// Eval evaluates p at x using Horner's method: n-1 multiply-adds for a
// degree-(n-1) polynomial.
func (p FiniteFieldPolynomial) Eval(x FieldElement) FieldElement {
	if len(p.coeffs) == 0 {
		return FieldElementFromInt64(0, p.modulus)
	}
	result := p.coeffs[0]
	for _, c := range p.coeffs[1:] {
		result = result.Mul(x).Add(c)
	}
	return result
}

// Add returns p+other, aligning the two by their constant terms (i.e. the
// shorter polynomial is treated as having implicit leading zero
// coefficients).
func (p FiniteFieldPolynomial) Add(other FiniteFieldPolynomial) FiniteFieldPolynomial {
	if len(other.coeffs) > len(p.coeffs) {
		p, other = other, p
	}
	out := make([]FieldElement, len(p.coeffs))
	copy(out, p.coeffs)
	offset := len(p.coeffs) - len(other.coeffs)
	for i, c := range other.coeffs {
		out[offset+i] = out[offset+i].Add(c)
	}
	return FiniteFieldPolynomial{coeffs: out, modulus: p.modulus}
}

// ScalarMul returns p with every coefficient multiplied by scalar.
func (p FiniteFieldPolynomial) ScalarMul(scalar FieldElement) FiniteFieldPolynomial {
	out := make([]FieldElement, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Mul(scalar)
	}
	return FiniteFieldPolynomial{coeffs: out, modulus: p.modulus}
}

// FromPoints constructs the unique polynomial of degree < len(points) that
// passes through every given point, via Lagrange interpolation over the
// points' shared field (spec.md §4.5). It builds the result incrementally:
// for each point i, it forms the scaled basis polynomial
//
//	L_i(x) = y_i * prod_{j != i} (x - x_j) / (x_i - x_j)
//
// by multiplying a running linear-factor product and folding in the
// denominator scale at the end, then accumulates L_i into the result. This
// avoids ever representing the unscaled basis polynomials separately.
//
// Returns ErrEmptyPoints for an empty input, and ErrDuplicateX if two points
// share an x-coordinate (the corresponding denominator would be zero).
func FromPoints(points []Point) (FiniteFieldPolynomial, error) {
	if len(points) == 0 {
		return FiniteFieldPolynomial{}, ErrEmptyPoints
	}
	modulus := points[0].X.Modulus()
	zero := FieldElementFromInt64(0, modulus)
	one := FieldElementFromInt64(1, modulus)

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].X.Equal(points[j].X) {
				return FiniteFieldPolynomial{}, ErrDuplicateX
			}
		}
	}

	result := FiniteFieldPolynomial{coeffs: []FieldElement{zero}, modulus: modulus}
	for i, pi := range points {
		// basis starts as the constant polynomial 1; multiply in (x - x_j)
		// for every j != i, and accumulate the scalar denominator
		// prod (x_i - x_j) alongside it.
		basis := FiniteFieldPolynomial{coeffs: []FieldElement{one}, modulus: modulus}
		denom := one
		for j, pj := range points {
			if j == i {
				continue
			}
			negXj := pj.X // char 2: -x == x
			linear := FiniteFieldPolynomial{coeffs: []FieldElement{one, negXj}, modulus: modulus}
			basis = basis.polyMul(linear)
			denom = denom.Mul(pi.X.Sub(pj.X))
		}
		denomInv, err := denom.Inverse()
		if err != nil {
			return FiniteFieldPolynomial{}, err
		}
		scale := pi.Y.Mul(denomInv)
		result = result.Add(basis.ScalarMul(scale))
	}
	return result, nil
}

// polyMul is schoolbook polynomial multiplication, used only internally by
// FromPoints to build up linear factors; the interpolated polynomials
// involved are small (bounded by the share count), so this need not be
// asymptotically fast.
func (p FiniteFieldPolynomial) polyMul(other FiniteFieldPolynomial) FiniteFieldPolynomial {
	if len(p.coeffs) == 0 || len(other.coeffs) == 0 {
		return FiniteFieldPolynomial{modulus: p.modulus}
	}
	out := make([]FieldElement, len(p.coeffs)+len(other.coeffs)-1)
	zero := FieldElementFromInt64(0, p.modulus)
	for i := range out {
		out[i] = zero
	}
	for i, a := range p.coeffs {
		for j, b := range other.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return FiniteFieldPolynomial{coeffs: out, modulus: p.modulus}
}
