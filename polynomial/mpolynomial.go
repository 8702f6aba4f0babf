package polynomial

import (
	"encoding/binary"
	"math/big"
	"math/bits"

	"github.com/Tranduy1dol/lumen-stark/field"
)

// Term is one monomial of a multivariate polynomial: a coefficient times
// the product of x_i^Exponents[i] over the variables it mentions.
type Term struct {
	Exponents   []uint64
	Coefficient field.Element
}

// MPolynomial is a sparse multivariate polynomial over a prime field,
// a mapping from exponent vectors to nonzero coefficients.
//
// Exponent vectors are stored with trailing zeros trimmed; vectors of
// different lengths are conceptually right-padded with zeros during
// binary operations. Terms with a zero coefficient are never stored.
type MPolynomial struct {
	terms map[string]Term
}

// NewMPolynomial creates a new MPolynomial from the given terms.
// Duplicate exponent vectors are summed, and zero terms are dropped.
func NewMPolynomial(terms []Term) MPolynomial {
	m := MPolynomial{terms: make(map[string]Term, len(terms))}
	for _, t := range terms {
		m.addTerm(t.Exponents, t.Coefficient)
	}
	return m
}

// MZero returns the zero multivariate polynomial.
func MZero() MPolynomial {
	return MPolynomial{terms: make(map[string]Term)}
}

// MConstant returns the constant multivariate polynomial with the given value.
func MConstant(c field.Element) MPolynomial {
	m := MZero()
	m.addTerm(nil, c)
	return m
}

// Variables returns the n multivariate polynomials x_0, ..., x_{n-1}
// over the given field.
func Variables(n int, f field.Field) []MPolynomial {
	vars := make([]MPolynomial, n)
	for i := range vars {
		exps := make([]uint64, i+1)
		exps[i] = 1

		vars[i] = MZero()
		vars[i].addTerm(exps, f.One())
	}
	return vars
}

// Lift embeds a univariate polynomial into the multivariate ring,
// substituting the variable with index variableIndex for x.
// The zero polynomial lifts to the zero multivariate polynomial.
func Lift(p Polynomial, variableIndex int) MPolynomial {
	m := MZero()
	for i, c := range p.coeffs {
		if c.IsZero() {
			continue
		}
		exps := make([]uint64, variableIndex+1)
		exps[variableIndex] = uint64(i)
		m.addTerm(exps, c)
	}
	return m
}

// trimExponents drops trailing zero exponents, the canonical key form.
func trimExponents(exps []uint64) []uint64 {
	last := len(exps)
	for last > 0 && exps[last-1] == 0 {
		last--
	}
	return exps[:last]
}

// packExponents encodes a trimmed exponent vector as a map key.
func packExponents(exps []uint64) string {
	buf := make([]byte, 8*len(exps))
	for i, e := range exps {
		binary.BigEndian.PutUint64(buf[8*i:], e)
	}
	return string(buf)
}

// addTerm adds coeff * x^exps into the mapping,
// removing the entry if the coefficient cancels to zero.
func (m MPolynomial) addTerm(exps []uint64, coeff field.Element) {
	if coeff.IsZero() {
		return
	}

	trimmed := trimExponents(exps)
	key := packExponents(trimmed)

	if existing, ok := m.terms[key]; ok {
		sum := existing.Coefficient.Add(coeff)
		if sum.IsZero() {
			delete(m.terms, key)
			return
		}
		m.terms[key] = Term{Exponents: existing.Exponents, Coefficient: sum}
		return
	}

	stored := make([]uint64, len(trimmed))
	copy(stored, trimmed)
	m.terms[key] = Term{Exponents: stored, Coefficient: coeff}
}

// NumVars returns the number of variables of the polynomial,
// the maximum exponent-vector length over all terms.
func (m MPolynomial) NumVars() int {
	numVars := 0
	for _, t := range m.terms {
		numVars = max(numVars, len(t.Exponents))
	}
	return numVars
}

// IsZero returns true if the polynomial has no terms.
func (m MPolynomial) IsZero() bool {
	return len(m.terms) == 0
}

// Terms returns a copy of the terms of the polynomial.
func (m MPolynomial) Terms() []Term {
	terms := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		exps := make([]uint64, len(t.Exponents))
		copy(exps, t.Exponents)
		terms = append(terms, Term{Exponents: exps, Coefficient: t.Coefficient})
	}
	return terms
}

// Coefficient returns the coefficient of the given exponent vector,
// and whether such a term is present.
func (m MPolynomial) Coefficient(exps []uint64) (field.Element, bool) {
	t, ok := m.terms[packExponents(trimExponents(exps))]
	return t.Coefficient, ok
}

// Add returns m + other.
func (m MPolynomial) Add(other MPolynomial) MPolynomial {
	sum := MZero()
	for _, t := range m.terms {
		sum.addTerm(t.Exponents, t.Coefficient)
	}
	for _, t := range other.terms {
		sum.addTerm(t.Exponents, t.Coefficient)
	}
	return sum
}

// Sub returns m - other.
func (m MPolynomial) Sub(other MPolynomial) MPolynomial {
	return m.Add(other.Neg())
}

// Neg returns -m.
func (m MPolynomial) Neg() MPolynomial {
	neg := MZero()
	for _, t := range m.terms {
		neg.addTerm(t.Exponents, t.Coefficient.Neg())
	}
	return neg
}

// Mul returns m * other, combining like terms of the pairwise products.
// Exponent vectors of different lengths are right-padded with zeros.
func (m MPolynomial) Mul(other MPolynomial) MPolynomial {
	prod := MZero()
	for _, t0 := range m.terms {
		for _, t1 := range other.terms {
			exps := make([]uint64, max(len(t0.Exponents), len(t1.Exponents)))
			for i, e := range t0.Exponents {
				exps[i] += e
			}
			for i, e := range t1.Exponents {
				exps[i] += e
			}
			prod.addTerm(exps, t0.Coefficient.Mul(t1.Coefficient))
		}
	}
	return prod
}

// Pow returns m raised to the given exponent using binary exponentiation.
// A zero exponent yields the constant-one polynomial.
// The zero polynomial raised to any positive power is the zero polynomial.
func (m MPolynomial) Pow(exponent uint64) MPolynomial {
	if m.IsZero() {
		return MZero()
	}

	var f field.Field
	for _, t := range m.terms {
		f = t.Coefficient.Field()
		break
	}

	acc := MConstant(f.One())
	for i := bits.Len64(exponent) - 1; i >= 0; i-- {
		acc = acc.Mul(acc)
		if exponent&(uint64(1)<<i) != 0 {
			acc = acc.Mul(m)
		}
	}

	return acc
}

// Evaluate substitutes the coordinates of point for the variables and
// returns the resulting field element.
//
// Panics when point has fewer entries than the polynomial's variable count,
// or when an empty point is supplied for the zero polynomial (which has no
// field to produce a zero from).
func (m MPolynomial) Evaluate(point []field.Element) field.Element {
	if len(point) < m.NumVars() {
		panic("evaluation point shorter than variable count")
	}
	if m.IsZero() {
		if len(point) == 0 {
			panic("cannot evaluate the zero polynomial at an empty point")
		}
		return point[0].Field().Zero()
	}

	var acc field.Element
	first := true
	for _, t := range m.terms {
		prod := t.Coefficient
		for i, e := range t.Exponents {
			prod = prod.Mul(point[i].Pow(big.NewInt(0).SetUint64(e)))
		}
		if first {
			acc = prod
			first = false
		} else {
			acc = acc.Add(prod)
		}
	}

	return acc
}

// EvaluateSymbolic substitutes a univariate polynomial for each variable
// and returns the resulting univariate polynomial. This is how a trace
// polynomial is substituted into a symbolic constraint.
//
// Panics when point has fewer entries than the polynomial's variable count.
func (m MPolynomial) EvaluateSymbolic(point []Polynomial) Polynomial {
	if len(point) < m.NumVars() {
		panic("evaluation point shorter than variable count")
	}

	acc := Zero()
	for _, t := range m.terms {
		prod := Constant(t.Coefficient)
		for i, e := range t.Exponents {
			prod = prod.Mul(point[i].Pow(e))
		}
		acc = acc.Add(prod)
	}

	return acc
}

// Equal returns true if the two polynomials have the same terms.
func (m MPolynomial) Equal(other MPolynomial) bool {
	if len(m.terms) != len(other.terms) {
		return false
	}
	for key, t := range m.terms {
		o, ok := other.terms[key]
		if !ok || !t.Coefficient.Equal(o.Coefficient) {
			return false
		}
	}
	return true
}
