// Package polynomial implements univariate and multivariate polynomial
// rings over a prime field.
//
// Univariate polynomials are dense coefficient vectors in canonical form:
// trailing zero coefficients are trimmed, and the zero polynomial is the
// empty vector with degree -1. Multivariate polynomials are sparse maps
// from exponent vectors to nonzero coefficients.
package polynomial

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/Tranduy1dol/lumen-stark/field"
)

// Polynomial is a univariate polynomial over a prime field.
// Coeffs[i] is the coefficient of x^i.
// Polynomials are immutable value types.
type Polynomial struct {
	coeffs []field.Element
}

// New creates a new Polynomial from a coefficient vector,
// trimming trailing zero coefficients to keep a canonical form.
func New(coeffs []field.Element) Polynomial {
	last := len(coeffs)
	for last > 0 && coeffs[last-1].IsZero() {
		last--
	}

	trimmed := make([]field.Element, last)
	copy(trimmed, coeffs[:last])
	return Polynomial{coeffs: trimmed}
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// Constant returns the polynomial with the given constant term.
func Constant(c field.Element) Polynomial {
	if c.IsZero() {
		return Zero()
	}
	return Polynomial{coeffs: []field.Element{c}}
}

// X returns the monomial x over the given field.
func X(f field.Field) Polynomial {
	return Polynomial{coeffs: []field.Element{f.Zero(), f.One()}}
}

// Degree returns the degree of the polynomial.
// The degree of the zero polynomial is -1.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero returns true if the polynomial is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coefficients returns a copy of the coefficient vector.
func (p Polynomial) Coefficients() []field.Element {
	coeffs := make([]field.Element, len(p.coeffs))
	copy(coeffs, p.coeffs)
	return coeffs
}

// Coefficient returns the coefficient of x^i.
//
// Panics when called on the zero polynomial, which has no field
// to produce a zero coefficient from.
func (p Polynomial) Coefficient(i int) field.Element {
	if p.IsZero() {
		panic("zero polynomial has no coefficients")
	}
	if i < 0 || i >= len(p.coeffs) {
		return p.coeffs[0].Field().Zero()
	}
	return p.coeffs[i]
}

// LeadingCoefficient returns the coefficient of the highest-degree term.
//
// Panics when called on the zero polynomial.
func (p Polynomial) LeadingCoefficient() field.Element {
	if p.IsZero() {
		panic("zero polynomial has no leading coefficient")
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Add returns p + other.
func (p Polynomial) Add(other Polynomial) Polynomial {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}

	f := p.coeffs[0].Field()
	coeffs := make([]field.Element, max(len(p.coeffs), len(other.coeffs)))
	for i := range coeffs {
		coeffs[i] = f.Zero()
	}
	for i, c := range p.coeffs {
		coeffs[i] = coeffs[i].Add(c)
	}
	for i, c := range other.coeffs {
		coeffs[i] = coeffs[i].Add(c)
	}

	return New(coeffs)
}

// Sub returns p - other.
func (p Polynomial) Sub(other Polynomial) Polynomial {
	return p.Add(other.Neg())
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	coeffs := make([]field.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = c.Neg()
	}
	return Polynomial{coeffs: coeffs}
}

// Mul returns p * other, by naive convolution.
func (p Polynomial) Mul(other Polynomial) Polynomial {
	if p.IsZero() || other.IsZero() {
		return Zero()
	}

	f := p.coeffs[0].Field()
	coeffs := make([]field.Element, len(p.coeffs)+len(other.coeffs)-1)
	for i := range coeffs {
		coeffs[i] = f.Zero()
	}
	for i, ci := range p.coeffs {
		if ci.IsZero() {
			continue // density optimization for sparse operands
		}
		for j, cj := range other.coeffs {
			coeffs[i+j] = coeffs[i+j].Add(ci.Mul(cj))
		}
	}

	return New(coeffs)
}

// Pow returns p raised to the given exponent using binary exponentiation.
// The zero polynomial raised to any power is the zero polynomial.
func (p Polynomial) Pow(exponent uint64) Polynomial {
	if p.IsZero() {
		return Zero()
	}

	f := p.coeffs[0].Field()
	acc := Constant(f.One())
	for i := bits.Len64(exponent) - 1; i >= 0; i-- {
		acc = acc.Mul(acc)
		if exponent&(uint64(1)<<i) != 0 {
			acc = acc.Mul(p)
		}
	}

	return acc
}

// Div returns p / other, requiring the division to be exact.
//
// Panics when other is the zero polynomial or does not evenly divide p.
func (p Polynomial) Div(other Polynomial) Polynomial {
	quotient, remainder := LongDivision(p, other)
	if !remainder.IsZero() {
		panic("polynomial division leaves a nonzero remainder")
	}
	return quotient
}

// Mod returns the remainder of p divided by other.
//
// Panics when other is the zero polynomial.
func (p Polynomial) Mod(other Polynomial) Polynomial {
	_, remainder := LongDivision(p, other)
	return remainder
}

// Evaluate returns the value of the polynomial at the given point.
func (p Polynomial) Evaluate(point field.Element) field.Element {
	f := point.Field()
	value := f.Zero()
	power := f.One()
	for _, c := range p.coeffs {
		value = value.Add(c.Mul(power))
		power = power.Mul(point)
	}
	return value
}

// EvaluateDomain returns the values of the polynomial over the given domain.
func (p Polynomial) EvaluateDomain(domain []field.Element) []field.Element {
	values := make([]field.Element, len(domain))
	for i, d := range domain {
		values[i] = p.Evaluate(d)
	}
	return values
}

// Scale returns the polynomial q with q(x) = p(factor * x),
// multiplying the i-th coefficient by factor^i.
func (p Polynomial) Scale(factor field.Element) Polynomial {
	coeffs := make([]field.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = c.Mul(factor.PowUint64(uint64(i)))
	}
	return New(coeffs)
}

// Equal returns true if the two polynomials have the same coefficients.
func (p Polynomial) Equal(other Polynomial) bool {
	if len(p.coeffs) != len(other.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(other.coeffs[i]) {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the polynomial.
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		c := p.coeffs[i]
		if c.IsZero() {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, c.String())
		case i == 1:
			terms = append(terms, c.String()+"*x")
		default:
			terms = append(terms, fmt.Sprintf("%s*x^%d", c.String(), i))
		}
	}

	return strings.Join(terms, " + ")
}
