package polynomial

import "github.com/Tranduy1dol/lumen-stark/field"

// Point is a pair of coordinates used in interpolation and
// collinearity checks.
type Point struct {
	X field.Element
	Y field.Element
}

// LongDivision divides numerator by denominator, returning a quotient and
// remainder such that numerator = denominator*quotient + remainder and
// remainder.Degree() < denominator.Degree().
//
// Panics when denominator is the zero polynomial.
func LongDivision(numerator, denominator Polynomial) (quotient, remainder Polynomial) {
	if denominator.IsZero() {
		panic("division by zero polynomial")
	}
	if numerator.Degree() < denominator.Degree() {
		return Zero(), numerator
	}

	f := denominator.coeffs[0].Field()
	quotientCoeffs := make([]field.Element, numerator.Degree()-denominator.Degree()+1)
	for i := range quotientCoeffs {
		quotientCoeffs[i] = f.Zero()
	}

	denominatorLead := denominator.LeadingCoefficient()
	remainder = numerator
	for !remainder.IsZero() && remainder.Degree() >= denominator.Degree() {
		coeff := remainder.LeadingCoefficient().Div(denominatorLead)
		shift := remainder.Degree() - denominator.Degree()

		// Subtract coeff * x^shift * denominator to cancel the leading term.
		shiftCoeffs := make([]field.Element, shift+1)
		for i := range shiftCoeffs {
			shiftCoeffs[i] = f.Zero()
		}
		shiftCoeffs[shift] = coeff

		quotientCoeffs[shift] = coeff
		remainder = remainder.Sub(New(shiftCoeffs).Mul(denominator))
	}

	return New(quotientCoeffs), remainder
}

// Interpolate returns the unique polynomial of minimal degree that takes
// the given values over the given domain, by Lagrange interpolation.
//
// Panics when domain and values have different lengths, or when the
// domain contains duplicate points (which surfaces as a zero inversion).
func Interpolate(domain, values []field.Element) Polynomial {
	if len(domain) != len(values) {
		panic("interpolation requires as many values as domain points")
	}
	if len(domain) == 0 {
		return Zero()
	}

	f := domain[0].Field()
	x := X(f)

	acc := Zero()
	for i := range domain {
		prod := Constant(values[i])
		for j := range domain {
			if i == j {
				continue
			}
			prod = prod.
				Mul(x.Sub(Constant(domain[j]))).
				Mul(Constant(domain[i].Sub(domain[j]).Inv()))
		}
		acc = acc.Add(prod)
	}

	return acc
}

// Zerofier returns the polynomial that vanishes on every point of the
// given domain: the product of (x - d) over all d in domain.
func Zerofier(domain []field.Element) Polynomial {
	if len(domain) == 0 {
		return Zero()
	}

	f := domain[0].Field()
	x := X(f)

	acc := Constant(f.One())
	for _, d := range domain {
		acc = acc.Mul(x.Sub(Constant(d)))
	}

	return acc
}

// TestColinearity returns true if all given points lie on a common line,
// by interpolating them and checking that the degree is at most one.
func TestColinearity(points []Point) bool {
	domain := make([]field.Element, len(points))
	values := make([]field.Element, len(points))
	for i, pt := range points {
		domain[i] = pt.X
		values[i] = pt.Y
	}
	return Interpolate(domain, values).Degree() <= 1
}
