package locus

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Polynomial is an immutable univariate polynomial with complex
// coefficients. Coefficients are stored lowest degree first: coefficient i
// multiplies s^i. The representation is normalized so that the leading
// (highest-degree) coefficient is nonzero, except for the zero polynomial,
// which is stored as a single zero coefficient.
//
// All operations are pure: they never mutate their receiver or arguments
// and return new values.
type Polynomial struct {
	coeffs []complex128
}

// NewPolynomial creates a polynomial from coefficients in lowest-degree-first
// order. The slice is copied, and trailing zero coefficients are trimmed so
// the leading coefficient is nonzero. An empty slice yields the zero
// polynomial.
func NewPolynomial(coeffs []complex128) Polynomial {
	n := len(coeffs)
	for n > 1 && coeffs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Polynomial{coeffs: []complex128{0}}
	}
	c := make([]complex128, n)
	copy(c, coeffs[:n])
	return Polynomial{coeffs: c}
}

// FromPoleZeros builds the real-coefficient polynomial
// gain · Π (s - rᵢ) from a list of roots. A root with a nonzero imaginary
// part contributes its complex conjugate as well, so the product stays real;
// list only one member of each conjugate pair.
func FromPoleZeros(gain float64, roots []complex128) Polynomial {
	acc := []complex128{complex(gain, 0)}
	for _, r := range roots {
		if imag(r) == 0 {
			// (s - r)
			acc = convolve(acc, []complex128{-r, 1})
			continue
		}
		// (s - r)(s - conj(r)) = s² - 2·Re(r)·s + |r|²
		acc = convolve(acc, []complex128{
			complex(real(r)*real(r)+imag(r)*imag(r), 0),
			complex(-2*real(r), 0),
			1,
		})
	}
	return NewPolynomial(acc)
}

// convolve multiplies two coefficient sequences.
func convolve(a, b []complex128) []complex128 {
	out := make([]complex128, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			out[i+j] += x * y
		}
	}
	return out
}

// Degree returns the degree of the polynomial. The zero polynomial and
// nonzero constants both report degree 0.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether the polynomial is identically zero.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0] == 0
}

// Coefficient returns the coefficient of s^i, or zero when i is out of range.
func (p Polynomial) Coefficient(i int) complex128 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Leading returns the highest-degree coefficient.
func (p Polynomial) Leading() complex128 {
	return p.coeffs[len(p.coeffs)-1]
}

// Coefficients returns a copy of the coefficients, lowest degree first.
func (p Polynomial) Coefficients() []complex128 {
	c := make([]complex128, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Evaluate computes p(s) by Horner's rule.
func (p Polynomial) Evaluate(s complex128) complex128 {
	var acc complex128
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*s + p.coeffs[i]
	}
	return acc
}

// Derivative returns dp/ds.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) == 1 {
		return NewPolynomial(nil)
	}
	out := make([]complex128, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		out[i-1] = p.coeffs[i] * complex(float64(i), 0)
	}
	return NewPolynomial(out)
}

// Add returns p + q, padding the shorter polynomial with zeros.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := max(len(p.coeffs), len(q.coeffs))
	out := make([]complex128, n)
	for i := range out {
		out[i] = p.Coefficient(i) + q.Coefficient(i)
	}
	return NewPolynomial(out)
}

// Scale returns k·p.
func (p Polynomial) Scale(k float64) Polynomial {
	out := make([]complex128, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c * complex(k, 0)
	}
	return NewPolynomial(out)
}

// Mul returns p·q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	return NewPolynomial(convolve(p.coeffs, q.coeffs))
}

// maxRootBound returns an upper bound on the magnitude of the roots of the
// coefficient sequence, the smaller of the Lagrange and Cauchy bounds.
// The sequence's last entry must be nonzero.
func maxRootBound(coeffs []complex128) float64 {
	last := cmplx.Abs(coeffs[len(coeffs)-1])
	lagrange := 0.0
	cauchy := 0.0
	for _, c := range coeffs[:len(coeffs)-1] {
		div := cmplx.Abs(c) / last
		lagrange += div
		cauchy = math.Max(cauchy, div)
	}
	lagrange = math.Max(lagrange, 1)
	cauchy++
	return math.Min(lagrange, cauchy)
}

// RootBounds returns lower and upper bounds on the magnitude of the roots.
// The lower bound comes from applying the upper bound to the reversed
// coefficient sequence; it is 0 when the constant term vanishes (a root at
// the origin).
func (p Polynomial) RootBounds() (lo, hi float64) {
	hi = maxRootBound(p.coeffs)
	if p.coeffs[0] == 0 {
		return 0, hi
	}
	rev := make([]complex128, len(p.coeffs))
	for i, c := range p.coeffs {
		rev[len(p.coeffs)-1-i] = c
	}
	return 1 / maxRootBound(rev), hi
}

// String renders the polynomial highest degree first, e.g.
// "(1+0i)s^2 + (-3+0i)s + (2+0i)".
func (p Polynomial) String() string {
	var b strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		switch i {
		case 0:
			fmt.Fprintf(&b, "%v", p.coeffs[i])
		case 1:
			fmt.Fprintf(&b, "%vs + ", p.coeffs[i])
		default:
			fmt.Fprintf(&b, "%vs^%d + ", p.coeffs[i], i)
		}
	}
	return b.String()
}
