package locus

import (
	"fmt"
	"math"
	"slices"
)

// TransferFunction is a validated pair of polynomials N(s)/D(s). It is
// immutable once constructed: the root locus of the closed loop traces the
// roots of the characteristic polynomial D(s) + K·N(s) as the gain K varies.
//
// The solver does not require deg N <= deg D, although that is the usual
// shape for a physical system.
type TransferFunction struct {
	num Polynomial
	den Polynomial
}

// NewTransferFunction validates and wraps a numerator/denominator pair.
// It returns ErrInvalidTransferFunction when the denominator is identically
// zero, or when both polynomials are zero.
func NewTransferFunction(num, den Polynomial) (*TransferFunction, error) {
	if den.IsZero() {
		return nil, fmt.Errorf("%w: denominator is identically zero", ErrInvalidTransferFunction)
	}
	return &TransferFunction{num: num, den: den}, nil
}

// Numerator returns N(s).
func (tf *TransferFunction) Numerator() Polynomial { return tf.num }

// Denominator returns D(s).
func (tf *TransferFunction) Denominator() Polynomial { return tf.den }

// Characteristic returns the characteristic polynomial D(s) + k·N(s).
func (tf *TransferFunction) Characteristic(k float64) Polynomial {
	return tf.den.Add(tf.num.Scale(k))
}

// Branches returns the number of locus branches, the degree of the
// characteristic polynomial at zero gain.
func (tf *TransferFunction) Branches() int {
	return tf.den.Degree()
}

// GainAt computes the complex gain k = -D(p)/N(p) that places a closed-loop
// pole at p. For points actually on the locus the result is (numerically
// close to) real.
func (tf *TransferFunction) GainAt(p complex128) complex128 {
	return -tf.den.Evaluate(p) / tf.num.Evaluate(p)
}

// BreakawayGains returns the real gains at which locus branches meet or
// split, the gains at the roots of D′N - DN′. Results are finite, positive
// and sorted ascending; non-real and non-finite candidates are discarded.
//
// A nil or unconverged result from the solver is tolerated: candidates are
// a sampling refinement, never load-bearing.
func (tf *TransferFunction) BreakawayGains(s *Solver) []float64 {
	inter := tf.den.Derivative().Mul(tf.num).Add(tf.den.Mul(tf.num.Derivative()).Scale(-1))
	if inter.Degree() < 1 {
		return nil
	}
	res, err := s.Solve(inter)
	if err != nil {
		return nil
	}

	var gains []float64
	for _, p := range res.Roots {
		k := tf.GainAt(p)
		if math.IsNaN(real(k)) || math.IsInf(real(k), 0) {
			continue
		}
		// The gain at a genuine breakaway point is real; discard candidates
		// whose imaginary part dominates.
		if math.Abs(imag(k)) > 1e-6*(1+math.Abs(real(k))) {
			continue
		}
		if real(k) <= 0 {
			continue
		}
		gains = append(gains, real(k))
	}
	slices.Sort(gains)
	return gains
}
