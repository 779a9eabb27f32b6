package locus

import (
	"math/cmplx"
	"testing"
)

func complexNear(a, b complex128, eps float64) bool {
	return cmplx.Abs(a-b) <= eps
}

func TestNewPolynomial_TrimsTrailingZeros(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []complex128
		want   []complex128
	}{
		{"no trailing zeros", []complex128{2, -3, 1}, []complex128{2, -3, 1}},
		{"one trailing zero", []complex128{1, 2, 0}, []complex128{1, 2}},
		{"interior zeros kept", []complex128{0, 2, 3, 0, 4, 0, 0}, []complex128{0, 2, 3, 0, 4}},
		{"all zeros", []complex128{0, 0, 0}, []complex128{0}},
		{"empty", nil, []complex128{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPolynomial(tt.coeffs).Coefficients()
			if len(got) != len(tt.want) {
				t.Fatalf("Coefficients() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("coefficient %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewPolynomial_CopiesInput(t *testing.T) {
	in := []complex128{1, 2, 3}
	p := NewPolynomial(in)
	in[0] = 99
	if p.Coefficient(0) != 1 {
		t.Error("NewPolynomial must copy its input slice")
	}
}

func TestFromPoleZeros(t *testing.T) {
	// 1·(s-1)(s-2) = s² - 3s + 2
	p := FromPoleZeros(1, []complex128{1, 2})
	want := []complex128{2, -3, 1}
	got := p.Coefficients()
	if len(got) != len(want) {
		t.Fatalf("Coefficients() = %v, want %v", got, want)
	}
	for i := range want {
		if !complexNear(got[i], want[i], 1e-12) {
			t.Errorf("coefficient %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFromPoleZeros_ConjugatePair(t *testing.T) {
	// (s-(1+i))(s-(1-i)) = s² - 2s + 2, real coefficients.
	p := FromPoleZeros(1, []complex128{complex(1, 1)})
	want := []complex128{2, -2, 1}
	for i, w := range want {
		got := p.Coefficient(i)
		if !complexNear(got, w, 1e-12) {
			t.Errorf("coefficient %d = %v, want %v", i, got, w)
		}
		if imag(got) != 0 {
			t.Errorf("coefficient %d has imaginary part %v, want real", i, imag(got))
		}
	}
}

func TestEvaluate(t *testing.T) {
	// p(s) = 2 - 3s + s²; p(2) = 0, p(0) = 2, p(i) = 1 - 3i.
	p := NewPolynomial([]complex128{2, -3, 1})
	tests := []struct {
		name string
		s    complex128
		want complex128
	}{
		{"root", 2, 0},
		{"origin", 0, 2},
		{"imaginary", complex(0, 1), complex(1, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Evaluate(tt.s)
			if !complexNear(got, tt.want, 1e-12) {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestDerivative(t *testing.T) {
	// d/ds (1 + 2s - 8s² + 4s³) = 2 - 16s + 12s²
	p := NewPolynomial([]complex128{1, 2, -8, 4})
	want := []complex128{2, -16, 12}
	got := p.Derivative().Coefficients()
	if len(got) != len(want) {
		t.Fatalf("Derivative() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coefficient %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDerivative_Constant(t *testing.T) {
	p := NewPolynomial([]complex128{5})
	d := p.Derivative()
	if !d.IsZero() {
		t.Errorf("derivative of a constant = %v, want zero polynomial", d)
	}
}

func TestAddScale(t *testing.T) {
	// (1 + 2s) + 2·(-1 - 3s²) = -1 + 2s - 6s²
	a := NewPolynomial([]complex128{1, 2})
	b := NewPolynomial([]complex128{-1, 0, -3})
	got := a.Add(b.Scale(2)).Coefficients()
	want := []complex128{-1, 2, -6}
	if len(got) != len(want) {
		t.Fatalf("Add(Scale) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coefficient %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAdd_CancellationDropsDegree(t *testing.T) {
	a := NewPolynomial([]complex128{1, 0, 1})
	b := NewPolynomial([]complex128{0, 0, -1})
	sum := a.Add(b)
	if sum.Degree() != 0 {
		t.Errorf("degree after cancellation = %d, want 0", sum.Degree())
	}
}

func TestMul(t *testing.T) {
	// (1 + 2s)(-1 - 3s²) = -1 - 2s - 3s² - 6s³
	a := NewPolynomial([]complex128{1, 2})
	b := NewPolynomial([]complex128{-1, 0, -3})
	got := a.Mul(b).Coefficients()
	want := []complex128{-1, -2, -3, -6}
	if len(got) != len(want) {
		t.Fatalf("Mul() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coefficient %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRootBounds(t *testing.T) {
	// Roots of 1 + 2s - 8s² + 4s³: approximately -0.2406, 0.6555, 1.5850.
	p := NewPolynomial([]complex128{1, 2, -8, 4})
	roots := []float64{-0.2406, 0.6555, 1.5850}

	lo, hi := p.RootBounds()
	for _, r := range roots {
		abs := r
		if abs < 0 {
			abs = -abs
		}
		if abs < lo {
			t.Errorf("root %v smaller than lower bound %v", r, lo)
		}
		if abs > hi {
			t.Errorf("root %v larger than upper bound %v", r, hi)
		}
	}
}

func TestRootBounds_RootAtOrigin(t *testing.T) {
	// s² + s has a root at the origin: lower bound must be 0.
	p := NewPolynomial([]complex128{0, 1, 1})
	lo, _ := p.RootBounds()
	if lo != 0 {
		t.Errorf("lower bound = %v, want 0 for a root at the origin", lo)
	}
}
