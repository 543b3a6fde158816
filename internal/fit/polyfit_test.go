package fit

import (
	"math"
	"testing"
)

func TestNewPolyValidation(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"mismatched lengths", []float64{0, 1, 2}, []float64{0, 1}},
		{"single sample", []float64{0}, []float64{1}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPoly(tt.xs, tt.ys); err == nil {
				t.Errorf("NewPoly(%v, %v) expected error, got nil", tt.xs, tt.ys)
			}
		})
	}
}

// TestPolyRecoversCubic fits samples drawn exactly from a cubic and checks
// the coefficients, evaluation and integral come back exact.
func TestPolyRecoversCubic(t *testing.T) {
	f := func(x float64) float64 { return 2*x*x*x - x*x + 0.5*x - 3 }
	xs := []float64{-2, -1, 0, 1, 2, 3}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	p, err := NewPoly(xs, ys)
	if err != nil {
		t.Fatalf("NewPoly: %v", err)
	}

	want := [4]float64{2, -1, 0.5, -3}
	for i, c := range p.coeffs {
		if math.Abs(c-want[i]) > 1e-8 {
			t.Errorf("coeffs[%d] = %v, want %v", i, c, want[i])
		}
	}
	if got := p.Predict(1.5); math.Abs(got-f(1.5)) > 1e-8 {
		t.Errorf("Predict(1.5) = %v, want %v", got, f(1.5))
	}
	// Antiderivative x^4/2 - x^3/3 + x^2/4 - 3x over [0, 2]: 1/3.
	if got := p.Integrate(0, 2); math.Abs(got-1.0/3.0) > 1e-8 {
		t.Errorf("Integrate(0, 2) = %v, want 1/3", got)
	}
}

// TestPolyQuadraticData checks that data from a lower-degree polynomial is
// reproduced exactly with a near-zero cubic term.
func TestPolyQuadraticData(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x
	}

	p, err := NewPoly(xs, ys)
	if err != nil {
		t.Fatalf("NewPoly: %v", err)
	}
	if got := p.Integrate(0, 3); math.Abs(got-9) > 1e-8 {
		t.Errorf("Integrate(0, 3) = %v, want 9", got)
	}
	for i, x := range xs {
		if got := p.Predict(x); math.Abs(got-ys[i]) > 1e-8 {
			t.Errorf("Predict(%v) = %v, want %v", x, got, ys[i])
		}
	}
}

// TestPolyUnderdetermined: with fewer than four samples the minimum-norm
// fit still interpolates the data exactly.
func TestPolyUnderdetermined(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{1, 3}

	p, err := NewPoly(xs, ys)
	if err != nil {
		t.Fatalf("NewPoly: %v", err)
	}
	for i, x := range xs {
		if got := p.Predict(x); math.Abs(got-ys[i]) > 1e-8 {
			t.Errorf("Predict(%v) = %v, want %v", x, got, ys[i])
		}
	}
}

func TestPolyIntegrateReversed(t *testing.T) {
	p, err := NewPoly([]float64{0, 1, 2, 3}, []float64{0, 1, 8, 27})
	if err != nil {
		t.Fatalf("NewPoly: %v", err)
	}
	fwd, rev := p.Integrate(0, 3), p.Integrate(3, 0)
	if rev != -fwd {
		t.Errorf("Integrate(3, 0) = %v, want %v", rev, -fwd)
	}
}
