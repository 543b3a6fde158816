package fit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// polyDegree is the fixed degree of the global polynomial fit.
const polyDegree = 3

// Poly is a global cubic fitted to sample points by least squares. With
// fewer than four distinct points the system is under-determined and the
// minimum-norm solution is used, which still passes through the samples
// exactly.
type Poly struct {
	// coeffs are in descending power order:
	// coeffs[0]*x^3 + coeffs[1]*x^2 + coeffs[2]*x + coeffs[3].
	coeffs [polyDegree + 1]float64
}

var _ Curve = (*Poly)(nil)

// NewPoly fits a cubic to the given samples. xs must be the same length as
// ys, with at least 2 samples. Duplicate x values are allowed.
func NewPoly(xs, ys []float64) (*Poly, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("fit: mismatched lengths %d and %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("fit: need at least 2 samples, got %d", len(xs))
	}

	// Vandermonde design matrix, highest power first.
	a := mat.NewDense(len(xs), polyDegree+1, nil)
	for i, x := range xs {
		v := 1.0
		for j := polyDegree; j >= 0; j-- {
			a.Set(i, j, v)
			v *= x
		}
	}
	b := mat.NewVecDense(len(ys), ys)

	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		// A Condition error flags an ill-conditioned system but the
		// solution is still the least-squares answer.
		if _, ok := err.(mat.Condition); !ok {
			return nil, fmt.Errorf("fit: cubic least squares: %w", err)
		}
	}

	var p Poly
	for i := range p.coeffs {
		p.coeffs[i] = c.AtVec(i)
	}
	return &p, nil
}

// Predict evaluates the fitted cubic at x.
func (p *Poly) Predict(x float64) float64 {
	var v float64
	for _, c := range p.coeffs {
		v = v*x + c
	}
	return v
}

// Integrate returns P(b) - P(a) where P is the degree-4 antiderivative of
// the fitted cubic. The constant of integration cancels.
func (p *Poly) Integrate(a, b float64) float64 {
	return p.antiderivative(b) - p.antiderivative(a)
}

func (p *Poly) antiderivative(x float64) float64 {
	var v float64
	for i, c := range p.coeffs {
		v = v*x + c/float64(polyDegree+1-i)
	}
	return v * x
}
