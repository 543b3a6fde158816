package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// PCHIP is a monotone piecewise cubic Hermite interpolant after Fritsch and
// Carlson. Between knots it never overshoots the data, which keeps fitted
// rate-distortion curves physically plausible. Knot derivatives use the
// weighted harmonic mean of adjacent secant slopes at interior knots and a
// one-sided three-point estimate at the boundaries.
type PCHIP struct {
	xs []float64

	// coeffs holds per-segment power-basis coefficients [c0 c1 c2 c3] in
	// the local variable t = x - xs[i], kept for closed-form integration.
	coeffs [][4]float64

	pc interp.PiecewiseCubic
}

var _ Curve = (*PCHIP)(nil)

// NewPCHIP fits an interpolant through the given knots. xs must be strictly
// increasing and the same length as ys, with at least 2 knots.
func NewPCHIP(xs, ys []float64) (*PCHIP, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("fit: mismatched lengths %d and %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("fit: need at least 2 knots, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("fit: knot positions must be strictly increasing (got %v before %v)", xs[i-1], xs[i])
		}
	}

	ds := pchipDerivatives(xs, ys)
	p := &PCHIP{
		xs:     append([]float64(nil), xs...),
		coeffs: make([][4]float64, len(xs)-1),
	}
	p.pc.FitWithDerivatives(xs, ys, ds)
	for i := range p.coeffs {
		h := xs[i+1] - xs[i]
		m := (ys[i+1] - ys[i]) / h
		p.coeffs[i] = [4]float64{
			ys[i],
			ds[i],
			(3*m - 2*ds[i] - ds[i+1]) / h,
			(ds[i] + ds[i+1] - 2*m) / (h * h),
		}
	}
	return p, nil
}

// Predict evaluates the interpolant at x. Outside [xs[0], xs[n-1]] the
// nearest knot value is returned.
func (p *PCHIP) Predict(x float64) float64 {
	return p.pc.Predict(x)
}

// Integrate returns the exact integral of the piecewise cubic over [a, b].
// Outside the knot range the first and last segment polynomials are
// extended.
func (p *PCHIP) Integrate(a, b float64) float64 {
	if a == b {
		return 0
	}
	if b < a {
		return -p.Integrate(b, a)
	}
	var total float64
	last := len(p.coeffs) - 1
	for i, c := range p.coeffs {
		lo, hi := p.xs[i], p.xs[i+1]
		if i == 0 {
			lo = math.Inf(-1)
		}
		if i == last {
			hi = math.Inf(1)
		}
		lo, hi = math.Max(lo, a), math.Min(hi, b)
		if hi <= lo {
			continue
		}
		total += segmentIntegral(c, hi-p.xs[i]) - segmentIntegral(c, lo-p.xs[i])
	}
	return total
}

// segmentIntegral evaluates the antiderivative of a segment polynomial at
// local offset t. The integration constant cancels in the caller's
// subtraction.
func segmentIntegral(c [4]float64, t float64) float64 {
	return t * (c[0] + t*(c[1]/2+t*(c[2]/3+t*c[3]/4)))
}

// pchipDerivatives computes knot derivatives per Fritsch and Carlson (1980)
// with the boundary treatment used by the classical PCHIP implementations.
func pchipDerivatives(xs, ys []float64) []float64 {
	n := len(xs)
	h := make([]float64, n-1)
	m := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
		m[i] = (ys[i+1] - ys[i]) / h[i]
	}

	d := make([]float64, n)
	if n == 2 {
		d[0], d[1] = m[0], m[0]
		return d
	}
	for i := 1; i < n-1; i++ {
		if m[i-1] == 0 || m[i] == 0 || (m[i-1] < 0) != (m[i] < 0) {
			// Local extremum: a zero derivative keeps the interpolant from
			// overshooting.
			continue
		}
		w1 := 2*h[i] + h[i-1]
		w2 := h[i] + 2*h[i-1]
		d[i] = (w1 + w2) / (w1/m[i-1] + w2/m[i])
	}
	d[0] = edgeDerivative(h[0], h[1], m[0], m[1])
	d[n-1] = edgeDerivative(h[n-2], h[n-3], m[n-2], m[n-3])
	return d
}

// edgeDerivative is the shape-preserving one-sided three-point estimate for
// an endpoint derivative. h0 and m0 belong to the boundary segment, h1 and
// m1 to its neighbour.
func edgeDerivative(h0, h1, m0, m1 float64) float64 {
	d := ((2*h0+h1)*m0 - h0*m1) / (h0 + h1)
	switch {
	case sign(d) != sign(m0):
		return 0
	case sign(m0) != sign(m1) && math.Abs(d) > 3*math.Abs(m0):
		return 3 * m0
	}
	return d
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
