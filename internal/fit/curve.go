// Package fit provides the curve fitting strategies behind the
// Bjontegaard-Delta drivers: a shape-preserving piecewise cubic interpolant
// and a global least-squares cubic. Both integrate in closed form rather
// than by quadrature, so results are exactly reproducible for identical
// inputs.
package fit

// Curve is a fitted one-dimensional curve.
type Curve interface {
	// Predict evaluates the curve at x.
	Predict(x float64) float64

	// Integrate returns the definite integral of the curve over [a, b].
	// A reversed interval negates the result; an empty interval is 0.
	Integrate(a, b float64) float64
}
