// Package bdmetric computes Bjontegaard-Delta metrics comparing two
// rate-distortion curves: BDSNR, the average quality gain at equal bitrate,
// and BDRate, the average bitrate change at equal quality.
//
// Each driver turns two small sets of (rate, quality) measurements into a
// single scalar by deduplicating and sorting the points, fitting a curve in
// log-rate space, and integrating both curves in closed form over the
// interval where their domains overlap. Both drivers are pure functions:
// inputs are never modified, no state is shared, and concurrent calls need
// no coordination.
package bdmetric

import (
	"fmt"
	"math"

	"github.com/banshee-data/bdmetric/internal/fit"
	"gonum.org/v1/gonum/floats"
)

// Point is one rate-distortion measurement: a bitrate (bits per second or
// bits per pixel, any consistent positive unit) and a quality score such as
// PSNR in dB.
type Point struct {
	Rate    float64
	Quality float64
}

// Mode selects the curve fitting strategy.
type Mode int

const (
	// ModePCHIP fits a shape-preserving piecewise cubic through every
	// point. This is the default mode.
	ModePCHIP Mode = iota
	// ModePolynomial fits a single global cubic by least squares. With
	// fewer than four distinct points the system is under-determined and
	// the minimum-norm solution is used.
	ModePolynomial
)

// expClamp caps the BDRate exponent so badly formed data cannot overflow
// the final exponentiation.
const expClamp = 200

// BDSNR returns the average quality gain of set2 over set1 at equal
// bitrate, in the units of the quality score. Positive values mean set2 is
// better.
//
// Both sets are normalized internally, so input order and exact duplicate
// points do not affect the result. If the two curves' bitrate ranges meet
// at exactly one point the result is 0; if they do not overlap at all,
// BDSNR fails with ErrNoOverlap.
func BDSNR(set1, set2 []Point, mode Mode) (float64, error) {
	c1, err := newColumns(set1, axisRate)
	if err != nil {
		return 0, fmt.Errorf("bdmetric: set1: %w", err)
	}
	c2, err := newColumns(set2, axisRate)
	if err != nil {
		return 0, fmt.Errorf("bdmetric: set2: %w", err)
	}

	minInt := math.Max(floats.Min(c1.logRate), floats.Min(c2.logRate))
	maxInt := math.Min(floats.Max(c1.logRate), floats.Max(c2.logRate))
	if minInt > maxInt {
		return 0, fmt.Errorf("bdmetric: log-rate ranges: %w", ErrNoOverlap)
	}

	curve1, err := fitCurve(c1.logRate, c1.quality, mode)
	if err != nil {
		return 0, fmt.Errorf("bdmetric: set1: %w", err)
	}
	curve2, err := fitCurve(c2.logRate, c2.quality, mode)
	if err != nil {
		return 0, fmt.Errorf("bdmetric: set2: %w", err)
	}

	if maxInt == minInt {
		// The bitrate ranges meet at a single point. Zero-width interval,
		// zero average gain.
		return 0, nil
	}
	int1 := curve1.Integrate(minInt, maxInt)
	int2 := curve2.Integrate(minInt, maxInt)
	return (int2 - int1) / (maxInt - minInt), nil
}

// BDRate returns the average bitrate difference of set2 versus set1 at
// equal quality, as a percentage. Negative values mean set2 needs less
// bitrate for the same quality.
//
// Unlike BDSNR, a zero-width quality overlap has no defined fallback and
// fails with ErrDegenerateInterval; disjoint quality ranges fail with
// ErrNoOverlap. The exponent of the final percentage conversion is clamped
// at 200, so the result never exceeds (e^200 - 1) * 100.
func BDRate(set1, set2 []Point, mode Mode) (float64, error) {
	c1, err := newColumns(set1, axisQuality)
	if err != nil {
		return 0, fmt.Errorf("bdmetric: set1: %w", err)
	}
	c2, err := newColumns(set2, axisQuality)
	if err != nil {
		return 0, fmt.Errorf("bdmetric: set2: %w", err)
	}

	minInt := math.Max(floats.Min(c1.quality), floats.Min(c2.quality))
	maxInt := math.Min(floats.Max(c1.quality), floats.Max(c2.quality))
	if minInt > maxInt {
		return 0, fmt.Errorf("bdmetric: quality ranges: %w", ErrNoOverlap)
	}

	curve1, err := fitCurve(c1.quality, c1.logRate, mode)
	if err != nil {
		return 0, fmt.Errorf("bdmetric: set1: %w", err)
	}
	curve2, err := fitCurve(c2.quality, c2.logRate, mode)
	if err != nil {
		return 0, fmt.Errorf("bdmetric: set2: %w", err)
	}

	if maxInt == minInt {
		return 0, fmt.Errorf("bdmetric: quality ranges meet at the single point %v: %w", minInt, ErrDegenerateInterval)
	}
	int1 := curve1.Integrate(minInt, maxInt)
	int2 := curve2.Integrate(minInt, maxInt)

	avgExpDiff := (int2 - int1) / (maxInt - minInt)
	if avgExpDiff > expClamp {
		avgExpDiff = expClamp
	}
	return (math.Exp(avgExpDiff) - 1) * 100, nil
}

// columns holds one normalized point set split into coordinate slices.
type columns struct {
	logRate []float64
	quality []float64
}

// newColumns normalizes a point set along ax and extracts its log-rate and
// quality columns. It fails when a rate is non-positive or when fewer than
// two distinct values remain along the fitting axis.
func newColumns(points []Point, ax axis) (*columns, error) {
	norm := normalizePoints(points, ax)
	c := &columns{
		logRate: make([]float64, len(norm)),
		quality: make([]float64, len(norm)),
	}
	for i, p := range norm {
		if p.Rate <= 0 {
			return nil, fmt.Errorf("rate %v: %w", p.Rate, ErrNonPositiveRate)
		}
		c.logRate[i] = math.Log(p.Rate)
		c.quality[i] = p.Quality
	}

	// The column matching the sort axis is ordered, so distinct values are
	// adjacent.
	key := c.logRate
	if ax == axisQuality {
		key = c.quality
	}
	if countDistinct(key) < 2 {
		return nil, fmt.Errorf("need at least 2 distinct %s values: %w", ax, ErrInsufficientData)
	}
	return c, nil
}

// countDistinct counts distinct values in an ascending slice.
func countDistinct(sorted []float64) int {
	n := 0
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			n++
		}
	}
	return n
}

// fitCurve builds a curve of ys as a function of xs using the selected
// fitting mode.
func fitCurve(xs, ys []float64, mode Mode) (fit.Curve, error) {
	switch mode {
	case ModePCHIP:
		return fit.NewPCHIP(xs, ys)
	case ModePolynomial:
		return fit.NewPoly(xs, ys)
	}
	return nil, fmt.Errorf("unknown fit mode %d", mode)
}
