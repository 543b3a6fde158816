package bdmetric

import "errors"

// Sentinel errors returned by BDSNR and BDRate. Driver errors carry extra
// context, so callers should match with errors.Is.
var (
	// ErrNonPositiveRate indicates a rate value <= 0 where a logarithm is
	// required.
	ErrNonPositiveRate = errors.New("rate must be positive")

	// ErrInsufficientData indicates fewer than two distinct values along
	// the fitting axis, which is not enough to define a curve.
	ErrInsufficientData = errors.New("insufficient distinct points to fit a curve")

	// ErrNoOverlap indicates the two curves' domains do not intersect, so
	// there is no interval over which to compare them.
	ErrNoOverlap = errors.New("curve domains do not overlap")

	// ErrDegenerateInterval indicates a zero-width integration interval in
	// BDRate. BDSNR returns 0 in the same situation; the asymmetry matches
	// the established metric definition and is deliberate.
	ErrDegenerateInterval = errors.New("degenerate integration interval")
)
