package bdmetric

import "sort"

// axis selects which coordinate orders a point set.
type axis int

const (
	axisRate axis = iota
	axisQuality
)

func (a axis) String() string {
	if a == axisRate {
		return "rate"
	}
	return "quality"
}

// normalizePoints returns a copy of points with exact duplicate pairs
// removed, sorted ascending by the selected axis. Ties on the sort axis are
// broken by the other coordinate so the result is deterministic for any
// input permutation. The input slice is never modified.
func normalizePoints(points []Point, ax axis) []Point {
	out := make([]Point, len(points))
	copy(out, points)

	// A lexicographic (rate, quality) sort groups duplicate pairs together
	// and already is the final order for the rate axis.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rate != out[j].Rate {
			return out[i].Rate < out[j].Rate
		}
		return out[i].Quality < out[j].Quality
	})

	n := 0
	for i, p := range out {
		if i == 0 || p != out[n-1] {
			out[n] = p
			n++
		}
	}
	out = out[:n]

	if ax == axisQuality {
		sort.Slice(out, func(i, j int) bool {
			if out[i].Quality != out[j].Quality {
				return out[i].Quality < out[j].Quality
			}
			return out[i].Rate < out[j].Rate
		})
	}
	return out
}
