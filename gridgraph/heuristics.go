// SPDX-License-Identifier: MIT

package gridgraph

import "math"

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Manhattan is |dx| + |dy|. Exact for Conn4 on an open grid.
func Manhattan(a, b Point) float64 {
	return float64(absInt(a.X-b.X) + absInt(a.Y-b.Y))
}

// Euclidean is the straight-line distance. Admissible for Conn4 and Conn8.
func Euclidean(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Octile is the cost of the best 8-directional route on an open grid:
// √2·min(dx,dy) + (max(dx,dy) - min(dx,dy)).
func Octile(a, b Point) float64 {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)
	lo, hi := min(dx, dy), max(dx, dy)

	return math.Sqrt2*float64(lo) + float64(hi-lo)
}

// Chebyshev is max(|dx|, |dy|). Admissible for Conn8 with any diagonal cost ≥ 1.
func Chebyshev(a, b Point) float64 {
	return float64(max(absInt(a.X-b.X), absInt(a.Y-b.Y)))
}
