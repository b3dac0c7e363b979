package stats

import (
	"math"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// Integrate returns the signed area between the x-axis and the polyline
// through the points sorted by x. Area below the axis counts negative.
// It reports false for fewer than two points or when the sum overflows.
func Integrate(ps models.PointSet) (float64, bool) {
	if len(ps) < 2 {
		return 0, false
	}

	sorted := ps.SortedByX()
	var area float64
	for i := 0; i < len(sorted)-1; i++ {
		area += segmentArea(sorted[i], sorted[i+1])
	}
	if !finite(area) {
		return 0, false
	}
	return area, true
}

// segmentArea is the signed area contributed by the segment a-b.
func segmentArea(a, b models.Point) float64 {
	width := b.X - a.X

	switch {
	case a.Y >= 0 && b.Y >= 0:
		low, high := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
		rectangle := low * width
		triangle := (high - low) * width / 2
		return rectangle + triangle

	case a.Y <= 0 && b.Y <= 0:
		// nearest to zero forms the rectangle; both parts are negative
		near, far := math.Max(a.Y, b.Y), math.Min(a.Y, b.Y)
		rectangle := near * width
		triangle := (far - near) * width / 2
		return rectangle + triangle

	default:
		// the segment crosses zero: split it where it meets the axis
		neg, pos := a.Y, b.Y
		if neg > pos {
			neg, pos = pos, neg
		}
		span := pos - neg
		xBelow := math.Abs(neg) / span * width
		xAbove := pos / span * width
		return xBelow*neg/2 + xAbove*pos/2
	}
}
