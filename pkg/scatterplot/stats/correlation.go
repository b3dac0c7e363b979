package stats

import (
	"math"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// RSquared returns the squared Pearson correlation of x and y.
// It reports false for fewer than two points or when either axis has no spread.
func RSquared(ps models.PointSet) (float64, bool) {
	if len(ps) < 2 || constant(ps.Xs()) || constant(ps.Ys()) {
		return 0, false
	}

	n := float64(len(ps))
	var sumX, sumXX, sumY, sumYY, sumXY float64
	for _, p := range ps {
		sumX += p.X
		sumXX += p.X * p.X
		sumY += p.Y
		sumYY += p.Y * p.Y
		sumXY += p.X * p.Y
	}

	numerator := n*sumXY - sumX*sumY
	xSide := n*sumXX - sumX*sumX
	ySide := n*sumYY - sumY*sumY
	if xSide <= 0 || ySide <= 0 {
		return 0, false
	}

	r := numerator / math.Sqrt(xSide*ySide)
	r2 := r * r
	if !finite(r2) {
		return 0, false
	}
	// rounding can push r slightly past ±1
	return math.Min(r2, 1), true
}
