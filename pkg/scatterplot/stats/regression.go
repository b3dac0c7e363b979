package stats

import (
	"math"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// BestFit fits y on x by ordinary least squares.
// It reports false for fewer than two points or when every x is equal.
func BestFit(ps models.PointSet) (models.Regression, bool) {
	if len(ps) < 2 || constant(ps.Xs()) {
		return models.Regression{}, false
	}

	n := float64(len(ps))
	var sumX, sumY float64
	for _, p := range ps {
		sumX += p.X
		sumY += p.Y
	}
	xHat := sumX / n
	yHat := sumY / n

	var numerator, denominator float64
	for _, p := range ps {
		dx := p.X - xHat
		numerator += dx * (p.Y - yHat)
		denominator += dx * dx
	}
	if denominator == 0 {
		return models.Regression{}, false
	}

	slope := numerator / denominator
	intercept := yHat - slope*xHat
	if !finite(slope) || !finite(intercept) {
		return models.Regression{}, false
	}

	return models.Regression{Slope: slope, YIntercept: intercept}, true
}

// constant reports whether all values are identical.
func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
