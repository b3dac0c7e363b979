package stats

import "github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"

// Compute runs every statistic over ps.
func Compute(ps models.PointSet) models.Statistics {
	var s models.Statistics

	if fit, ok := BestFit(ps); ok {
		s.BestFit = &fit
	}
	if r2, ok := RSquared(ps); ok {
		s.RSquared = &r2
	}
	if area, ok := Integrate(ps); ok {
		s.Integration = &area
	}

	return s
}
