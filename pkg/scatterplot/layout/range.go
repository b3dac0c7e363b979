// Package layout derives the chart coordinate system from a point set.
package layout

import (
	"math"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// AnalyzeRange computes the chart range of ps.
//
// x and y extremes are taken independently. With anchorOrigin both minimums
// are forced to 1 whatever the data says; otherwise MinY is floored. MaxY is
// always ceiled and MaxX is used as-is. An empty set yields a unit range.
func AnalyzeRange(ps models.PointSet, anchorOrigin bool) models.Range {
	if len(ps) == 0 {
		if anchorOrigin {
			return models.Range{MinX: 1, MaxX: 2, MinY: 1, MaxY: 2}
		}
		return models.Range{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	}

	minX, maxX := ps[0].X, ps[0].X
	minY, maxY := ps[0].Y, ps[0].Y
	for _, p := range ps[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	if anchorOrigin {
		minX = 1
		minY = 1
	}

	return models.Range{
		MinX: minX,
		MaxX: maxX,
		MinY: math.Floor(minY),
		MaxY: math.Ceil(maxY),
	}
}
