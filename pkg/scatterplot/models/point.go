// Package models defines data structures for scatter chart analysis.
package models

import "sort"

// Point is a validated data-space coordinate pair.
type Point struct {
	// X is the horizontal data value.
	X float64 `json:"x"`
	// Y is the vertical data value.
	Y float64 `json:"y"`
}

// DraftPoint is an editable, possibly incomplete point as entered by a user.
// Each coordinate may hold a number, a numeric string, nil, or anything else.
type DraftPoint struct {
	// X is the raw horizontal value.
	X interface{} `json:"x"`
	// Y is the raw vertical value.
	Y interface{} `json:"y"`
}

// PointSet is an ordered sequence of validated points.
type PointSet []Point

// SortedByX returns a copy of the set ordered by ascending x.
// Points sharing an x value keep their relative order.
func (ps PointSet) SortedByX() PointSet {
	sorted := make(PointSet, len(ps))
	copy(sorted, ps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})
	return sorted
}

// Xs returns the x coordinates in order.
func (ps PointSet) Xs() []float64 {
	xs := make([]float64, len(ps))
	for i, p := range ps {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the y coordinates in order.
func (ps PointSet) Ys() []float64 {
	ys := make([]float64, len(ps))
	for i, p := range ps {
		ys[i] = p.Y
	}
	return ys
}
