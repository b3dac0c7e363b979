package models

import "fmt"

// Regression is a least-squares line y = Slope*x + YIntercept.
type Regression struct {
	// Slope is the line gradient.
	Slope float64 `json:"slope"`
	// YIntercept is the value of the line at x = 0.
	YIntercept float64 `json:"y_intercept"`
}

// At evaluates the line at x.
func (r Regression) At(x float64) float64 {
	return r.Slope*x + r.YIntercept
}

// Equation formats the line with three decimals, e.g. "y = 2.000x + 0.000".
func (r Regression) Equation() string {
	return fmt.Sprintf("y = %.3fx + %.3f", r.Slope, r.YIntercept)
}

// Statistics holds the derived values of a point set.
// A nil field means the value is unavailable for the input.
type Statistics struct {
	// BestFit is the least-squares line (nil if undefined).
	BestFit *Regression `json:"best_fit_line"`
	// RSquared is the coefficient of determination (nil if undefined).
	RSquared *float64 `json:"correlation_coefficient"`
	// Integration is the signed area under the piecewise-linear curve (nil if undefined).
	Integration *float64 `json:"integration"`
}
