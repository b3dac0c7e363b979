// Package stats computes the derived values of a scatter chart: the
// least-squares best-fit line, the coefficient of determination, and the
// signed area under the piecewise-linear curve through the points.
//
// Each function reports availability instead of returning NaN. Inputs with
// too few points or no spread on a required axis are unavailable.
package stats
