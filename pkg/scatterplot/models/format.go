package models

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v in its shortest round-trip form, switching to exponent
// notation outside [1e-6, 1e21) with an unpadded exponent ("1e+21", "1e-7").
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		idx := strings.IndexByte(s, 'e')
		mantissa, exp := s[:idx], s[idx+1:]
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Coordinate formats a point as "(x, y)".
func (p Point) Coordinate() string {
	return "(" + FormatNumber(p.X) + ", " + FormatNumber(p.Y) + ")"
}
