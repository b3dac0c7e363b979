// Package points converts user-entered draft points into validated point sets.
package points

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// Sanitize keeps the drafts whose coordinates both parse to finite numbers.
// Invalid entries are dropped without error; order is preserved.
func Sanitize(drafts []models.DraftPoint) models.PointSet {
	result := make(models.PointSet, 0, len(drafts))
	for _, d := range drafts {
		x, ok := ParseCoordinate(d.X)
		if !ok {
			continue
		}
		y, ok := ParseCoordinate(d.Y)
		if !ok {
			continue
		}
		result = append(result, models.Point{X: x, Y: y})
	}
	return result
}

// Draft converts a point set back into editable drafts.
func Draft(ps models.PointSet) []models.DraftPoint {
	drafts := make([]models.DraftPoint, len(ps))
	for i, p := range ps {
		drafts[i] = models.DraftPoint{X: p.X, Y: p.Y}
	}
	return drafts
}

// ParseCoordinate converts a raw coordinate into a finite float64.
// Strings are trimmed and parsed strictly; nil and other types are rejected.
func ParseCoordinate(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case *string:
		if n == nil {
			return 0, false
		}
		return ParseCoordinate(*n)
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
