package output

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// Fingerprint returns the xxHash64 of the point coordinates as 16 hex digits.
// Equal point sequences always produce equal fingerprints.
func Fingerprint(points models.PointSet) string {
	d := xxhash.New()
	var buf [16]byte
	for _, p := range points {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.Y))
		_, _ = d.Write(buf[:])
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
