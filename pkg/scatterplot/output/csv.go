package output

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// WriteCSV writes the points as an "X,Y" table in input order.
func WriteCSV(w io.Writer, points models.PointSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"X", "Y"}); err != nil {
		return err
	}
	for _, p := range points {
		if err := cw.Write([]string{models.FormatNumber(p.X), models.FormatNumber(p.Y)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFileName derives a file name from a chart title:
// "Velocity vs. Time" becomes "VelocityVsTime" + ext.
func ExportFileName(title, ext string) string {
	name := strings.Replace(title, "vs.", "Vs.", 1)
	name = strings.ReplaceAll(name, " ", "")
	name = strings.Replace(name, ".", "", 1)
	return name + ext
}
