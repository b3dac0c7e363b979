package parser

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// ReadCSV reads x,y rows into draft points. The first record is treated as a
// header when neither of its first two fields is numeric. Missing or blank
// fields become nil coordinates; extra fields are ignored.
func ReadCSV(r io.Reader) ([]models.DraftPoint, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var header []string
	var points []models.DraftPoint
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		x := strings.TrimSpace(field(record, 0))
		y := strings.TrimSpace(field(record, 1))
		if first {
			first = false
			if isHeader(x, y) && (x != "" || y != "") {
				header = []string{x, y}
				continue
			}
		}
		if x == "" && y == "" {
			continue
		}
		points = append(points, models.DraftPoint{X: draftValue(x), Y: draftValue(y)})
	}

	return points, header, nil
}

func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
