// Package seriesfile persists the weight log in its canonical
// two-column CSV format: a unit-declaring header followed by one row
// per calendar day, blank or not.
package seriesfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yanqian/weight-advisor/internal/domain/series"
	apperrors "github.com/yanqian/weight-advisor/pkg/errors"
	"github.com/yanqian/weight-advisor/pkg/units"
)

const dateColumn = "Date"

// Decode reads the CSV and returns the declared unit together with the
// raw rows. The unit is an explicit tag from here on; nothing later
// re-inspects header text.
func Decode(r io.Reader) (units.Weight, []series.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.CodeParse, "weight log is missing its header", err)
	}
	unit, err := parseHeader(header)
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.CodeParse, "weight log header is malformed", err)
	}

	var rows []series.RawRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, apperrors.Wrap(apperrors.CodeParse, "weight log row is malformed", err)
		}
		rows = append(rows, series.RawRow{Date: record[0], Value: record[1]})
	}
	return unit, rows, nil
}

// Encode writes the canonical representation: always metric, shortest
// float form so kilogram values round-trip exactly.
func Encode(w io.Writer, rows []series.DailyRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{dateColumn, weightColumn(units.Kg)}); err != nil {
		return err
	}
	for _, r := range rows {
		value := ""
		if !r.Blank() {
			value = strconv.FormatFloat(*r.KG, 'f', -1, 64)
		}
		if err := cw.Write([]string{r.Date.Format(series.DateFormat), value}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseHeader(fields []string) (units.Weight, error) {
	if strings.TrimSpace(fields[0]) != dateColumn {
		return "", fmt.Errorf("first column must be %q, got %q", dateColumn, fields[0])
	}
	col := strings.TrimSpace(fields[1])
	open := strings.LastIndex(col, "(")
	if open < 0 || !strings.HasSuffix(col, ")") {
		return "", fmt.Errorf("second column %q does not declare a unit", col)
	}
	return units.ParseWeight(col[open+1 : len(col)-1])
}

func weightColumn(u units.Weight) string {
	return fmt.Sprintf("Weight (%s)", u)
}
