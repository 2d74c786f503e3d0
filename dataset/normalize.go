package dataset

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const inspectionTimeLayout = "01/02/2006 15:04"

// NormalizeReport counts the rows dropped by the coordinate sentinel,
// separately from any later completeness drops.
type NormalizeReport struct {
	RowsIn            int
	RowsOut           int
	DroppedCoordinate int
}

// Normalizer derives structured fields from the composite coordinate,
// postal code and timestamp columns.
type Normalizer struct{}

// Normalize returns the input rows augmented with latitude, longitude,
// 5-digit postal code, date, year, month and hour columns.
//
// A parsed latitude of exactly 0 is the export's sentinel for a missing
// or unparseable coordinate, and those rows are dropped here. Negated
// longitudes correct sign-entry errors in the source data; every
// restaurant in the dataset is in the western hemisphere. Rows whose
// timestamp fails to parse keep empty derived fields and are left for
// the completeness filter.
func (n *Normalizer) Normalize(ctx context.Context, t *data.Table) (*data.Table, *NormalizeReport, error) {
	l := ctxlogrus.Get(ctx)

	for _, col := range []string{data.ColCoordinate, data.ColZip, data.ColInspectionTime} {
		if !t.HasColumn(col) {
			return nil, nil, errors.Errorf("Normalize missing required column %s", col)
		}
	}
	coordIdx := t.ColumnIndex(data.ColCoordinate)
	zipIdx := t.ColumnIndex(data.ColZip)
	timeIdx := t.ColumnIndex(data.ColInspectionTime)

	columns := append(append([]string{}, t.Columns...),
		data.ColLatitude, data.ColLongitude, data.ColZip5,
		data.ColDate, data.ColYear, data.ColMonth, data.ColHour)
	out := data.NewTable(columns)

	report := &NormalizeReport{RowsIn: t.NumRows()}
	for _, row := range t.Rows {
		lat, lon := parseCoordinate(row[coordIdx])
		if lat == 0 {
			report.DroppedCoordinate++
			continue
		}
		lon = -math.Abs(lon)

		zip5 := row[zipIdx]
		if len(zip5) > 5 {
			zip5 = zip5[:5]
		}

		var date, year, month, hour string
		if when, err := time.Parse(inspectionTimeLayout, strings.TrimSpace(row[timeIdx])); err == nil {
			date = when.Format("01/02/2006")
			year = date[6:]
			month = date[:2]
			hour = when.Format("15")
		}

		cells := append(append([]string{}, row...),
			strconv.FormatFloat(lat, 'f', -1, 64),
			strconv.FormatFloat(lon, 'f', -1, 64),
			zip5, date, year, month, hour)
		out.AppendRow(cells)
	}
	report.RowsOut = out.NumRows()

	l.Infof("Normalized %d rows; dropped %d with unusable coordinates", report.RowsIn, report.DroppedCoordinate)
	return out, report, nil
}

// parseCoordinate splits a composite "(lat, lon)" cell. Anything
// unparseable comes back as latitude 0, the sentinel the caller drops.
func parseCoordinate(cell string) (lat, lon float64) {
	s := strings.TrimSpace(cell)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0
	}
	return lat, lon
}
