package dataset

import (
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/pkg/errors"
)

// excludedColumns are identifier-like, free-text, or superseded by the
// fields normalization derives from them. CURRENT_GRADE is excluded
// too; it adds no signal beyond the demerit and violation counts.
var excludedColumns = []string{
	data.ColSerialNumber,
	data.ColPermitNumber,
	data.ColName,
	data.ColLocation,
	data.ColCity,
	data.ColState,
	data.ColZip,
	data.ColCoordinate,
	data.ColCurrentGrade,
	data.ColInspectionTime,
	data.ColRecordUpdated,
	data.ColDate,
}

// FeatureSelector produces the model-ready feature table. The outcome
// column is never a feature; it is split out as the supervised target.
type FeatureSelector struct{}

func (s *FeatureSelector) Select(t *data.Table) *data.Table {
	return t.DropColumns(append(append([]string{}, excludedColumns...), data.ColOutcome)...)
}

// Target extracts the binary outcome column as floats.
func (s *FeatureSelector) Target(t *data.Table) ([]float64, error) {
	cells := t.Column(data.ColOutcome)
	if cells == nil {
		return nil, errors.Errorf("Target missing outcome column %s", data.ColOutcome)
	}

	target := make([]float64, len(cells))
	for i, cell := range cells {
		switch cell {
		case "0":
			target[i] = 0
		case "1":
			target[i] = 1
		default:
			return nil, errors.Errorf("Target got non-binary outcome %q at row %d", cell, i)
		}
	}
	return target, nil
}
