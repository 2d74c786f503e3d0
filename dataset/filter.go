package dataset

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
)

// FilterReport counts rows dropped for holding any missing value.
type FilterReport struct {
	RowsIn  int
	RowsOut int
	Dropped int
}

func (r *FilterReport) DroppedPercent() float64 {
	if r.RowsIn == 0 {
		return 0
	}
	return 100 * float64(r.Dropped) / float64(r.RowsIn)
}

// CompletenessFilter retains only rows with no missing value in any
// column. No imputation, no partial retention; the drop count is an
// observable used for reporting only.
type CompletenessFilter struct{}

func (f *CompletenessFilter) Filter(ctx context.Context, t *data.Table) (*data.Table, *FilterReport) {
	l := ctxlogrus.Get(ctx)

	out := data.NewTable(t.Columns)
	report := &FilterReport{RowsIn: t.NumRows()}
	for _, row := range t.Rows {
		complete := true
		for _, cell := range row {
			if cell == "" {
				complete = false
				break
			}
		}
		if !complete {
			report.Dropped++
			continue
		}
		out.AppendRow(append([]string{}, row...))
	}
	report.RowsOut = out.NumRows()

	l.Infof("Completeness filter dropped %d of %d rows (%.1f%%)", report.Dropped, report.RowsIn, report.DroppedPercent())
	return out, report
}
