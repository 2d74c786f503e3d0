package dataset

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
	"testing"
)

func TestCompletenessFilter_Filter(t *testing.T) {
	table := data.NewTable([]string{"A", "B", "C"})
	table.AppendRow([]string{"1", "x", "0.5"})
	table.AppendRow([]string{"2", "", "0.6"})
	table.AppendRow([]string{"3", "y", "0.7"})
	table.AppendRow([]string{"", "", ""})

	f := &CompletenessFilter{}
	out, report := f.Filter(context.Background(), table)

	if report.RowsIn != 4 || report.RowsOut != 2 || report.Dropped != 2 {
		t.Errorf("Expected report 4/2/2, was %d/%d/%d", report.RowsIn, report.RowsOut, report.Dropped)
	}
	wantPct := 50.0
	if report.DroppedPercent() != wantPct {
		t.Errorf("Expected dropped percentage to be %g, was %g", wantPct, report.DroppedPercent())
	}

	for i, row := range out.Rows {
		for j, cell := range row {
			if cell == "" {
				t.Errorf("Expected no missing cells after filtering, found one at row %d column %d", i, j)
			}
		}
	}
}

func TestCompletenessFilter_FilterIdempotent(t *testing.T) {
	table := data.NewTable([]string{"A", "B"})
	table.AppendRow([]string{"1", "x"})
	table.AppendRow([]string{"2", ""})
	table.AppendRow([]string{"3", "y"})

	f := &CompletenessFilter{}
	once, _ := f.Filter(context.Background(), table)
	twice, report := f.Filter(context.Background(), once)

	if twice.NumRows() != once.NumRows() {
		t.Errorf("Expected second pass to keep %d rows, kept %d", once.NumRows(), twice.NumRows())
	}
	if report.Dropped != 0 {
		t.Errorf("Expected second pass to drop 0 rows, dropped %d", report.Dropped)
	}
}
