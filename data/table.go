package data

// Table is a rectangular dataset: an ordered list of column names and
// rows of string cells. An empty cell is a missing value. Stages never
// mutate a Table handed to them; each stage builds and returns a new one.
type Table struct {
	Columns []string
	Rows    [][]string
}

func NewTable(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

func (t *Table) AppendRow(row []string) {
	t.Rows = append(t.Rows, row)
}

// ColumnIndex returns the position of the named column, or -1 if the
// table has no such column.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) != -1
}

// Column returns all cells of the named column in row order, or nil if
// the column doesn't exist.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx == -1 {
		return nil
	}
	cells := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = row[idx]
	}
	return cells
}

func (t *Table) Cell(row int, name string) string {
	idx := t.ColumnIndex(name)
	if idx == -1 {
		return ""
	}
	return t.Rows[row][idx]
}

func (t *Table) NumRows() int {
	return len(t.Rows)
}

// DropColumns returns a new table without the named columns, preserving
// the order of the remaining ones. Names not present are ignored.
func (t *Table) DropColumns(names ...string) *Table {
	dropped := make(map[string]bool, len(names))
	for _, n := range names {
		dropped[n] = true
	}

	var keep []int
	var columns []string
	for i, c := range t.Columns {
		if dropped[c] {
			continue
		}
		keep = append(keep, i)
		columns = append(columns, c)
	}

	out := NewTable(columns)
	for _, row := range t.Rows {
		cells := make([]string, len(keep))
		for i, idx := range keep {
			cells[i] = row[idx]
		}
		out.AppendRow(cells)
	}
	return out
}
