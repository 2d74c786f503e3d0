package mlmodel

import (
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/pkg/errors"
	"sort"
	"strconv"
)

// Encoder turns a feature table into the numeric matrix the learner
// consumes. Numeric columns pass through. Unordered categorical columns
// are ordered by the frequency of the positive target class among each
// level's rows, and each level becomes its rank in that ordering; this
// keeps similar-risk levels adjacent for the learner's splits, which
// one-hot encoding would not.
type Encoder struct {
	columns []string
	numeric map[string]bool
	ranks   map[string]map[string]float64
}

// Fit learns the column types and level orderings from the training
// feature table. The target is only used to order categorical levels;
// it is never part of the output matrix.
func (e *Encoder) Fit(t *data.Table, target []float64) error {
	if len(target) != t.NumRows() {
		return errors.Errorf("Fit got %d target values for %d rows", len(target), t.NumRows())
	}

	e.columns = append([]string{}, t.Columns...)
	e.numeric = make(map[string]bool, len(t.Columns))
	e.ranks = make(map[string]map[string]float64)

	for _, col := range t.Columns {
		cells := t.Column(col)
		if allNumeric(cells) {
			e.numeric[col] = true
			continue
		}

		positive := make(map[string]int)
		total := make(map[string]int)
		for i, cell := range cells {
			total[cell]++
			if target[i] == 1 {
				positive[cell]++
			}
		}

		levels := make([]string, 0, len(total))
		for level := range total {
			levels = append(levels, level)
		}
		sort.Slice(levels, func(i, j int) bool {
			fi := float64(positive[levels[i]]) / float64(total[levels[i]])
			fj := float64(positive[levels[j]]) / float64(total[levels[j]])
			if fi != fj {
				return fi < fj
			}
			// Ties order lexically so refits agree on the encoding.
			return levels[i] < levels[j]
		})

		ranks := make(map[string]float64, len(levels))
		for i, level := range levels {
			ranks[level] = float64(i)
		}
		e.ranks[col] = ranks
	}
	return nil
}

// Transform encodes a feature table with the fitted columns. Levels
// never seen during fitting map to -1, below every trained rank.
func (e *Encoder) Transform(t *data.Table) ([][]float64, error) {
	if len(t.Columns) != len(e.columns) {
		return nil, errors.Errorf("Transform got %d columns, fitted on %d", len(t.Columns), len(e.columns))
	}
	for i, col := range e.columns {
		if t.Columns[i] != col {
			return nil, errors.Errorf("Transform got column %s at position %d, fitted on %s", t.Columns[i], i, col)
		}
	}

	matrix := make([][]float64, t.NumRows())
	for i, row := range t.Rows {
		encoded := make([]float64, len(row))
		for j, cell := range row {
			col := e.columns[j]
			if e.numeric[col] {
				v, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, errors.Wrapf(err, "Transform couldn't parse numeric column %s at row %d", col, i)
				}
				encoded[j] = v
				continue
			}

			rank, ok := e.ranks[col][cell]
			if !ok {
				rank = -1
			}
			encoded[j] = rank
		}
		matrix[i] = encoded
	}
	return matrix, nil
}

func (e *Encoder) FeatureNames() []string {
	return append([]string{}, e.columns...)
}

func allNumeric(cells []string) bool {
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return false
		}
	}
	return true
}
