package mlmodel

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
	"testing"
)

func newTestLearner(t *testing.T) *testLearner {
	return &testLearner{
		TrainFunc: func(ctx context.Context, features [][]float64, target []float64, names []string, cfg data.ForestConfig) (TrainedModel, error) {
			t.Error("Train should not be called")
			return nil, nil
		},
	}
}

type testLearner struct {
	TrainFunc func(ctx context.Context, features [][]float64, target []float64, names []string, cfg data.ForestConfig) (TrainedModel, error)
}

func (l *testLearner) Train(ctx context.Context, features [][]float64, target []float64, names []string, cfg data.ForestConfig) (TrainedModel, error) {
	return l.TrainFunc(ctx, features, target, names, cfg)
}

func newTestTrainer(t *testing.T) *testTrainer {
	return &testTrainer{
		TrainFunc: func(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*FitResult, error) {
			t.Error("Train should not be called")
			return nil, nil
		},
	}
}

type testTrainer struct {
	TrainFunc func(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*FitResult, error)
}

func (tr *testTrainer) Train(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*FitResult, error) {
	return tr.TrainFunc(ctx, features, target, cfg)
}

func newFeatureTable(columns []string, rows ...[]string) *data.Table {
	t := data.NewTable(columns)
	for _, row := range rows {
		t.AppendRow(row)
	}
	return t
}
