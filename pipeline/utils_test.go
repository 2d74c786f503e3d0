package pipeline

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/jbeshir/inspection-predictor/mlmodel"
	"testing"
)

func newTestLoader(t *testing.T) *testLoader {
	return &testLoader{
		LoadTableFunc: func(ctx context.Context, url string) (*data.Table, error) {
			t.Error("LoadTable should not be called")
			return nil, nil
		},
	}
}

type testLoader struct {
	LoadTableFunc func(ctx context.Context, url string) (*data.Table, error)
}

func (l *testLoader) LoadTable(ctx context.Context, url string) (*data.Table, error) {
	return l.LoadTableFunc(ctx, url)
}

func newTestTrainer(t *testing.T) *testTrainer {
	return &testTrainer{
		TrainFunc: func(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*mlmodel.FitResult, error) {
			t.Error("Train should not be called")
			return nil, nil
		},
	}
}

type testTrainer struct {
	TrainFunc func(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*mlmodel.FitResult, error)
}

func (tr *testTrainer) Train(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*mlmodel.FitResult, error) {
	return tr.TrainFunc(ctx, features, target, cfg)
}

func newTestSearcher(t *testing.T) *testSearcher {
	return &testSearcher{
		SearchFunc: func(ctx context.Context, features *data.Table, target []float64, grid data.Grid, defaultError float64) (*mlmodel.SearchResult, error) {
			t.Error("Search should not be called")
			return nil, nil
		},
	}
}

type testSearcher struct {
	SearchFunc func(ctx context.Context, features *data.Table, target []float64, grid data.Grid, defaultError float64) (*mlmodel.SearchResult, error)
}

func (s *testSearcher) Search(ctx context.Context, features *data.Table, target []float64, grid data.Grid, defaultError float64) (*mlmodel.SearchResult, error) {
	return s.SearchFunc(ctx, features, target, grid, defaultError)
}

func newTestRefitter(t *testing.T) *testRefitter {
	return &testRefitter{
		RunFunc: func(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*mlmodel.FitDistribution, error) {
			t.Error("Run should not be called")
			return nil, nil
		},
	}
}

type testRefitter struct {
	RunFunc func(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*mlmodel.FitDistribution, error)
}

func (r *testRefitter) Run(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*mlmodel.FitDistribution, error) {
	return r.RunFunc(ctx, features, target, cfg)
}

func newTestResultWriter(t *testing.T) *testResultWriter {
	return &testResultWriter{
		WriteResultsFunc: func(ctx context.Context, path string, results []data.PredictionResult) error {
			t.Error("WriteResults should not be called")
			return nil
		},
	}
}

type testResultWriter struct {
	WriteResultsFunc func(ctx context.Context, path string, results []data.PredictionResult) error
}

func (w *testResultWriter) WriteResults(ctx context.Context, path string, results []data.PredictionResult) error {
	return w.WriteResultsFunc(ctx, path, results)
}
