package pipeline

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/jbeshir/inspection-predictor/mlmodel"
)

type TableLoader interface {
	LoadTable(ctx context.Context, url string) (*data.Table, error)
}

type ModelTrainer interface {
	Train(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*mlmodel.FitResult, error)
}

type GridSearcher interface {
	Search(ctx context.Context, features *data.Table, target []float64, grid data.Grid, defaultError float64) (*mlmodel.SearchResult, error)
}

type RepeatedFitter interface {
	Run(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*mlmodel.FitDistribution, error)
}

type ResultWriter interface {
	WriteResults(ctx context.Context, path string, results []data.PredictionResult) error
}

type FileStore interface {
	Load(ctx context.Context, path string) ([]byte, error)
	Save(ctx context.Context, path string, content []byte) error
}
