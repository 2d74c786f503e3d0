package mlmodel

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
)

// Learner is the capability surface the pipeline needs from an
// ensemble-tree implementation. The splitting and bagging algorithm
// behind it is deliberately opaque.
type Learner interface {
	Train(ctx context.Context, features [][]float64, target []float64, names []string, cfg data.ForestConfig) (TrainedModel, error)
}

type TrainedModel interface {
	// OOBError is the model's internal out-of-bag RMSE.
	OOBError() float64
	// Predict returns one score in [0, 1] per input row.
	Predict(features [][]float64) []float64
	FeatureImportances() []float64
}

// ModelTrainer is what the grid search and repeated-fit estimator
// consume; Trainer implements it.
type ModelTrainer interface {
	Train(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*FitResult, error)
}
