package mlmodel

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
)

// The fixed decision threshold for the binary label.
const labelThreshold = 0.5

// Predictor applies a trained model to a normalized, filtered,
// feature-selected test table. The model is never refit here; test rows
// cannot leak into model state.
type Predictor struct {
	Model   TrainedModel
	Encoder *Encoder
}

// Predict scores one row per serial number. serialNumbers must parallel
// the feature table's rows.
func (p *Predictor) Predict(ctx context.Context, features *data.Table, serialNumbers []string) ([]data.PredictionResult, error) {
	l := ctxlogrus.Get(ctx)

	if len(serialNumbers) != features.NumRows() {
		return nil, errors.Errorf("Predict got %d serial numbers for %d rows", len(serialNumbers), features.NumRows())
	}

	matrix, err := p.Encoder.Transform(features)
	if err != nil {
		return nil, errors.Wrap(err, "Predict couldn't encode features")
	}

	scores := p.Model.Predict(matrix)
	if len(scores) != len(serialNumbers) {
		return nil, errors.Errorf("Predict got %d scores for %d rows", len(scores), len(serialNumbers))
	}

	results := make([]data.PredictionResult, len(scores))
	for i, score := range scores {
		label := 0
		if score > labelThreshold {
			label = 1
		}
		results[i] = data.PredictionResult{
			SerialNumber: serialNumbers[i],
			Probability:  score,
			Label:        label,
		}
	}

	l.Infof("Scored %d test rows", len(results))
	return results, nil
}
