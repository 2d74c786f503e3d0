package mlmodel

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/pkg/errors"
	"github.com/wlattner/rf/forest"
	"math"
	"math/rand"
	"time"
)

// RFLearner trains regression forests over the 0/1 target; the leaf
// averages give continuous scores in [0, 1] and the forest's out-of-bag
// MSE gives the RMSE we report. Replace and SampleFraction are applied
// as a row subsample ahead of the forest's own bootstrap, driven by the
// configured seed so grid runs stay comparable.
type RFLearner struct{}

func (l *RFLearner) Train(ctx context.Context, features [][]float64, target []float64, names []string, cfg data.ForestConfig) (TrainedModel, error) {
	if len(features) == 0 {
		return nil, errors.New("Train got an empty feature matrix")
	}
	if len(features) != len(target) {
		return nil, errors.Errorf("Train got %d feature rows for %d target values", len(features), len(target))
	}
	if cfg.Mtry <= 0 || cfg.Trees <= 0 || cfg.MinNodeSize <= 0 || cfg.SampleFraction <= 0 {
		return nil, errors.Errorf("Train got an incomplete configuration: %+v", cfg)
	}

	x, y := features, target
	if !cfg.Replace || cfg.SampleFraction < 1 {
		x, y = subsample(features, target, cfg.SampleFraction, cfg.Replace, newRand(cfg.Seed))
	}

	reg := forest.NewRegressor(forest.NumTrees(cfg.Trees), forest.MinSplit(2*cfg.MinNodeSize),
		forest.MinLeaf(cfg.MinNodeSize), forest.MaxFeatures(cfg.Mtry),
		forest.NumWorkers(1), forest.ComputeOOB)
	reg.Fit(x, y)

	return &rfModel{Reg: reg}, nil
}

type rfModel struct {
	Reg *forest.Regressor
}

func (m *rfModel) OOBError() float64 {
	return math.Sqrt(m.Reg.MSE)
}

func (m *rfModel) Predict(features [][]float64) []float64 {
	scores := m.Reg.Predict(features)
	for i, s := range scores {
		// Leaf averages of a 0/1 target stay in range, but guard the
		// contract anyway.
		if s < 0 {
			scores[i] = 0
		} else if s > 1 {
			scores[i] = 1
		}
	}
	return scores
}

func (m *rfModel) FeatureImportances() []float64 {
	return m.Reg.VarImp()
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// subsample draws n*fraction rows, with or without replacement. Without
// replacement it takes a prefix of a shuffle, so fraction 1 is a
// reordering of the full set.
func subsample(features [][]float64, target []float64, fraction float64, replace bool, rng *rand.Rand) ([][]float64, []float64) {
	n := len(features)
	k := int(fraction * float64(n))
	if k < 1 {
		k = 1
	}
	if k > n && !replace {
		k = n
	}

	var indexes []int
	if replace {
		indexes = make([]int, k)
		for i := range indexes {
			indexes[i] = rng.Intn(n)
		}
	} else {
		perm := rng.Perm(n)
		indexes = perm[:k]
	}

	x := make([][]float64, len(indexes))
	y := make([]float64, len(indexes))
	for i, idx := range indexes {
		x[i] = features[idx]
		y[i] = target[idx]
	}
	return x, y
}
