package mlmodel

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"sort"
)

const defaultKeepConfigs = 10

// GridSearch trains one model per configuration in the Cartesian
// product of the grid's value sets, sequentially and without pruning,
// and ranks the configurations by their OOB error.
type GridSearch struct {
	Trainer ModelTrainer
	// Keep is the size of the retained top-ranked subset; 0 means 10.
	Keep int
}

type SearchResult struct {
	// Ranked is the retained subset, ascending by OOB error. Within
	// equal errors, enumeration order is preserved, so the ranking is
	// total and repeatable; Best is always Ranked[0].
	Ranked       []data.GridResult
	Best         data.ForestConfig
	DefaultError float64
	Trained      int
}

// Search evaluates the full grid. defaultError is the previously
// computed error of the default configuration, used for the percentage
// gain of each candidate.
func (g *GridSearch) Search(ctx context.Context, features *data.Table, target []float64, grid data.Grid, defaultError float64) (*SearchResult, error) {
	l := ctxlogrus.Get(ctx)

	if grid.Size() == 0 {
		return nil, errors.New("Search got a grid with an empty dimension")
	}

	results := make([]data.GridResult, 0, grid.Size())
	for _, mtry := range grid.Mtry {
		for _, minNode := range grid.MinNodeSize {
			for _, replace := range grid.Replace {
				for _, fraction := range grid.SampleFraction {
					cfg := data.ForestConfig{
						Mtry:           mtry,
						MinNodeSize:    minNode,
						Replace:        replace,
						SampleFraction: fraction,
						Seed:           FixedSeed,
					}

					fit, err := g.Trainer.Train(ctx, features, target, cfg)
					if err != nil {
						return nil, errors.Wrapf(err, "Search couldn't train configuration %+v", cfg)
					}

					gain := 0.0
					if defaultError != 0 {
						gain = 100 * (defaultError - fit.OOBError) / defaultError
					}
					results = append(results, data.GridResult{
						Config:   fit.Config,
						OOBError: fit.OOBError,
						PctGain:  gain,
					})
				}
			}
		}
	}
	trained := len(results)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OOBError < results[j].OOBError
	})

	keep := g.Keep
	if keep == 0 {
		keep = defaultKeepConfigs
	}
	if keep > len(results) {
		keep = len(results)
	}
	results = results[:keep]

	l.Infof("Grid search trained %d configurations; best OOB RMSE %.4f (%.2f%% gain)",
		trained, results[0].OOBError, results[0].PctGain)

	return &SearchResult{
		Ranked:       results,
		Best:         results[0].Config,
		DefaultError: defaultError,
		Trained:      trained,
	}, nil
}
