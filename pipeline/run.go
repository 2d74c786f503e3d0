package pipeline

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/jbeshir/inspection-predictor/dataset"
	"github.com/jbeshir/inspection-predictor/mlmodel"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"sort"
)

// Pipeline runs the whole batch: load, normalize, filter, select,
// default fit, grid search, repeated fits on the best configuration,
// and finally scoring of the test table. Every stage's output is
// threaded explicitly to the next; nothing ambient.
type Pipeline struct {
	Loader     TableLoader
	Normalizer *dataset.Normalizer
	Filter     *dataset.CompletenessFilter
	Selector   *dataset.FeatureSelector
	Trainer    ModelTrainer
	Searcher   GridSearcher
	Refitter   RepeatedFitter
	Results    ResultWriter
	// FileStore receives the persisted final model when ModelPath is
	// set; optional.
	FileStore FileStore
	// Grid overrides the reference candidate sets when non-empty.
	Grid data.Grid
}

type RunInput struct {
	TrainURL    string
	TestURL     string
	ResultsPath string
	ModelPath   string
}

type RunResult struct {
	TrainNormalize *dataset.NormalizeReport
	TrainFilter    *dataset.FilterReport
	TestNormalize  *dataset.NormalizeReport
	TestFilter     *dataset.FilterReport
	DefaultFit     *mlmodel.FitResult
	Search         *mlmodel.SearchResult
	Distribution   *mlmodel.FitDistribution
	Predictions    []data.PredictionResult
}

// referenceGrid is the candidate value set per hyperparameter
// dimension; 5 x 4 x 2 x 3 = 120 configurations.
func referenceGrid() data.Grid {
	return data.Grid{
		Mtry:           []int{3, 5, 7, 9, 11},
		MinNodeSize:    []int{1, 5, 10, 20},
		Replace:        []bool{true, false},
		SampleFraction: []float64{0.632, 0.8, 1},
	}
}

func (p *Pipeline) Run(ctx context.Context, input *RunInput) (*RunResult, error) {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"component": "pipeline",
	})
	l := ctxlogrus.Get(ctx)

	result := &RunResult{}

	// Training data preparation.
	trainTable, err := p.Loader.LoadTable(ctx, input.TrainURL)
	if err != nil {
		return nil, errors.Wrap(err, "Run couldn't load training table")
	}

	normalized, normReport, err := p.Normalizer.Normalize(ctx, trainTable)
	if err != nil {
		return nil, errors.Wrap(err, "Run couldn't normalize training table")
	}
	result.TrainNormalize = normReport

	complete, filterReport := p.Filter.Filter(ctx, normalized)
	result.TrainFilter = filterReport
	if complete.NumRows() == 0 {
		return nil, errors.New("Run has no complete training rows left")
	}

	target, err := p.Selector.Target(complete)
	if err != nil {
		return nil, errors.Wrap(err, "Run couldn't extract training target")
	}
	features := p.Selector.Select(complete)

	// Default configuration fit; its error anchors the grid ranking.
	defaultFit, err := p.Trainer.Train(ctx, features, target, data.ForestConfig{Seed: mlmodel.FixedSeed})
	if err != nil {
		return nil, errors.Wrap(err, "Run couldn't train default model")
	}
	result.DefaultFit = defaultFit
	l.Infof("Default configuration OOB RMSE: %.4f", defaultFit.OOBError)
	logImportances(ctx, defaultFit)

	grid := p.Grid
	if grid.Size() == 0 {
		grid = referenceGrid()
	}
	search, err := p.Searcher.Search(ctx, features, target, grid, defaultFit.OOBError)
	if err != nil {
		return nil, errors.Wrap(err, "Run couldn't search grid")
	}
	result.Search = search

	dist, err := p.Refitter.Run(ctx, features, target, search.Best)
	if err != nil {
		return nil, errors.Wrap(err, "Run couldn't estimate refit distribution")
	}
	result.Distribution = dist

	// The final model: the best configuration refit with the fixed
	// seed, so the persisted artifact is reproducible.
	finalCfg := search.Best
	finalCfg.Seed = mlmodel.FixedSeed
	finalFit, err := p.Trainer.Train(ctx, features, target, finalCfg)
	if err != nil {
		return nil, errors.Wrap(err, "Run couldn't train final model")
	}

	if input.ModelPath != "" && p.FileStore != nil {
		content, err := mlmodel.EncodeModel(finalFit.Model)
		if err != nil {
			return nil, errors.Wrap(err, "Run couldn't encode final model")
		}
		if err := p.FileStore.Save(ctx, input.ModelPath, content); err != nil {
			return nil, errors.Wrap(err, "Run couldn't persist final model")
		}
	}

	// Test data runs through the same preparation, minus the absent
	// target column.
	testTable, err := p.Loader.LoadTable(ctx, input.TestURL)
	if err != nil {
		return nil, errors.Wrap(err, "Run couldn't load test table")
	}

	testNormalized, testNormReport, err := p.Normalizer.Normalize(ctx, testTable)
	if err != nil {
		return nil, errors.Wrap(err, "Run couldn't normalize test table")
	}
	result.TestNormalize = testNormReport

	testComplete, testFilterReport := p.Filter.Filter(ctx, testNormalized)
	result.TestFilter = testFilterReport

	serialNumbers := testComplete.Column(data.ColSerialNumber)
	if serialNumbers == nil {
		return nil, errors.Errorf("Run missing test column %s", data.ColSerialNumber)
	}
	testFeatures := p.Selector.Select(testComplete)

	predictor := &mlmodel.Predictor{Model: finalFit.Model, Encoder: finalFit.Encoder}
	predictions, err := predictor.Predict(ctx, testFeatures, serialNumbers)
	if err != nil {
		return nil, errors.Wrap(err, "Run couldn't score test table")
	}
	result.Predictions = predictions

	if err := p.Results.WriteResults(ctx, input.ResultsPath, predictions); err != nil {
		return nil, errors.Wrap(err, "Run couldn't write results")
	}

	return result, nil
}

func logImportances(ctx context.Context, fit *mlmodel.FitResult) {
	l := ctxlogrus.Get(ctx)

	names := fit.Encoder.FeatureNames()
	imp := fit.Model.FeatureImportances()
	if len(imp) != len(names) {
		return
	}

	order := make([]int, len(imp))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return imp[order[i]] > imp[order[j]]
	})

	show := 5
	if show > len(order) {
		show = len(order)
	}
	for _, idx := range order[:show] {
		l.Infof("Feature importance: %s = %.4f", names[idx], imp[idx])
	}
}
