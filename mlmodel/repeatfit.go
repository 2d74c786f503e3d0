package mlmodel

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"sort"
)

const defaultFits = 100
const histogramBins = 10

// FitDistribution is the empirical OOB-error distribution across
// repeated unseeded fits of one configuration. It quantifies the
// learner's internal sampling variance, not a tuning step.
type FitDistribution struct {
	Errors []float64
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	// HistDividers and HistCounts describe a fixed-width histogram of
	// the errors; HistCounts[i] covers
	// [HistDividers[i], HistDividers[i+1]).
	HistDividers []float64
	HistCounts   []float64
}

// RepeatedFit retrains a single configuration many times without a
// fixed seed.
type RepeatedFit struct {
	Trainer ModelTrainer
	// Fits is the number of refits; 0 means 100.
	Fits int
}

func (r *RepeatedFit) Run(ctx context.Context, features *data.Table, target []float64, cfg data.ForestConfig) (*FitDistribution, error) {
	l := ctxlogrus.Get(ctx)

	fits := r.Fits
	if fits == 0 {
		fits = defaultFits
	}

	// The seed is deliberately cleared: each fit samples the learner's
	// natural randomness.
	cfg.Seed = 0

	oobErrors := make([]float64, 0, fits)
	for i := 0; i < fits; i++ {
		fit, err := r.Trainer.Train(ctx, features, target, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "Run couldn't train fit %d", i)
		}
		oobErrors = append(oobErrors, fit.OOBError)
	}

	dist := summarize(oobErrors)
	l.Infof("Repeated fits: %d runs, OOB RMSE %.4f ± %.4f", fits, dist.Mean, dist.StdDev)
	return dist, nil
}

func summarize(oobErrors []float64) *FitDistribution {
	sorted := append([]float64{}, oobErrors...)
	sort.Float64s(sorted)

	min := floats.Min(sorted)
	max := floats.Max(sorted)

	// Histogram dividers must strictly contain the data; nudge the top
	// edge so the maximum lands in the last bucket, and give degenerate
	// all-equal samples a non-empty span.
	top := max
	span := max - min
	if span == 0 {
		span = 1
	}
	top += span * 1e-9
	dividers := make([]float64, histogramBins+1)
	floats.Span(dividers, min, top)
	counts := stat.Histogram(nil, dividers, sorted, nil)

	return &FitDistribution{
		Errors:       oobErrors,
		Mean:         stat.Mean(sorted, nil),
		StdDev:       stat.StdDev(sorted, nil),
		Min:          min,
		Max:          max,
		Median:       stat.Quantile(0.5, stat.Empirical, sorted, nil),
		HistDividers: dividers,
		HistCounts:   counts,
	}
}
