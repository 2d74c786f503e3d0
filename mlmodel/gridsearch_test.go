package mlmodel

import (
	"context"
	"github.com/jbeshir/inspection-predictor/data"
	"testing"
)

func referenceTestGrid() data.Grid {
	return data.Grid{
		Mtry:           []int{3, 5, 7, 9, 11},
		MinNodeSize:    []int{1, 5, 10, 20},
		Replace:        []bool{true, false},
		SampleFraction: []float64{0.632, 0.8, 1},
	}
}

func TestGridSearch_SearchTrainsFullProduct(t *testing.T) {
	table := newFeatureTable([]string{"F1"}, []string{"1"})
	target := []float64{1}

	trained := 0
	tr := newTestTrainer(t)
	tr.TrainFunc = func(ctx context.Context, features *data.Table, tgt []float64, cfg data.ForestConfig) (*FitResult, error) {
		trained++
		if cfg.Seed != FixedSeed {
			t.Errorf("Expected grid runs to use seed %d, was %d", FixedSeed, cfg.Seed)
		}
		return &FitResult{Config: cfg, OOBError: 0.5}, nil
	}

	g := &GridSearch{Trainer: tr}
	result, err := g.Search(context.Background(), table, target, referenceTestGrid(), 0.5)
	if err != nil {
		t.Fatalf("Expected err to be nil, was %s", err.Error())
	}

	wantTrained := 5 * 4 * 2 * 3
	if trained != wantTrained {
		t.Errorf("Expected %d configurations trained, was %d", wantTrained, trained)
	}
	if result.Trained != wantTrained {
		t.Errorf("Expected result to record %d trained configurations, was %d", wantTrained, result.Trained)
	}
	if len(result.Ranked) != 10 {
		t.Errorf("Expected 10 retained configurations, was %d", len(result.Ranked))
	}
}

func TestGridSearch_SearchRanksAscending(t *testing.T) {
	table := newFeatureTable([]string{"F1"}, []string{"1"})
	target := []float64{1}

	// Error shrinks with mtry, so the largest mtry must rank first.
	tr := newTestTrainer(t)
	tr.TrainFunc = func(ctx context.Context, features *data.Table, tgt []float64, cfg data.ForestConfig) (*FitResult, error) {
		return &FitResult{Config: cfg, OOBError: 1.0 / float64(cfg.Mtry)}, nil
	}

	g := &GridSearch{Trainer: tr}
	result, err := g.Search(context.Background(), table, target, referenceTestGrid(), 0.5)
	if err != nil {
		t.Fatalf("Expected err to be nil, was %s", err.Error())
	}

	for i := 1; i < len(result.Ranked); i++ {
		if result.Ranked[i].OOBError < result.Ranked[i-1].OOBError {
			t.Errorf("Expected ranking to ascend, rank %d has %g after %g",
				i, result.Ranked[i].OOBError, result.Ranked[i-1].OOBError)
		}
	}
	if result.Best.Mtry != 11 {
		t.Errorf("Expected best configuration to have mtry 11, was %d", result.Best.Mtry)
	}

	wantGain := 100 * (0.5 - 1.0/11) / 0.5
	if result.Ranked[0].PctGain != wantGain {
		t.Errorf("Expected best gain %g, was %g", wantGain, result.Ranked[0].PctGain)
	}
}

func TestGridSearch_SearchTieBreakIsEnumerationOrder(t *testing.T) {
	table := newFeatureTable([]string{"F1"}, []string{"1"})
	target := []float64{1}

	// Every configuration ties; the first enumerated one must win.
	tr := newTestTrainer(t)
	tr.TrainFunc = func(ctx context.Context, features *data.Table, tgt []float64, cfg data.ForestConfig) (*FitResult, error) {
		return &FitResult{Config: cfg, OOBError: 0.3}, nil
	}

	grid := referenceTestGrid()
	g := &GridSearch{Trainer: tr}

	for run := 0; run < 3; run++ {
		result, err := g.Search(context.Background(), table, target, grid, 0.5)
		if err != nil {
			t.Fatalf("Expected err to be nil, was %s", err.Error())
		}

		want := data.ForestConfig{
			Mtry:           grid.Mtry[0],
			MinNodeSize:    grid.MinNodeSize[0],
			Replace:        grid.Replace[0],
			SampleFraction: grid.SampleFraction[0],
			Seed:           FixedSeed,
		}
		if result.Best != want {
			t.Errorf("Expected the first enumerated configuration to win the tie, was %+v", result.Best)
		}
	}
}

func TestGridSearch_SearchEmptyGrid(t *testing.T) {
	g := &GridSearch{Trainer: newTestTrainer(t)}
	_, err := g.Search(context.Background(), newFeatureTable([]string{"F1"}), nil, data.Grid{}, 0.5)
	if err == nil {
		t.Error("Expected err to be non-nil, was nil")
	}
}
