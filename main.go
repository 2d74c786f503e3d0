package main

import (
	"context"
	"github.com/jbeshir/inspection-predictor/dataset"
	"github.com/jbeshir/inspection-predictor/discovery"
	"github.com/jbeshir/inspection-predictor/filestore"
	"github.com/jbeshir/inspection-predictor/mlmodel"
	"github.com/jbeshir/inspection-predictor/pipeline"
	"github.com/jbeshir/inspection-predictor/report"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"os"
	"strings"
)

const defaultTrainURL = "https://opendata.southernnevadahealthdistrict.org/exports/restaurant-inspections-train.csv"
const defaultTestURL = "https://opendata.southernnevadahealthdistrict.org/exports/restaurant-inspections-test.csv"

func main() {
	l := logrus.New()
	ctx := context.Background()

	clientMaker := &DefaultClientMaker{}
	limiter := rate.NewLimiter(1, 2)

	trainURL := os.Getenv("TRAIN_DATA_URL")
	testURL := os.Getenv("TEST_DATA_URL")
	if indexURL := os.Getenv("DATA_INDEX_URL"); indexURL != "" && (trainURL == "" || testURL == "") {
		finder := &discovery.ExportFinder{ClientMaker: clientMaker, Limiter: limiter}
		exports, err := finder.FindExports(ctx, indexURL)
		if err != nil {
			l.Fatalf("Unable to discover exports: %s", err)
		}
		for _, export := range exports {
			if trainURL == "" && strings.Contains(export, "train") {
				trainURL = export
			} else if testURL == "" && strings.Contains(export, "test") {
				testURL = export
			}
		}
	}
	if trainURL == "" {
		trainURL = defaultTrainURL
	}
	if testURL == "" {
		testURL = defaultTestURL
	}

	var store pipeline.FileStore
	if bucket := os.Getenv("RESULTS_BUCKET"); bucket != "" {
		gcs, err := filestore.NewGCSStore(ctx, bucket)
		if err != nil {
			l.Fatalf("Unable to create results store: %s", err)
		}
		store = gcs
	} else {
		root := os.Getenv("RESULTS_DIR")
		if root == "" {
			root = "results"
		}
		store = &filestore.LocalStore{Root: root}
	}

	trainer := &mlmodel.Trainer{Learner: &mlmodel.RFLearner{}}
	p := &pipeline.Pipeline{
		Loader:     &dataset.Loader{ClientMaker: clientMaker, Limiter: limiter},
		Normalizer: &dataset.Normalizer{},
		Filter:     &dataset.CompletenessFilter{},
		Selector:   &dataset.FeatureSelector{},
		Trainer:    trainer,
		Searcher:   &mlmodel.GridSearch{Trainer: trainer},
		Refitter:   &mlmodel.RepeatedFit{Trainer: trainer},
		Results:    &report.ResultWriter{FileStore: store},
		FileStore:  store,
	}

	result, err := p.Run(ctx, &pipeline.RunInput{
		TrainURL:    trainURL,
		TestURL:     testURL,
		ResultsPath: "predictions.csv",
		ModelPath:   "model.gob",
	})
	if err != nil {
		l.Fatalf("Run failed: %s", err)
	}

	l.Infof("Best configuration: %+v", result.Search.Best)
	l.Infof("Refit OOB RMSE distribution: mean %.4f, stddev %.4f, min %.4f, max %.4f",
		result.Distribution.Mean, result.Distribution.StdDev,
		result.Distribution.Min, result.Distribution.Max)
	l.Infof("Wrote %d predictions", len(result.Predictions))
}
