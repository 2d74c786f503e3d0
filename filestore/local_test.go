package filestore

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStore_SaveLoad(t *testing.T) {
	root, err := ioutil.TempDir("", "inspection-predictor-test-")
	if err != nil {
		t.Fatalf("Expected err to be nil, was %s", err.Error())
	}
	defer os.RemoveAll(root)

	s := &LocalStore{Root: root}
	ctx := context.Background()

	content := []byte("RESTAURANT_SERIAL_NUMBER,PROBABILITY,PREDICTED\n")
	if err := s.Save(ctx, "runs/1/predictions.csv", content); err != nil {
		t.Fatalf("Expected err to be nil, was %s", err.Error())
	}

	loaded, err := s.Load(ctx, "runs/1/predictions.csv")
	if err != nil {
		t.Fatalf("Expected err to be nil, was %s", err.Error())
	}
	if string(loaded) != string(content) {
		t.Errorf("Expected loaded content to round-trip, was %s", string(loaded))
	}

	// The path is rooted under Root on disk.
	if _, err := os.Stat(filepath.Join(root, "runs", "1", "predictions.csv")); err != nil {
		t.Errorf("Expected the file on disk under the root, was %s", err.Error())
	}
}

func TestLocalStore_LoadMissing(t *testing.T) {
	root, err := ioutil.TempDir("", "inspection-predictor-test-")
	if err != nil {
		t.Fatalf("Expected err to be nil, was %s", err.Error())
	}
	defer os.RemoveAll(root)

	s := &LocalStore{Root: root}
	if _, err := s.Load(context.Background(), "nope.csv"); err == nil {
		t.Error("Expected err to be non-nil, was nil")
	}
}
