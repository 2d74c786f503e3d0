package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/pkg/errors"
	"strconv"
)

type FileStore interface {
	Load(ctx context.Context, path string) ([]byte, error)
	Save(ctx context.Context, path string, content []byte) error
}

// ResultWriter persists the scored test table as a delimited file.
type ResultWriter struct {
	FileStore FileStore
}

func (w *ResultWriter) WriteResults(ctx context.Context, path string, results []data.PredictionResult) error {
	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)

	_ = csvWriter.Write([]string{data.ColSerialNumber, "PROBABILITY", "PREDICTED"})
	for _, r := range results {
		_ = csvWriter.Write([]string{
			r.SerialNumber,
			strconv.FormatFloat(r.Probability, 'f', -1, 64),
			strconv.Itoa(r.Label),
		})
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return errors.Wrap(err, "WriteResults couldn't assemble file")
	}

	if err := w.FileStore.Save(ctx, path, buf.Bytes()); err != nil {
		return errors.Wrap(err, "WriteResults couldn't save file")
	}
	return nil
}
