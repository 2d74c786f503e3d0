package dataset

import (
	"context"
	"encoding/csv"
	"github.com/jbeshir/inspection-predictor/data"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"net/http"
)

// Loader fetches a remote CSV export and materializes it as a table.
// The first record is the header row.
type Loader struct {
	ClientMaker HttpClientMaker
	Limiter     *rate.Limiter
}

func (l *Loader) LoadTable(ctx context.Context, url string) (*data.Table, error) {
	if l.Limiter != nil {
		if err := l.Limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "LoadTable interrupted waiting for fetch limiter")
		}
	}

	client, err := l.ClientMaker.MakeClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "LoadTable couldn't create client")
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "LoadTable couldn't create request")
	}
	req = req.WithContext(ctx)

	res, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "LoadTable couldn't fetch table")
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("LoadTable couldn't fetch table, status code: %d", res.StatusCode)
	}

	records, err := csv.NewReader(res.Body).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "LoadTable couldn't parse table")
	}
	if len(records) == 0 {
		return nil, errors.New("LoadTable got an export with no header row")
	}

	t := data.NewTable(records[0])
	for _, record := range records[1:] {
		t.AppendRow(record)
	}
	return t, nil
}
