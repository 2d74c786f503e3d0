package discovery

import (
	"context"
	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"net/http"
	"net/url"
	"strings"
)

type HttpClientMaker interface {
	MakeClient(ctx context.Context) (*http.Client, error)
}

// ExportFinder locates CSV export links on a data portal index page, so
// the pipeline can pick up the latest published export without
// hard-coded object names.
type ExportFinder struct {
	ClientMaker HttpClientMaker
	Limiter     *rate.Limiter
}

// FindExports returns the absolute URLs of all .csv links on the page,
// in document order, deduplicated.
func (f *ExportFinder) FindExports(ctx context.Context, indexURL string) ([]string, error) {
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "FindExports interrupted waiting for fetch limiter")
		}
	}

	client, err := f.ClientMaker.MakeClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "FindExports couldn't create client")
	}

	req, err := http.NewRequest("GET", indexURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "FindExports couldn't create request")
	}
	req = req.WithContext(ctx)

	res, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "FindExports couldn't fetch index page")
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("FindExports couldn't fetch index page, status code: %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "FindExports couldn't parse index page")
	}

	base, err := url.Parse(indexURL)
	if err != nil {
		return nil, errors.Wrap(err, "FindExports couldn't parse index URL")
	}

	var exports []string
	seen := make(map[string]bool)
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		if !strings.HasSuffix(strings.ToLower(href), ".csv") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref).String()
		if seen[abs] {
			return
		}
		seen[abs] = true
		exports = append(exports, abs)
	})

	return exports, nil
}
