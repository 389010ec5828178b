package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"BacBoSentinel/internal/model"

	"github.com/PuerkitoBio/goquery"
)

// DefaultItemSelector matches one result tile on the results page.
const DefaultItemSelector = ".last-result-item"

// HTMLFetcher scrapes the live results page. The page lists results newest first.
type HTMLFetcher struct {
	URL      string
	Selector string
	Limit    int
	Client   *http.Client
}

// NewHTMLFetcher creates a fetcher with optional proxy support.
func NewHTMLFetcher(pageURL, selector string, limit int, proxyURL string) *HTMLFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if selector == "" {
		selector = DefaultItemSelector
	}
	return &HTMLFetcher{
		URL:      pageURL,
		Selector: selector,
		Limit:    limit,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *HTMLFetcher) Name() string { return "html" }

// FetchLatestOutcomes downloads the page and returns up to Limit outcomes, oldest first.
func (f *HTMLFetcher) FetchLatestOutcomes(ctx context.Context) ([]model.Outcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch page: status %d, body: %s", resp.StatusCode, string(body))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return f.extract(doc), nil
}

func (f *HTMLFetcher) extract(doc *goquery.Document) []model.Outcome {
	var newestFirst []model.Outcome
	doc.Find(f.Selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if o, ok := ParseOutcome(s.Text()); ok {
			newestFirst = append(newestFirst, o)
		}
		return f.Limit <= 0 || len(newestFirst) < f.Limit
	})

	out := make([]model.Outcome, len(newestFirst))
	for i, o := range newestFirst {
		out[len(newestFirst)-1-i] = o
	}
	return out
}
