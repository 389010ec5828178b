package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BacBoSentinel/internal/model"
)

func resultsPage(items ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><div class="history">`)
	for _, it := range items {
		b.WriteString(`<div class="last-result-item"><span>` + it + `</span></div>`)
	}
	b.WriteString(`</div></body></html>`)
	return b.String()
}

func TestHTMLFetcher_ParsesNewestFirstPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Mozilla/5.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(resultsPage("Rojo", "Azul", "???", "Tie", "Azul")))
	}))
	defer srv.Close()

	f := NewHTMLFetcher(srv.URL, "", 20, "")
	got, err := f.FetchLatestOutcomes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Outcome{model.Blue, model.Tie, model.Blue, model.Red}, got)
}

func TestHTMLFetcher_LimitKeepsNewest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(resultsPage("Rojo", "Azul", "Tie", "Azul", "Rojo")))
	}))
	defer srv.Close()

	f := NewHTMLFetcher(srv.URL, DefaultItemSelector, 3, "")
	got, err := f.FetchLatestOutcomes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Outcome{model.Tie, model.Blue, model.Red}, got)
}

func TestHTMLFetcher_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewHTMLFetcher(srv.URL, "", 20, "").FetchLatestOutcomes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
