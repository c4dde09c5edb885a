package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/stabrank/pkg/config"
	"github.com/wonny/stabrank/pkg/httputil"
	"github.com/wonny/stabrank/pkg/logger"
)

func testFetcher(t *testing.T) *Fetcher {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)

	log := logger.New(cfg)
	return NewFetcher(httputil.New(cfg, log), log)
}

func TestFetcher_TextSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(sampleTable))
	}))
	defer srv.Close()

	ds, err := testFetcher(t).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, ds.Source)
	assert.Equal(t, 3, ds.Rows())
}

func TestFetcher_HTMLSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(sampleHTML))
	}))
	defer srv.Close()

	ds, err := testFetcher(t).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"n10", "n20"}, ds.Labels)
}

func TestFetcher_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := testFetcher(t).Fetch(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "status code 404")
}
