package dataset

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/wonny/stabrank/internal/contracts"
	"github.com/wonny/stabrank/pkg/httputil"
	"github.com/wonny/stabrank/pkg/logger"
)

// Fetcher loads trial tables from remote HTTP sources
// ⭐ SSOT: 원격 데이터셋 조회는 이 타입에서만
type Fetcher struct {
	client *httputil.Client
	logger *logger.Logger
}

// NewFetcher creates a new fetcher
func NewFetcher(client *httputil.Client, log *logger.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		logger: log,
	}
}

// Fetch downloads and parses a trial table. HTML responses go through
// the <table> parser, anything else through the text parser.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*contracts.Dataset, error) {
	resp, err := f.client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: unexpected status code %d", resp.StatusCode)
	}

	var ds *contracts.Dataset
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		ds, err = ParseHTML(resp.Body, url)
	} else {
		ds, err = Parse(resp.Body, url)
	}
	if err != nil {
		return nil, err
	}

	f.logger.WithFields(map[string]interface{}{
		"url":    url,
		"rows":   ds.Rows(),
		"trials": ds.Cols(),
	}).Debug("Fetched dataset")
	return ds, nil
}
