package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/stabrank/internal/aggregate"
	"github.com/wonny/stabrank/internal/contracts"
	"github.com/wonny/stabrank/pkg/config"
	"github.com/wonny/stabrank/pkg/logger"
)

func testRankHandler(t *testing.T) *RankHandler {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)

	log := logger.New(cfg)
	return NewRankHandler(aggregate.New(log.Zerolog()), nil, 0, log)
}

func TestRankHandler_Rank(t *testing.T) {
	h := testRankHandler(t)

	body := `{"values": [5, 0, 5, 1, null, 1], "policy": "fractional"}`
	req := httptest.NewRequest(http.MethodPost, "/api/rank", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Rank(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fractional", resp.Policy)
	require.Len(t, resp.Ranks, 6)
	assert.Equal(t, 4.5, *resp.Ranks[0])
	assert.Nil(t, resp.Ranks[4], "missing entry serializes as null")
}

func TestRankHandler_Rank_InvalidPolicy(t *testing.T) {
	h := testRankHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/rank", strings.NewReader(`{"values": [1], "policy": "6"}`))
	rec := httptest.NewRecorder()

	h.Rank(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRankHandler_Rank_MixedTypes(t *testing.T) {
	h := testRankHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/rank", strings.NewReader(`{"values": [1, "a"], "policy": "dense"}`))
	rec := httptest.NewRecorder()

	h.Rank(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRankHandler_Aggregate(t *testing.T) {
	h := testRankHandler(t)

	body := `{
		"labels": ["t1", "t2"],
		"params": [10, 20],
		"values": [[2, 2], [1, null]],
		"policy": "dense"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/aggregate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Aggregate(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary contracts.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Len(t, summary.Points, 2)
	assert.Equal(t, 1, summary.BestIndex, "param 20 holds the best rank")
	assert.Equal(t, "dense", summary.Policy)
}

func TestRankHandler_Aggregate_ShapeMismatch(t *testing.T) {
	h := testRankHandler(t)

	body := `{"labels": ["t1", "t2"], "params": [10], "values": [[1]], "policy": "dense"}`
	req := httptest.NewRequest(http.MethodPost, "/api/aggregate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Aggregate(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunsHandler_NoRepository(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	h := NewRunsHandler(nil, logger.New(cfg))

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
