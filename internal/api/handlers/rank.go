package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/wonny/stabrank/internal/aggregate"
	"github.com/wonny/stabrank/internal/contracts"
	"github.com/wonny/stabrank/internal/rank"
	"github.com/wonny/stabrank/pkg/logger"
	"github.com/wonny/stabrank/pkg/redis"
)

// RankHandler handles ranking and aggregation API endpoints
// ⭐ SSOT: 랭킹 API 핸들러는 이 구조체에서만
type RankHandler struct {
	aggregator *aggregate.Aggregator
	cache      *redis.Cache
	cacheTTL   time.Duration
	logger     *logger.Logger
}

// NewRankHandler creates a new rank handler
func NewRankHandler(agg *aggregate.Aggregator, cache *redis.Cache, cacheTTL time.Duration, log *logger.Logger) *RankHandler {
	return &RankHandler{
		aggregator: agg,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     log,
	}
}

// RankRequest is the body of POST /api/rank. Values may be numbers or
// strings (categorical); null marks a missing entry.
type RankRequest struct {
	Values []any  `json:"values"`
	Policy string `json:"policy"` // name or 1-5 code
}

// RankResponse carries the computed rank sequence (null = missing)
type RankResponse struct {
	Policy string     `json:"policy"`
	Ranks  []*float64 `json:"ranks"`
}

// Rank ranks a single series.
// POST /api/rank
func (h *RankHandler) Rank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	policy, err := rank.ParsePolicy(req.Policy)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	ranks, err := rank.RankValues(req.Values, policy)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, RankResponse{
		Policy: policy.String(),
		Ranks:  ranksJSON(ranks),
	})
}

// AggregateRequest is the body of POST /api/aggregate. Values rows use
// null for missing cells.
type AggregateRequest struct {
	Labels []string     `json:"labels"`
	Params []float64    `json:"params"`
	Values [][]*float64 `json:"values"`
	Policy string       `json:"policy"`
}

// Aggregate ranks every trial column and returns the summary.
// POST /api/aggregate
func (h *RankHandler) Aggregate(w http.ResponseWriter, r *http.Request) {
	var req AggregateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	policy, err := rank.ParsePolicy(req.Policy)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	ctx := r.Context()
	key := h.cacheKey(&req, policy)

	// Cached summaries are keyed by request digest + policy.
	if h.cache != nil {
		var cached contracts.Summary
		if found, _ := h.cache.Get(ctx, key, &cached); found {
			h.logger.WithField("key", key).Debug("Summary cache hit")
			writeJSON(w, http.StatusOK, &cached)
			return
		}
	}

	ds := &contracts.Dataset{
		Source: "api",
		Labels: req.Labels,
		Params: req.Params,
		Values: make([][]float64, len(req.Values)),
	}
	for i, row := range req.Values {
		ds.Values[i] = make([]float64, len(row))
		for j, cell := range row {
			if cell == nil {
				ds.Values[i][j] = math.NaN()
				continue
			}
			ds.Values[i][j] = *cell
		}
	}

	summary, err := h.aggregator.Aggregate(ctx, ds, policy)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, summary, h.cacheTTL); err != nil {
			h.logger.WithError(err).Warn("Summary cache store failed")
		}
	}

	writeJSON(w, http.StatusOK, summary)
}

// cacheKey digests the request payload and policy
func (h *RankHandler) cacheKey(req *AggregateRequest, policy rank.Policy) string {
	payload, _ := json.Marshal(req)
	sum := sha256.Sum256(payload)
	return "summary:" + policy.String() + ":" + hex.EncodeToString(sum[:8])
}
