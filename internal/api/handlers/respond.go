package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/wonny/stabrank/internal/aggregate"
	"github.com/wonny/stabrank/internal/data/repos"
	"github.com/wonny/stabrank/internal/rank"
)

// writeJSON writes a JSON response with status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps domain errors to HTTP status codes. Core errors pass
// through unchanged in the body; only the status is derived here.
func statusFor(err error) int {
	switch {
	case errors.Is(err, rank.ErrInvalidPolicy),
		errors.Is(err, rank.ErrInvalidInput),
		errors.Is(err, aggregate.ErrShapeMismatch):
		return http.StatusBadRequest
	case errors.Is(err, repos.ErrRunNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ranksJSON converts a rank sequence for JSON encoding: NaN (missing)
// becomes null, which encoding/json cannot represent as float64.
func ranksJSON(ranks []float64) []*float64 {
	out := make([]*float64, len(ranks))
	for i := range ranks {
		if math.IsNaN(ranks[i]) {
			continue
		}
		v := ranks[i]
		out[i] = &v
	}
	return out
}
