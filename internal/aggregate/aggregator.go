// Package aggregate turns a trial dataset into a per-configuration rank
// summary: each trial column is ranked independently across configuration
// rows, then mean and standard deviation of rank per row locate the
// stable configuration point.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wonny/stabrank/internal/contracts"
	"github.com/wonny/stabrank/internal/rank"
)

// ErrShapeMismatch is returned when the value matrix dimensions disagree
// with the declared labels/params. Nothing is truncated or padded.
var ErrShapeMismatch = errors.New("aggregate: dataset shape mismatch")

// Aggregator 통계 집계기
type Aggregator struct {
	log zerolog.Logger
}

// New creates a new aggregator
func New(log zerolog.Logger) *Aggregator {
	return &Aggregator{
		log: log.With().Str("component", "aggregate").Logger(),
	}
}

// Aggregate ranks every trial column of the dataset under the given
// policy and summarizes rank statistics per configuration row.
// Ranker errors pass through unchanged (no recovery, no retry).
func (a *Aggregator) Aggregate(ctx context.Context, ds *contracts.Dataset, policy rank.Policy) (*contracts.Summary, error) {
	if err := validateShape(ds); err != nil {
		return nil, err
	}

	rows, cols := ds.Rows(), ds.Cols()

	// Rank each trial column independently across configuration rows.
	matrix := make([][]float64, rows)
	for i := range matrix {
		matrix[i] = make([]float64, cols)
	}
	for j := 0; j < cols; j++ {
		ranks, err := rank.Rank(ds.Column(j), policy)
		if err != nil {
			return nil, err
		}
		for i, r := range ranks {
			matrix[i][j] = r
		}
	}

	summary := &contracts.Summary{
		Source:      ds.Source,
		Policy:      policy.String(),
		Points:      make([]contracts.ConfigPoint, rows),
		BestIndex:   -1,
		StableIndex: -1,
		GeneratedAt: time.Now(),
		RankMatrix:  matrix,
	}

	// Per-row mean/std across trials; the minimum mean marks the best row.
	for i := 0; i < rows; i++ {
		mean, std, n := meanStdPresent(matrix[i])
		summary.Points[i] = contracts.ConfigPoint{
			Param:    ds.Params[i],
			MeanRank: mean,
			StdDev:   std,
			Trials:   n,
			Missing:  n == 0,
		}
		if n == 0 {
			continue
		}
		if summary.BestIndex < 0 || mean < summary.Points[summary.BestIndex].MeanRank {
			summary.BestIndex = i
		}
	}

	// One-std rule: the first row under (min mean + its std) is the
	// cheapest configuration statistically level with the best one.
	if best := summary.Best(); best != nil {
		summary.Threshold = best.MeanRank + best.StdDev
		for i, p := range summary.Points {
			if !p.Missing && p.MeanRank <= summary.Threshold {
				summary.StableIndex = i
				break
			}
		}
	}

	a.log.Info().
		Str("policy", policy.String()).
		Int("rows", rows).
		Int("trials", cols).
		Int("best_index", summary.BestIndex).
		Int("stable_index", summary.StableIndex).
		Float64("threshold", summary.Threshold).
		Msg("aggregation completed")

	return summary, nil
}

// validateShape checks matrix dimensions against declared counts
func validateShape(ds *contracts.Dataset) error {
	if len(ds.Values) != len(ds.Params) {
		return fmt.Errorf("%w: %d params but %d value rows", ErrShapeMismatch, len(ds.Params), len(ds.Values))
	}
	for i, row := range ds.Values {
		if len(row) != len(ds.Labels) {
			return fmt.Errorf("%w: row %d has %d values, expected %d", ErrShapeMismatch, i, len(row), len(ds.Labels))
		}
	}
	return nil
}
