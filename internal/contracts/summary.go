package contracts

import "time"

// ConfigPoint is one configuration row after aggregation: the mean and
// standard deviation of its rank across all trial columns.
type ConfigPoint struct {
	Param    float64 `json:"param"`
	MeanRank float64 `json:"mean_rank"`
	StdDev   float64 `json:"std_dev"`
	Trials   int     `json:"trials"`  // rank samples present in the row
	Missing  bool    `json:"missing"` // no trial produced a rank for this row
}

// Summary is the aggregation result over a full dataset.
// ⭐ SSOT: Aggregator → Plotter/API 결과 전달
//
// BestIndex is the row with the minimum mean rank. Threshold is that
// minimum mean plus its standard deviation; StableIndex is the first row
// whose mean rank stays at or under the threshold (one-std rule), which
// is the cheapest configuration statistically indistinguishable from the
// best one.
type Summary struct {
	Source      string        `json:"source"`
	Policy      string        `json:"policy"`
	Points      []ConfigPoint `json:"points"`
	BestIndex   int           `json:"best_index"`   // -1 when no row has data
	StableIndex int           `json:"stable_index"` // -1 when no row has data
	Threshold   float64       `json:"threshold"`
	GeneratedAt time.Time     `json:"generated_at"`

	// RankMatrix holds the raw per-trial rank vectors (rows x trials).
	// Not serialized: may contain NaN for missing cells.
	RankMatrix [][]float64 `json:"-"`
}

// Best returns the minimum-mean-rank point, or nil for an empty summary
func (s *Summary) Best() *ConfigPoint {
	if s.BestIndex < 0 || s.BestIndex >= len(s.Points) {
		return nil
	}
	return &s.Points[s.BestIndex]
}

// Stable returns the stable configuration point, or nil for an empty summary
func (s *Summary) Stable() *ConfigPoint {
	if s.StableIndex < 0 || s.StableIndex >= len(s.Points) {
		return nil
	}
	return &s.Points[s.StableIndex]
}
