package rank

import (
	"math"
	"sort"
)

// Rank computes rank numbers for values under the given policy.
// ⭐ SSOT: 순위 계산 로직은 이 함수에서만
//
// Rank 1 goes to the smallest value (minimum = best, 최소값이 1위).
// NaN marks a missing entry: it stays NaN at the same position in the
// output, never consumes a rank slot and never enters a comparison.
// The output slice is freshly allocated and values is never mutated,
// so concurrent callers need no coordination.
//
// Ordinal tie-break: equal values receive consecutive ranks in original
// input order (stable sort). All other policies are symmetric within a
// tie group, so their results do not depend on tie order at all.
func Rank(values []float64, policy Policy) ([]float64, error) {
	if !policy.Valid() {
		return nil, ErrInvalidPolicy
	}

	out := make([]float64, len(values))

	// Partition: missing entries keep their positions, ranking runs on
	// the present indices only.
	present := make([]int, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		present = append(present, i)
	}
	if len(present) == 0 {
		return out, nil
	}

	// Stable sort ascending. Stability fixes the Ordinal tie-break:
	// the earlier input index gets the smaller rank.
	sort.SliceStable(present, func(a, b int) bool {
		return values[present[a]] < values[present[b]]
	})

	// Walk tie groups over the sorted order. The competition rank of a
	// group is start+1 (one plus the count of strictly smaller values);
	// every policy is a transform of the group boundaries [start, end).
	n := len(present)
	dense := 0
	for start := 0; start < n; {
		end := start + 1
		for end < n && values[present[end]] == values[present[start]] {
			end++
		}
		dense++

		for k := start; k < end; k++ {
			var r float64
			switch policy {
			case PolicyDense:
				r = float64(dense)
			case PolicyOrdinal:
				r = float64(k + 1)
			case PolicyCompetition:
				r = float64(start + 1)
			case PolicyModifiedCompetition:
				r = float64(end)
			case PolicyFractional:
				// Mean of competition (start+1) and modified (end).
				r = float64(start+1+end) / 2
			}
			out[present[k]] = r
		}
		start = end
	}

	return out, nil
}
