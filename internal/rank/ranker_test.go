package rank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	inf = math.Inf(1)
	nan = math.NaN()
)

// assertRanks compares rank slices treating NaN == NaN (missing marker)
func assertRanks(t *testing.T, want, got []float64) {
	t.Helper()
	require.Equal(t, len(want), len(got), "rank sequence length")
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "position %d: expected missing, got %v", i, got[i])
			continue
		}
		assert.Equal(t, want[i], got[i], "position %d", i)
	}
}

func TestRank_ReferenceVectors(t *testing.T) {
	// One input, all five policies. Smallest value gets rank 1,
	// +Inf participates normally, NaN is carried through as missing.
	values := []float64{5, 0, 5, 1, inf, nan, 1}

	tests := []struct {
		name   string
		policy Policy
		want   []float64
	}{
		{"dense", PolicyDense, []float64{3, 1, 3, 2, 4, nan, 2}},
		{"ordinal", PolicyOrdinal, []float64{4, 1, 5, 2, 6, nan, 3}},
		{"competition", PolicyCompetition, []float64{4, 1, 4, 2, 6, nan, 2}},
		{"modified", PolicyModifiedCompetition, []float64{5, 1, 5, 3, 6, nan, 3}},
		{"fractional", PolicyFractional, []float64{4.5, 1, 4.5, 2.5, 6, nan, 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rank(values, tt.policy)
			require.NoError(t, err)
			assertRanks(t, tt.want, got)
		})
	}
}

func TestRank_PolicyPatterns(t *testing.T) {
	// The canonical "1 2 2 4" family over a single tie pair.
	values := []float64{10, 20, 20, 40}

	tests := []struct {
		name   string
		policy Policy
		want   []float64
	}{
		{"dense 1 2 2 3", PolicyDense, []float64{1, 2, 2, 3}},
		{"ordinal 1 2 3 4", PolicyOrdinal, []float64{1, 2, 3, 4}},
		{"competition 1 2 2 4", PolicyCompetition, []float64{1, 2, 2, 4}},
		{"modified 1 3 3 4", PolicyModifiedCompetition, []float64{1, 3, 3, 4}},
		{"fractional 1 2.5 2.5 4", PolicyFractional, []float64{1, 2.5, 2.5, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rank(values, tt.policy)
			require.NoError(t, err)
			assertRanks(t, tt.want, got)
		})
	}
}

func TestRank_AllEqual(t *testing.T) {
	values := []float64{7, 7, 7}

	tests := []struct {
		policy Policy
		want   []float64
	}{
		{PolicyDense, []float64{1, 1, 1}},
		{PolicyCompetition, []float64{1, 1, 1}},
		{PolicyModifiedCompetition, []float64{3, 3, 3}},
		{PolicyFractional, []float64{2, 2, 2}},
		{PolicyOrdinal, []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			got, err := Rank(values, tt.policy)
			require.NoError(t, err)
			assertRanks(t, tt.want, got)
		})
	}
}

func TestRank_Boundaries(t *testing.T) {
	for _, p := range Policies() {
		t.Run(p.String(), func(t *testing.T) {
			// Empty input -> empty output
			got, err := Rank(nil, p)
			require.NoError(t, err)
			assert.Empty(t, got)

			// Single element -> rank 1
			got, err = Rank([]float64{42}, p)
			require.NoError(t, err)
			assertRanks(t, []float64{1}, got)

			// All missing -> all missing, no computation
			got, err = Rank([]float64{nan, nan}, p)
			require.NoError(t, err)
			assertRanks(t, []float64{nan, nan}, got)
		})
	}
}

func TestRank_MissingPreserved(t *testing.T) {
	values := []float64{3, nan, 1, nan, 2}

	for _, p := range Policies() {
		got, err := Rank(values, p)
		require.NoError(t, err)
		require.Len(t, got, len(values))
		assert.True(t, math.IsNaN(got[1]), "%s: position 1", p)
		assert.True(t, math.IsNaN(got[3]), "%s: position 3", p)
		// Missing entries never consume a rank slot
		assertRanks(t, []float64{3, nan, 1, nan, 2}, got)
	}
}

func TestRank_NoTiesPoliciesCoincide(t *testing.T) {
	values := []float64{9, 3, 7, 1, 5}

	ordinal, err := Rank(values, PolicyOrdinal)
	require.NoError(t, err)

	for _, p := range []Policy{PolicyCompetition, PolicyModifiedCompetition, PolicyFractional} {
		got, err := Rank(values, p)
		require.NoError(t, err)
		assertRanks(t, ordinal, got)
	}
}

func TestRank_OrdinalSumProperty(t *testing.T) {
	// Without ties and missing, ordinal ranks are a permutation of 1..N.
	values := []float64{0.4, 0.1, 0.9, 0.7, 0.2, 0.5}
	got, err := Rank(values, PolicyOrdinal)
	require.NoError(t, err)

	sum := 0.0
	for _, r := range got {
		sum += r
	}
	n := float64(len(values))
	assert.Equal(t, n*(n+1)/2, sum)
}

func TestRank_OrdinalTieBreakIsInputOrder(t *testing.T) {
	// Equal values receive consecutive ranks in original input order.
	values := []float64{2, 2, 2, 1}
	got, err := Rank(values, PolicyOrdinal)
	require.NoError(t, err)
	assertRanks(t, []float64{2, 3, 4, 1}, got)
}

func TestRank_InvalidPolicy(t *testing.T) {
	for _, p := range []Policy{0, 6, -1, 99} {
		got, err := Rank([]float64{1, 2}, p)
		assert.ErrorIs(t, err, ErrInvalidPolicy)
		assert.Nil(t, got, "no partial output on invalid policy")
	}
}

func TestRank_InputNotMutated(t *testing.T) {
	values := []float64{3, 1, 2}
	_, err := Rank(values, PolicyCompetition)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestRank_RankBoundsInvariant(t *testing.T) {
	values := []float64{4, nan, 4, 8, 1, nan, 1, 1}
	presentCount := 6.0

	for _, p := range Policies() {
		got, err := Rank(values, p)
		require.NoError(t, err)
		for i, r := range got {
			if math.IsNaN(r) {
				continue
			}
			assert.GreaterOrEqual(t, r, 1.0, "%s: position %d", p, i)
			assert.LessOrEqual(t, r, presentCount, "%s: position %d", p, i)
		}
	}
}

func BenchmarkRank(b *testing.B) {
	values := make([]float64, 10_000)
	for i := range values {
		values[i] = float64((i * 2654435761) % 997) // plenty of ties
	}

	for _, p := range Policies() {
		b.Run(p.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Rank(values, p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
