package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankStrings(t *testing.T) {
	// Lexicographic order: alpha < beta < gamma
	values := []string{"gamma", "alpha", "beta", "alpha"}

	got, err := RankStrings(values, PolicyCompetition)
	require.NoError(t, err)
	assertRanks(t, []float64{4, 1, 3, 1}, got)
}

func TestRankStrings_MissingMarker(t *testing.T) {
	values := []string{"b", "", "a"}

	got, err := RankStrings(values, PolicyDense)
	require.NoError(t, err)
	assertRanks(t, []float64{2, nan, 1}, got)
}

func TestRankStrings_InvalidPolicy(t *testing.T) {
	got, err := RankStrings([]string{"a"}, Policy(7))
	assert.ErrorIs(t, err, ErrInvalidPolicy)
	assert.Nil(t, got)
}

func TestRankValues_Numeric(t *testing.T) {
	values := []any{5.0, 0.0, 5.0, 1.0, nil, 1.0}

	got, err := RankValues(values, PolicyFractional)
	require.NoError(t, err)
	assertRanks(t, []float64{4.5, 1, 4.5, 2.5, nan, 2.5}, got)
}

func TestRankValues_Categorical(t *testing.T) {
	values := []any{"b", "a", nil, "b"}

	got, err := RankValues(values, PolicyOrdinal)
	require.NoError(t, err)
	assertRanks(t, []float64{2, 1, nan, 3}, got)
}

func TestRankValues_MixedTypes(t *testing.T) {
	tests := []struct {
		name   string
		values []any
	}{
		{"number and string", []any{1.0, "a"}},
		{"unsupported type", []any{[]int{1}}},
		{"bool", []any{true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RankValues(tt.values, PolicyDense)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, got, "no partial output on invalid input")
		})
	}
}

func TestRankValues_AllNil(t *testing.T) {
	got, err := RankValues([]any{nil, nil}, PolicyDense)
	require.NoError(t, err)
	assertRanks(t, []float64{nan, nan}, got)
}
