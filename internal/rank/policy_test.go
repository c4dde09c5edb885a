package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input string
		want  Policy
	}{
		{"1", PolicyDense},
		{"2", PolicyOrdinal},
		{"3", PolicyCompetition},
		{"4", PolicyModifiedCompetition},
		{"5", PolicyFractional},
		{"dense", PolicyDense},
		{"ordinal", PolicyOrdinal},
		{"competition", PolicyCompetition},
		{"standard", PolicyCompetition},
		{"modified", PolicyModifiedCompetition},
		{"fractional", PolicyFractional},
		{" Dense ", PolicyDense},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePolicy_Invalid(t *testing.T) {
	for _, input := range []string{"", "0", "6", "median", "rank"} {
		_, err := ParsePolicy(input)
		assert.ErrorIs(t, err, ErrInvalidPolicy, "input %q", input)
	}
}

func TestPolicy_Valid(t *testing.T) {
	for _, p := range Policies() {
		assert.True(t, p.Valid(), p.String())
	}
	assert.False(t, Policy(0).Valid())
	assert.False(t, Policy(6).Valid())
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "dense", PolicyDense.String())
	assert.Equal(t, "fractional", PolicyFractional.String())
	assert.Equal(t, "policy(9)", Policy(9).String())
}
