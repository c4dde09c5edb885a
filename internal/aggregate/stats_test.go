package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{7}, 7},
		{"simple", []float64{1, 2, 3, 4}, 2.5},
		{"negative", []float64{-2, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Mean(tt.values), 1e-12)
		})
	}
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 0},
		{"constant", []float64{3, 3, 3}, 0},
		// sample std of {1, 2, 1}: mean 4/3, var (1/9+4/9+1/9)/2
		{"three values", []float64{1, 2, 1}, math.Sqrt(1.0 / 3.0)},
		{"pair", []float64{2, 4}, math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, StdDev(tt.values), 1e-12)
		})
	}
}

func TestMeanStdPresent(t *testing.T) {
	nan := math.NaN()

	t.Run("skips missing entries", func(t *testing.T) {
		mean, std, n := meanStdPresent([]float64{1, nan, 3, nan})
		assert.Equal(t, 2, n)
		assert.InDelta(t, 2.0, mean, 1e-12)
		assert.InDelta(t, math.Sqrt2, std, 1e-12)
	})

	t.Run("all missing", func(t *testing.T) {
		mean, std, n := meanStdPresent([]float64{nan, nan})
		assert.Equal(t, 0, n)
		assert.Zero(t, mean)
		assert.Zero(t, std)
	})

	t.Run("no missing", func(t *testing.T) {
		mean, std, n := meanStdPresent([]float64{4, 4, 4})
		assert.Equal(t, 3, n)
		assert.InDelta(t, 4.0, mean, 1e-12)
		assert.Zero(t, std)
	})
}
