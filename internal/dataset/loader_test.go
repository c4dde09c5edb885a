package dataset

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `# trial outcomes per sample count
n10 n20 n30
100 0.42 0.40 0.45
200 0.31 NaN  0.33
400 0.22 0.21 -
`

func TestParse(t *testing.T) {
	ds, err := Parse(strings.NewReader(sampleTable), "sample")
	require.NoError(t, err)

	assert.Equal(t, "sample", ds.Source)
	assert.Equal(t, []string{"n10", "n20", "n30"}, ds.Labels)
	assert.Equal(t, []float64{100, 200, 400}, ds.Params)
	require.Equal(t, 3, ds.Rows())

	assert.Equal(t, []float64{0.42, 0.40, 0.45}, ds.Values[0])
	assert.True(t, math.IsNaN(ds.Values[1][1]), "NaN token marks missing")
	assert.True(t, math.IsNaN(ds.Values[2][2]), "dash marks missing")
}

func TestParse_CommaSeparated(t *testing.T) {
	input := "a,b\n1,2.5,3.5\n2,4.5,5.5\n"

	ds, err := Parse(strings.NewReader(input), "csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Labels)
	assert.Equal(t, []float64{2.5, 3.5}, ds.Values[0])
}

func TestParse_InfinityValue(t *testing.T) {
	input := "t1\n1 Inf\n2 -Inf\n"

	ds, err := Parse(strings.NewReader(input), "inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(ds.Values[0][0], 1))
	assert.True(t, math.IsInf(ds.Values[1][0], -1))
}

func TestParse_ShapeMismatch(t *testing.T) {
	input := "a b\n1 2 3\n2 4\n"

	ds, err := Parse(strings.NewReader(input), "bad")
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Nil(t, ds, "rows are never silently truncated")
}

func TestParse_BadCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric value", "a\n1 oops\n"},
		{"non-numeric param", "a\nfirst 2\n"},
		{"missing param", "a\nNaN 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), "bad")
			assert.ErrorIs(t, err, ErrBadCell)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	for _, input := range []string{"", "# only comments\n\n"} {
		_, err := Parse(strings.NewReader(input), "empty")
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trials.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, ds.Source)
	assert.Equal(t, 3, ds.Rows())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
