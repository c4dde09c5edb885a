package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/stabrank/internal/contracts"
)

func testSummary() *contracts.Summary {
	return &contracts.Summary{
		Source: "test",
		Policy: "fractional",
		Points: []contracts.ConfigPoint{
			{Param: 100, MeanRank: 3.5, StdDev: 0.5, Trials: 4},
			{Param: 200, MeanRank: 2.0, StdDev: 0.8, Trials: 4},
			{Param: 400, MeanRank: 1.3, StdDev: 0.4, Trials: 4},
		},
		BestIndex:   2,
		StableIndex: 1,
		Threshold:   1.7,
	}
}

func TestFromSummary(t *testing.T) {
	c := FromSummary(testSummary())

	require.Len(t, c.Bars, 3)
	assert.Equal(t, ErrorBar{X: 100, Y: 3.5, Err: 0.5}, c.Bars[0])
	assert.True(t, c.HasMarks)
	assert.Equal(t, 400.0, c.BestX)
	assert.Equal(t, 200.0, c.StableX)
	assert.Equal(t, 1.7, c.Threshold)
	assert.Contains(t, c.Title, "fractional")
}

func TestFromSummary_Empty(t *testing.T) {
	c := FromSummary(&contracts.Summary{BestIndex: -1, StableIndex: -1})
	assert.False(t, c.HasMarks)
	assert.Empty(t, c.Bars)
}

func TestBounds(t *testing.T) {
	c := FromSummary(testSummary())

	xMin, xMax, yMin, yMax, ok := c.bounds()
	require.True(t, ok)
	assert.Equal(t, 100.0, xMin)
	assert.Equal(t, 400.0, xMax)
	assert.InDelta(t, 0.9, yMin, 1e-9) // 1.3 - 0.4
	assert.InDelta(t, 4.0, yMax, 1e-9) // 3.5 + 0.5
}

func TestRenderSVG(t *testing.T) {
	svg := RenderSVG(FromSummary(testSummary()))

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "</svg>")
	assert.Contains(t, svg, "threshold 1.700")
	assert.Contains(t, svg, "stroke-dasharray") // threshold line
	assert.Equal(t, 3, strings.Count(svg, "<circle"))
}

func TestRenderSVG_NoData(t *testing.T) {
	svg := RenderSVG(FromSummary(&contracts.Summary{BestIndex: -1, StableIndex: -1}))
	assert.Contains(t, svg, "no data")
	assert.NotContains(t, svg, "<circle")
}

func TestRenderTerminal(t *testing.T) {
	out := RenderTerminal(FromSummary(testSummary()))

	assert.Contains(t, out, "★") // best marker
	assert.Contains(t, out, "◆") // stable marker
	assert.Contains(t, out, "threshold 1.700")
	assert.Contains(t, out, "400")
}

func TestRenderTerminal_MissingRow(t *testing.T) {
	s := testSummary()
	s.Points = append(s.Points, contracts.ConfigPoint{Param: 800, Missing: true})

	out := RenderTerminal(FromSummary(s))
	assert.Contains(t, out, "(missing)")
}
