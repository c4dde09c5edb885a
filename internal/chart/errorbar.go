// Package chart renders the aggregation summary as an error-bar chart:
// one point per configuration row (mean rank ± std), a horizontal
// threshold line at (min mean + its std), and markers for the best and
// stable configurations. The chart model is render-agnostic; SVG and
// terminal renderers are provided.
package chart

import (
	"fmt"

	"github.com/wonny/stabrank/internal/contracts"
)

// ErrorBar is one plotted point: configuration parameter on X, mean
// rank on Y, std as the symmetric error.
type ErrorBar struct {
	X       float64
	Y       float64
	Err     float64
	Missing bool
}

// Chart is the render-ready error-bar chart model
type Chart struct {
	Title     string
	XLabel    string
	YLabel    string
	Bars      []ErrorBar
	Threshold float64
	BestX     float64
	StableX   float64
	HasMarks  bool // best/stable/threshold are meaningful
}

// FromSummary builds the chart model for an aggregation summary
func FromSummary(s *contracts.Summary) *Chart {
	c := &Chart{
		Title:     fmt.Sprintf("Rank stability (%s policy)", s.Policy),
		XLabel:    "configuration",
		YLabel:    "mean rank",
		Threshold: s.Threshold,
	}

	for _, p := range s.Points {
		c.Bars = append(c.Bars, ErrorBar{
			X:       p.Param,
			Y:       p.MeanRank,
			Err:     p.StdDev,
			Missing: p.Missing,
		})
	}

	if best := s.Best(); best != nil {
		c.BestX = best.Param
		c.HasMarks = true
	}
	if stable := s.Stable(); stable != nil {
		c.StableX = stable.Param
	}

	return c
}

// bounds returns the plotted value range, padded so error bars and the
// threshold line stay inside the frame.
func (c *Chart) bounds() (xMin, xMax, yMin, yMax float64, ok bool) {
	first := true
	for _, b := range c.Bars {
		if b.Missing {
			continue
		}
		lo, hi := b.Y-b.Err, b.Y+b.Err
		if first {
			xMin, xMax, yMin, yMax = b.X, b.X, lo, hi
			first = false
			continue
		}
		if b.X < xMin {
			xMin = b.X
		}
		if b.X > xMax {
			xMax = b.X
		}
		if lo < yMin {
			yMin = lo
		}
		if hi > yMax {
			yMax = hi
		}
	}
	if first {
		return 0, 0, 0, 0, false
	}

	if c.HasMarks && c.Threshold > yMax {
		yMax = c.Threshold
	}
	if c.HasMarks && c.Threshold < yMin {
		yMin = c.Threshold
	}

	// Avoid zero-size ranges for single-point charts
	if xMax == xMin {
		xMin, xMax = xMin-1, xMax+1
	}
	if yMax == yMin {
		yMin, yMax = yMin-1, yMax+1
	}
	return xMin, xMax, yMin, yMax, true
}
