package chart

import (
	"fmt"
	"strings"
)

// SVG rendering geometry
const (
	svgWidth   = 720
	svgHeight  = 480
	svgPadding = 56.0
)

// RenderSVG renders the chart as a standalone SVG document
func RenderSVG(c *Chart) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		svgWidth, svgHeight, svgWidth, svgHeight)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")
	fmt.Fprintf(&b, `<text x="%d" y="24" font-family="sans-serif" font-size="16" text-anchor="middle">%s</text>`+"\n",
		svgWidth/2, escape(c.Title))

	xMin, xMax, yMin, yMax, ok := c.bounds()
	if !ok {
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="14" text-anchor="middle">no data</text>`+"\n",
			svgWidth/2, svgHeight/2)
		b.WriteString("</svg>\n")
		return b.String()
	}

	plotW := float64(svgWidth) - 2*svgPadding
	plotH := float64(svgHeight) - 2*svgPadding
	// Rank axis points down: better (lower) ranks plot higher.
	sx := func(x float64) float64 { return svgPadding + (x-xMin)/(xMax-xMin)*plotW }
	sy := func(y float64) float64 { return svgPadding + (y-yMin)/(yMax-yMin)*plotH }

	// Frame and axis labels
	fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#ccc"/>`+"\n",
		svgPadding, svgPadding, plotW, plotH)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="12" text-anchor="middle">%s</text>`+"\n",
		svgWidth/2, svgHeight-12, escape(c.XLabel))
	fmt.Fprintf(&b, `<text x="16" y="%d" font-family="sans-serif" font-size="12" text-anchor="middle" transform="rotate(-90 16 %d)">%s</text>`+"\n",
		svgHeight/2, svgHeight/2, escape(c.YLabel))

	// Threshold line: min mean + its std
	if c.HasMarks {
		ty := sy(c.Threshold)
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#d33" stroke-dasharray="6 4"/>`+"\n",
			svgPadding, ty, svgPadding+plotW, ty)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="#d33">threshold %.3f</text>`+"\n",
			svgPadding+4, ty-5, c.Threshold)
	}

	// Mean line connecting present points
	var path strings.Builder
	cmd := "M"
	for _, bar := range c.Bars {
		if bar.Missing {
			continue
		}
		fmt.Fprintf(&path, "%s%.1f %.1f ", cmd, sx(bar.X), sy(bar.Y))
		cmd = "L"
	}
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="#36c" stroke-width="1.5"/>`+"\n", strings.TrimSpace(path.String()))

	// Error bars and point markers
	for _, bar := range c.Bars {
		if bar.Missing {
			continue
		}
		x, y := sx(bar.X), sy(bar.Y)
		if bar.Err > 0 {
			lo, hi := sy(bar.Y-bar.Err), sy(bar.Y+bar.Err)
			fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#36c"/>`+"\n", x, lo, x, hi)
			fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#36c"/>`+"\n", x-4, lo, x+4, lo)
			fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#36c"/>`+"\n", x-4, hi, x+4, hi)
		}

		fill := "#36c"
		r := 3.5
		if c.HasMarks && bar.X == c.BestX {
			fill = "#2a2"
			r = 5
		} else if c.HasMarks && bar.X == c.StableX {
			fill = "#f90"
			r = 5
		}
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", x, y, r, fill)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="10" text-anchor="middle">%g</text>`+"\n",
			x, svgPadding+plotH+14, bar.X)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// escape replaces the XML special characters in text content
func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
