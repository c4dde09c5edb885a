package chart

import (
	"fmt"
	"strings"
)

// RenderTerminal renders the chart as fixed-width text for CLI output.
// Each row shows mean rank ± std with a horizontal bar scaled to the
// worst mean; the best row gets ★, the stable row ◆.
func RenderTerminal(c *Chart) string {
	var b strings.Builder

	b.WriteString(c.Title + "\n")

	_, _, _, yMax, ok := c.bounds()
	if !ok {
		b.WriteString("  (no data)\n")
		return b.String()
	}

	const barWidth = 40
	for _, bar := range c.Bars {
		if bar.Missing {
			fmt.Fprintf(&b, "  %10g │ %-*s  (missing)\n", bar.X, barWidth, "")
			continue
		}

		filled := int(bar.Y / yMax * barWidth)
		if filled < 1 {
			filled = 1
		}
		if filled > barWidth {
			filled = barWidth
		}

		mark := " "
		if c.HasMarks && bar.X == c.BestX {
			mark = "★"
		} else if c.HasMarks && bar.X == c.StableX {
			mark = "◆"
		}

		fmt.Fprintf(&b, "  %10g │%s%s %s %.3f ± %.3f\n",
			bar.X,
			strings.Repeat("█", filled),
			strings.Repeat(" ", barWidth-filled),
			mark, bar.Y, bar.Err)
	}

	if c.HasMarks {
		fmt.Fprintf(&b, "  threshold %.3f  (★ best, ◆ stable)\n", c.Threshold)
	}
	return b.String()
}
