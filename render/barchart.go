// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/votegraph/centrality"
)

// BarChart draws one vertical bar per ranking entry, in ranking order, with the
// legislator name rotated under each bar. The value axis spans 0 to the larger
// of 1 and the top score.
func BarChart(w io.Writer, ranking []centrality.Score, title string, opts ...Option) error {
	s := newSettings(opts)
	dc := newCanvas(s, title)

	left, top := margin, margin
	plotW := float64(s.width) - 2*margin
	plotH := float64(s.height) - 2.5*margin

	maxV := 1.0
	for _, sc := range ranking {
		maxV = math.Max(maxV, sc.Value)
	}

	// Horizontal grid with tick labels every 0.25 of the axis.
	dc.SetLineWidth(1)
	for i := 0; i <= 4; i++ {
		frac := float64(i) / 4
		y := top + plotH*(1-frac)
		dc.SetColor(gridColor)
		dc.DrawLine(left, y, left+plotW, y)
		dc.Stroke()
		dc.SetColor(foreground)
		dc.DrawStringAnchored(fmt.Sprintf("%.2f", frac*maxV), left-6, y, 1, 0.5)
	}

	if len(ranking) > 0 {
		slot := plotW / float64(len(ranking))
		barW := slot * 0.8
		for i, sc := range ranking {
			h := plotH * sc.Value / maxV
			x := left + float64(i)*slot + (slot-barW)/2
			dc.SetColor(barColor)
			dc.DrawRectangle(x, top+plotH-h, barW, h)
			dc.Fill()

			dc.Push()
			dc.SetColor(foreground)
			cx, cy := x+barW/2, top+plotH+6
			dc.RotateAbout(gg.Radians(45), cx, cy)
			dc.DrawStringAnchored(sc.Name, cx, cy, 0, 0.5)
			dc.Pop()
		}
	}

	return encode(dc, w)
}
