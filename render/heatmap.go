// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/katalvlaran/votegraph/matrix"
)

// inferno holds evenly spaced stops of the inferno color map, dark to bright.
var inferno = []color.NRGBA{
	{0x00, 0x00, 0x04, 0xff},
	{0x1b, 0x0c, 0x41, 0xff},
	{0x4a, 0x0c, 0x6b, 0xff},
	{0x78, 0x1c, 0x6d, 0xff},
	{0xa5, 0x2c, 0x60, 0xff},
	{0xcf, 0x44, 0x46, 0xff},
	{0xed, 0x69, 0x25, 0xff},
	{0xfb, 0x9b, 0x06, 0xff},
	{0xf7, 0xd1, 0x3d, 0xff},
	{0xfc, 0xff, 0xa4, 0xff},
}

// Ramp maps v in [0,1] onto the heatmap color scale; values outside are clamped.
func Ramp(v float64) color.NRGBA {
	if math.IsNaN(v) || v <= 0 {
		return inferno[0]
	}
	if v >= 1 {
		return inferno[len(inferno)-1]
	}
	pos := v * float64(len(inferno)-1)
	i := int(pos)
	t := pos - float64(i)
	a, b := inferno[i], inferno[i+1]
	lerp := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }

	return color.NRGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 0xff}
}

// Heatmap draws sim as a grid of colored cells with labels on both axes and a
// color bar on the right. The scale is fixed to 0..1.
func Heatmap(w io.Writer, sim *matrix.Similarity, title string, opts ...Option) error {
	if sim == nil {
		return ErrNilInput
	}
	s := newSettings(opts)
	dc := newCanvas(s, title)

	const labelSpace = 140.0
	const barSpace = 80.0
	left, top := margin+labelSpace, margin
	side := math.Min(float64(s.width)-left-margin-barSpace, float64(s.height)-top-margin-labelSpace)

	if n := sim.Len(); n > 0 && side > 0 {
		cell := side / float64(n)
		labels := sim.Labels()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v, err := sim.At(i, j)
				if err != nil {
					return fmt.Errorf("render: heatmap cell: %w", err)
				}
				dc.SetColor(Ramp(v))
				dc.DrawRectangle(left+float64(j)*cell, top+float64(i)*cell, cell, cell)
				dc.Fill()
			}
		}
		dc.SetColor(foreground)
		for i, label := range labels {
			c := float64(i)*cell + cell/2
			dc.DrawStringAnchored(label, left-6, top+c, 1, 0.5)

			dc.Push()
			x, y := left+c, top+side+6
			dc.RotateAbout(math.Pi/2, x, y)
			dc.DrawStringAnchored(label, x, y, 0, 0.5)
			dc.Pop()
		}
	}

	// Color bar.
	barX := float64(s.width) - margin - barSpace/2
	barH := float64(s.height) - 2*margin
	const steps = 100
	for k := 0; k < steps; k++ {
		v := float64(k) / (steps - 1)
		dc.SetColor(Ramp(v))
		dc.DrawRectangle(barX, margin+barH*(1-v)-barH/steps, 16, barH/steps+1)
		dc.Fill()
	}
	dc.SetColor(foreground)
	dc.DrawStringAnchored("1.0", barX+20, margin, 0, 0.5)
	dc.DrawStringAnchored("0.0", barX+20, margin+barH, 0, 0.5)

	return encode(dc, w)
}
