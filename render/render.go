// SPDX-License-Identifier: MIT

// Package render draws the derived visualizations of a co-voting graph:
//
//	BarChart     centrality ranking as a PNG bar chart
//	Heatmap      similarity matrix as a PNG heatmap (0..1 color ramp)
//	Network      party-colored circular network diagram as PNG
//	NetworkHTML  the same network as an interactive vis.js page
//
// Renderers consume structured data only and write to an io.Writer; choosing
// file names is left to the caller.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// ErrNilInput indicates a nil graph or matrix passed to a renderer.
var ErrNilInput = errors.New("render: nil input")

const (
	defaultWidth  = 1200
	defaultHeight = 800
	margin        = 60.0
)

var (
	background = color.White
	foreground = color.NRGBA{0x22, 0x22, 0x22, 0xff}
	gridColor  = color.NRGBA{0xdd, 0xdd, 0xdd, 0xff}
	barColor   = color.NRGBA{0x1f, 0x77, 0xb4, 0xff}
)

type settings struct {
	width, height int
}

// Option configures a renderer.
type Option func(*settings)

// WithSize sets the canvas size in pixels. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(s *settings) {
		if width > 0 {
			s.width = width
		}
		if height > 0 {
			s.height = height
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{width: defaultWidth, height: defaultHeight}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// newCanvas returns a cleared context with the title drawn at the top.
func newCanvas(s settings, title string) *gg.Context {
	dc := gg.NewContext(s.width, s.height)
	dc.SetColor(background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(foreground)
	dc.DrawStringAnchored(title, float64(s.width)/2, margin/2, 0.5, 0.5)
	return dc
}

func encode(dc *gg.Context, w io.Writer) error {
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
