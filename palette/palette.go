// SPDX-License-Identifier: MIT

// Package palette maps party labels to display colors.
//
// The mapping is a pure function of the label: an FNV-1a hash picks an entry
// of a fixed qualitative palette, so the same party has the same color in
// every chart, every run. There is no shared mutable state.
package palette

import (
	"fmt"
	"hash/fnv"
	"image/color"
)

// colors is a 20-entry qualitative palette (tab20 ordering).
var colors = [...]color.NRGBA{
	{0x1f, 0x77, 0xb4, 0xff}, {0xae, 0xc7, 0xe8, 0xff},
	{0xff, 0x7f, 0x0e, 0xff}, {0xff, 0xbb, 0x78, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff}, {0x98, 0xdf, 0x8a, 0xff},
	{0xd6, 0x27, 0x28, 0xff}, {0xff, 0x98, 0x96, 0xff},
	{0x94, 0x67, 0xbd, 0xff}, {0xc5, 0xb0, 0xd5, 0xff},
	{0x8c, 0x56, 0x4b, 0xff}, {0xc4, 0x9c, 0x94, 0xff},
	{0xe3, 0x77, 0xc2, 0xff}, {0xf7, 0xb6, 0xd2, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff}, {0xc7, 0xc7, 0xc7, 0xff},
	{0xbc, 0xbd, 0x22, 0xff}, {0xdb, 0xdb, 0x8d, 0xff},
	{0x17, 0xbe, 0xcf, 0xff}, {0x9e, 0xda, 0xe5, 0xff},
}

// Size is the number of distinct colors.
const Size = len(colors)

// ColorFor returns the color of party.
func ColorFor(party string) color.NRGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(party))
	return colors[h.Sum32()%uint32(Size)]
}

// Hex returns the color of party as "#rrggbb".
func Hex(party string) string {
	c := ColorFor(party)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Legend returns the color of each party, keyed by label.
func Legend(parties []string) map[string]color.NRGBA {
	out := make(map[string]color.NRGBA, len(parties))
	for _, p := range parties {
		out[p] = ColorFor(p)
	}
	return out
}
