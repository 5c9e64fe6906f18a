// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"math"
	"sort"

	"github.com/katalvlaran/votegraph/core"
	"github.com/katalvlaran/votegraph/palette"
)

// Layout returns a circular position for every node of g. Nodes are placed
// clockwise from the top, grouped by party, then by name.
func Layout(g *core.Graph, partyOf map[string]string, cx, cy, radius float64) map[string][2]float64 {
	names := g.Nodes()
	sort.SliceStable(names, func(i, j int) bool {
		return partyOf[names[i]] < partyOf[names[j]]
	})

	out := make(map[string][2]float64, len(names))
	for i, name := range names {
		angle := 2*math.Pi*float64(i)/float64(len(names)) - math.Pi/2
		out[name] = [2]float64{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)}
	}
	return out
}

// Network draws g on a circle. Each undirected tie is drawn once, with its
// line width and opacity growing with the weight; nodes are filled with the
// party color and labelled "name (party)". A legend lists the parties.
func Network(w io.Writer, g *core.Graph, partyOf map[string]string, title string, opts ...Option) error {
	if g == nil {
		return ErrNilInput
	}
	s := newSettings(opts)
	dc := newCanvas(s, title)

	cx, cy := float64(s.width)/2, float64(s.height)/2+margin/4
	radius := math.Min(float64(s.width), float64(s.height))/2 - 1.5*margin
	pos := Layout(g, partyOf, cx, cy, radius)

	sg := g.ToSimpleGraph()
	edges := sg.WeightedEdges()
	for edges.Next() {
		e := edges.WeightedEdge()
		a, _ := sg.Name(e.From().ID())
		b, _ := sg.Name(e.To().ID())
		wt := math.Max(0, math.Min(1, e.Weight()))
		dc.SetRGBA(0.3, 0.3, 0.3, 0.15+0.6*wt)
		dc.SetLineWidth(0.5 + 3*wt)
		dc.DrawLine(pos[a][0], pos[a][1], pos[b][0], pos[b][1])
		dc.Stroke()
	}

	for _, name := range g.Nodes() {
		p := pos[name]
		dc.SetColor(palette.ColorFor(partyOf[name]))
		dc.DrawCircle(p[0], p[1], 7)
		dc.Fill()
		dc.SetColor(foreground)
		dc.DrawStringAnchored(name+" ("+partyOf[name]+")", p[0]+10, p[1], 0, 0.5)
	}

	parties := distinctParties(g, partyOf)
	legend := palette.Legend(parties)
	for i, party := range parties {
		y := margin + float64(i)*18
		dc.SetColor(legend[party])
		dc.DrawRectangle(12, y-6, 12, 12)
		dc.Fill()
		dc.SetColor(foreground)
		dc.DrawStringAnchored(party, 30, y, 0, 0.5)
	}

	return encode(dc, w)
}

func distinctParties(g *core.Graph, partyOf map[string]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range g.Nodes() {
		p := partyOf[name]
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
