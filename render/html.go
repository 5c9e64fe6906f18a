// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/katalvlaran/votegraph/core"
	"github.com/katalvlaran/votegraph/palette"
)

// VisNode is a vis.js network node.
type VisNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Group string `json:"group"`
	Color string `json:"color"`
	Title string `json:"title"`
}

// VisEdge is a vis.js network edge.
type VisEdge struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Value float64 `json:"value"`
	Title string  `json:"title"`
}

type pageData struct {
	Title string
	Nodes template.JS
	Edges template.JS
}

var pageTemplate = template.Must(template.New("network").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script type="text/javascript" src="https://cdnjs.cloudflare.com/ajax/libs/vis/4.21.0/vis.min.js"></script>
<link href="https://cdnjs.cloudflare.com/ajax/libs/vis/4.21.0/vis-network.min.css" rel="stylesheet" type="text/css" />
<style type="text/css">
#network {
width: 100%;
height: 95vh;
}
</style>
</head>
<body>
<h3>{{.Title}}</h3>
<div id="network"></div>
<script type="text/javascript">
new vis.Network(
document.getElementById('network'),
{nodes: new vis.DataSet({{.Nodes}}), edges: new vis.DataSet({{.Edges}})},
{physics: {stabilization: true}, edges: {scaling: {min: 1, max: 6}}});
</script>
</body>
</html>
`))

// VisNetwork converts g into vis.js nodes and edges. Each undirected tie is
// emitted once; self-loops are omitted.
func VisNetwork(g *core.Graph, partyOf map[string]string) ([]VisNode, []VisEdge) {
	names := g.Nodes()
	nodes := make([]VisNode, 0, len(names))
	for _, name := range names {
		party := partyOf[name]
		nodes = append(nodes, VisNode{
			ID:    name,
			Label: name,
			Group: party,
			Color: palette.Hex(party),
			Title: fmt.Sprintf("%s (%s)", name, party),
		})
	}

	sg := g.ToSimpleGraph()
	edges := make([]VisEdge, 0, sg.EdgeCount())
	it := sg.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		a, _ := sg.Name(e.From().ID())
		b, _ := sg.Name(e.To().ID())
		if b < a {
			a, b = b, a
		}
		edges = append(edges, VisEdge{From: a, To: b, Value: e.Weight(), Title: fmt.Sprintf("%.3f", e.Weight())})
	}
	sortEdges(edges)

	return nodes, edges
}

// NetworkHTML writes an interactive vis.js page for g.
func NetworkHTML(w io.Writer, g *core.Graph, partyOf map[string]string, title string) error {
	if g == nil {
		return ErrNilInput
	}
	nodes, edges := VisNetwork(g, partyOf)
	jsonNodes, err := json.Marshal(nodes)
	if err != nil {
		return fmt.Errorf("render: marshal nodes: %w", err)
	}
	jsonEdges, err := json.Marshal(edges)
	if err != nil {
		return fmt.Errorf("render: marshal edges: %w", err)
	}

	return pageTemplate.Execute(w, pageData{
		Title: title,
		Nodes: template.JS(jsonNodes),
		Edges: template.JS(jsonEdges),
	})
}

func sortEdges(edges []VisEdge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
}
