// Package votegraph analyzes how legislators vote together.
//
// 🚀 What is votegraph?
//
//	A co-voting graph toolkit built around one weighted, directed graph:
//		• Core graph: nodes are legislators, edge weights are agreement counts
//		• Normalization: count / min(activity) turns counts into 0..1 affinity
//		• Threshold & inversion: prune weak ties, turn affinity into distance
//		• Centrality: betweenness over the undirected simple-graph view (gonum)
//		• Charts: centrality bars, similarity heatmap, party-colored network
//		• Export: interactive vis.js page and Neo4j
//
// Packages:
//
//	core/        — Graph storage, mutation, union/copy and the transforms
//	dataset/     — graph<year>.csv / politicians<year>.csv ingestion and party filter
//	centrality/  — betweenness scores and ranking
//	matrix/      — Dense matrix and the party-ordered similarity matrix
//	palette/     — deterministic party colors
//	render/      — PNG and HTML renderers
//	pipeline/    — normalized → copy → threshold → outputs, as run by the CLI
//	cmd/votegraph — plot, stats and export commands
//
// Quick ASCII example:
//
//	    Ana ──0.8── Bruno
//	     │            │
//	    0.2          0.7
//	     │            │
//	    Caio ─────────┘
//
// With a threshold of 0.5 the Ana–Caio tie is pruned and Bruno becomes the
// only bridge between Ana and Caio.
//
//	go install github.com/katalvlaran/votegraph/cmd/votegraph@latest
package votegraph
