// SPDX-License-Identifier: MIT

// Package pipeline runs one analysis: load a year of data, build the
// normalized graph, derive a thresholded copy and feed each requested output
// from its own graph instance.
//
//	dataset ─► normalized ─┬─► heatmap
//	                       └─► Copy ─► threshold ─┬─► centrality (inverted copy when weighted)
//	                                              ├─► network PNG
//	                                              └─► network HTML
//
// The normalized graph is never mutated after it is built, so consumers can
// read it concurrently.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/votegraph/centrality"
	"github.com/katalvlaran/votegraph/core"
	"github.com/katalvlaran/votegraph/dataset"
	"github.com/katalvlaran/votegraph/internal/logger"
	"github.com/katalvlaran/votegraph/internal/observability"
	"github.com/katalvlaran/votegraph/matrix"
	"github.com/katalvlaran/votegraph/render"
)

// Runner executes requests against a dataset directory.
type Runner struct {
	Loader    *dataset.Loader
	OutputDir string
	Logger    *logger.Logger

	// RenderOptions are passed to every PNG renderer.
	RenderOptions []render.Option
}

// Prepared holds the graphs shared by every consumer of a request.
type Prepared struct {
	Dataset     *dataset.Dataset
	Normalized  *core.Graph
	Thresholded *core.Graph
}

// Result summarizes a run.
type Result struct {
	Year      int      `json:"year"`
	Parties   []string `json:"parties"`
	Threshold float64  `json:"threshold"`

	Nodes              int `json:"nodes"`
	NormalizedEdges    int `json:"normalized_edges"`
	ThresholdedEdges   int `json:"thresholded_edges"`
	SimpleGraphEdges   int `json:"simple_graph_edges"`
	LegislatorsWithout int `json:"legislators_without_ties"`

	Ranking []centrality.Score `json:"ranking,omitempty"`
	Files   []string           `json:"files,omitempty"`
}

func (r *Runner) log() *logger.Logger {
	if r.Logger == nil {
		return logger.NewNop()
	}
	return r.Logger
}

// Prepare validates req, loads the dataset and builds the normalized and
// thresholded graphs.
func (r *Runner) Prepare(ctx context.Context, req Request) (*Prepared, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	parties := NormalizeParties(req.Parties)
	log := r.log().With("year", req.Year, "parties", partiesLabel(parties))

	_, span := observability.StartStageSpan(ctx, "load", req.Year)
	ds, err := r.Loader.Load(req.Year, parties)
	if err == nil {
		err = checkParties(ds, parties)
	}
	observability.RecordError(span, err)
	span.End()
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded", "legislators", len(ds.Legislators), "relations", len(ds.Relations))

	_, span = observability.StartStageSpan(ctx, "normalize", req.Year)
	normalized, err := ds.Graph(core.WithLogger(log.Zap()))
	observability.RecordError(span, err)
	if err == nil {
		observability.RecordGraphSize(span, normalized.NodeCount(), normalized.EdgeCount())
	}
	span.End()
	if err != nil {
		return nil, fmt.Errorf("build graph %d: %w", req.Year, err)
	}

	_, span = observability.StartStageSpan(ctx, "threshold", req.Year)
	thresholded := normalized.Copy().ApplyThreshold(req.Threshold)
	observability.RecordGraphSize(span, thresholded.NodeCount(), thresholded.EdgeCount())
	span.End()
	log.Info("graphs built",
		"nodes", normalized.NodeCount(),
		"edges", normalized.EdgeCount(),
		"threshold", req.Threshold,
		"kept_edges", thresholded.EdgeCount())

	return &Prepared{Dataset: ds, Normalized: normalized, Thresholded: thresholded}, nil
}

// Ranking scores the legislators of g. When weighted, g is copied and
// inverted so strong ties become short distances; g itself is left intact.
func Ranking(g *core.Graph, weighted bool) ([]centrality.Score, error) {
	if !weighted {
		return centrality.Rank(centrality.Betweenness(g.ToSimpleGraph())), nil
	}
	scores, err := centrality.BetweennessWeighted(g.Copy().InvertWeights().ToSimpleGraph())
	if err != nil {
		return nil, err
	}
	return centrality.Rank(scores), nil
}

// Summarize fills the graph counters of a Result.
func (p *Prepared) Summarize(req Request) *Result {
	res := &Result{
		Year:             req.Year,
		Parties:          NormalizeParties(req.Parties),
		Threshold:        req.Threshold,
		Nodes:            p.Normalized.NodeCount(),
		NormalizedEdges:  p.Normalized.EdgeCount(),
		ThresholdedEdges: p.Thresholded.EdgeCount(),
		SimpleGraphEdges: p.Thresholded.ToSimpleGraph().EdgeCount(),
	}
	for _, lg := range p.Dataset.Legislators {
		if !p.Normalized.HasNode(lg.ID) {
			res.LegislatorsWithout++
		}
	}
	return res
}

// Run executes req and writes every requested output under OutputDir.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	if !req.Wanted() {
		return nil, ErrNothingRequested
	}
	p, err := r.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	res := p.Summarize(req)
	if err = os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	label := partiesLabel(res.Parties)
	partyOf := p.Dataset.PartyOf()
	log := r.log().With("year", req.Year, "parties", label)

	var (
		mu    sync.Mutex
		files []string
	)
	emit := func(ctx context.Context, stage, name string, draw func(io.Writer) error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, span := observability.StartStageSpan(ctx, stage, req.Year)
		defer span.End()

		path := filepath.Join(r.OutputDir, name)
		err := writeFile(path, draw)
		observability.RecordError(span, err)
		if err != nil {
			return fmt.Errorf("%s: %w", stage, err)
		}
		log.Info("output written", "stage", stage, "path", path)

		mu.Lock()
		files = append(files, path)
		mu.Unlock()
		return nil
	}

	grp, gctx := errgroup.WithContext(ctx)
	if req.Centrality {
		grp.Go(func() error {
			ranking, err := Ranking(p.Thresholded, req.WeightedCentrality)
			if err != nil {
				return fmt.Errorf("centrality: %w", err)
			}
			res.Ranking = ranking
			title := fmt.Sprintf("Medida de Centralidade para Deputados dos partidos %s (%d, Threshold: %g)", label, req.Year, req.Threshold)
			return emit(gctx, "centrality", fmt.Sprintf("centralidade_grafico_%d_%s.png", req.Year, label), func(w io.Writer) error {
				return render.BarChart(w, ranking, title, r.RenderOptions...)
			})
		})
	}
	if req.Heatmap {
		grp.Go(func() error {
			sim, err := matrix.NewSimilarity(p.Normalized, partyOf)
			if err != nil {
				return fmt.Errorf("heatmap: %w", err)
			}
			title := fmt.Sprintf("HeatMap dos Pesos Normalizados dos Partidos %s, Ano %d", label, req.Year)
			return emit(gctx, "heatmap", fmt.Sprintf("heatmap_%d_%s.png", req.Year, label), func(w io.Writer) error {
				return render.Heatmap(w, sim, title, r.RenderOptions...)
			})
		})
	}
	if req.Network {
		grp.Go(func() error {
			title := fmt.Sprintf("Grafo de Deputados dos partidos %s (%d, Threshold: %g)", label, req.Year, req.Threshold)
			return emit(gctx, "network", fmt.Sprintf("grafo_%d_%s.png", req.Year, label), func(w io.Writer) error {
				return render.Network(w, p.Thresholded, partyOf, title, r.RenderOptions...)
			})
		})
	}
	if req.NetworkHTML {
		grp.Go(func() error {
			title := fmt.Sprintf("Grafo de Deputados dos partidos %s (%d, Threshold: %g)", label, req.Year, req.Threshold)
			return emit(gctx, "network_html", fmt.Sprintf("grafo_%d_%s.html", req.Year, label), func(w io.Writer) error {
				return render.NetworkHTML(w, p.Thresholded, partyOf, title)
			})
		})
	}
	if err = grp.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(files)
	res.Files = files
	return res, nil
}

func checkParties(ds *dataset.Dataset, parties []string) error {
	available := ds.AvailableParties()
	for _, p := range parties {
		if !slices.Contains(available, p) {
			return fmt.Errorf("%s in %d: %w", p, ds.Year, ErrUnknownParty)
		}
	}
	return nil
}

// writeFile creates path and streams draw into it.
func writeFile(path string, draw func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err = draw(bw); err != nil {
		return err
	}
	return bw.Flush()
}
