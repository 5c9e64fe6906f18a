// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/votegraph/centrality"
	"github.com/katalvlaran/votegraph/dataset"
	"github.com/katalvlaran/votegraph/internal/config"
	"github.com/katalvlaran/votegraph/internal/logger"
	"github.com/katalvlaran/votegraph/internal/neo4jstore"
	"github.com/katalvlaran/votegraph/internal/observability"
	"github.com/katalvlaran/votegraph/pipeline"
	"github.com/katalvlaran/votegraph/render"
)

// globals are the flags shared by every subcommand.
type globals struct {
	configPath string
	datasetDir string
	outputDir  string
	logLevel   string
}

// selection are the flags that pick the data slice.
type selection struct {
	year      int
	parties   []string
	threshold float64
}

func (s *selection) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&s.year, "year", pipeline.MaxYear, fmt.Sprintf("Year of the dataset (%d-%d)", pipeline.MinYear, pipeline.MaxYear))
	cmd.Flags().StringSliceVar(&s.parties, "parties", nil, "Parties to include, comma separated (default: all)")
	cmd.Flags().Float64Var(&s.threshold, "threshold", 0, "Minimum normalized weight, 0-1 or 0-100 (%)")
}

func (s *selection) request() (pipeline.Request, error) {
	th, err := pipeline.ParseThreshold(s.threshold)
	if err != nil {
		return pipeline.Request{}, err
	}
	return pipeline.Request{Year: s.year, Parties: s.parties, Threshold: th}, nil
}

// app is the wiring built from configuration before a subcommand runs.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	tracer *observability.TracerProvider
	runner *pipeline.Runner
}

func setup(ctx context.Context, g *globals) (*app, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.datasetDir != "" {
		cfg.Dataset.Dir = g.datasetDir
	}
	if g.outputDir != "" {
		cfg.Output.Dir = g.outputDir
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	warnConfig(log, cfg)
	tp, err := observability.InitTracing(ctx, &observability.TracingConfig{
		ServiceName: "votegraph",
		Enabled:     cfg.Tracing.Enabled,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		log:    log,
		tracer: tp,
		runner: &pipeline.Runner{
			Loader:        dataset.NewLoader(cfg.Dataset.Dir),
			OutputDir:     cfg.Output.Dir,
			Logger:        log,
			RenderOptions: []render.Option{render.WithSize(cfg.Plot.Width, cfg.Plot.Height)},
		},
	}, nil
}

// warnConfig logs every validation warning of cfg.
func warnConfig(log *logger.Logger, cfg *config.Config) {
	for _, w := range cfg.Validate() {
		log.Warn("config", "warning", w)
	}
}

func (a *app) close(ctx context.Context) {
	if err := a.tracer.Shutdown(ctx); err != nil {
		a.log.Warn("tracer shutdown", "error", err)
	}
	a.log.Sync()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var g globals

	rootCmd := &cobra.Command{
		Use:          "votegraph",
		Short:        "Co-voting graph analysis of legislators",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&g.datasetDir, "dataset-dir", "", "Directory holding graph<year>.csv and politicians<year>.csv")
	rootCmd.PersistentFlags().StringVar(&g.outputDir, "output-dir", "", "Directory for generated charts")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newPlotCmd(&g), newStatsCmd(&g), newExportCmd(&g))
	return rootCmd
}

func newPlotCmd(g *globals) *cobra.Command {
	var (
		sel                                     selection
		centralityOut, heatmap, graph, html, wc bool
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render centrality, heatmap and network charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := sel.request()
			if err != nil {
				return err
			}
			req.Centrality, req.Heatmap, req.Network, req.NetworkHTML = centralityOut, heatmap, graph, html
			req.WeightedCentrality = wc

			a, err := setup(cmd.Context(), g)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			res, err := a.runner.Run(cmd.Context(), req)
			if err != nil {
				a.log.Error("plot failed", "error", err)
				return err
			}
			for _, f := range res.Files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	sel.bind(cmd)
	cmd.Flags().BoolVar(&centralityOut, "centrality", false, "Betweenness centrality bar chart")
	cmd.Flags().BoolVar(&heatmap, "heatmap", false, "Normalized weight heatmap")
	cmd.Flags().BoolVar(&graph, "graph", false, "Party-colored network diagram (PNG)")
	cmd.Flags().BoolVar(&html, "html", false, "Interactive network diagram (HTML)")
	cmd.Flags().BoolVar(&wc, "weighted", false, "Use inverted weights as distances for centrality")
	return cmd
}

func newStatsCmd(g *globals) *cobra.Command {
	var (
		sel      selection
		weighted bool
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print graph counters and the most central legislators",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := sel.request()
			if err != nil {
				return err
			}
			a, err := setup(cmd.Context(), g)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			p, err := a.runner.Prepare(cmd.Context(), req)
			if err != nil {
				return err
			}
			res := p.Summarize(req)
			ranking, err := pipeline.Ranking(p.Thresholded, weighted)
			if err != nil {
				return err
			}
			res.Ranking = centrality.Top(ranking, a.cfg.Stats.Top)

			return printStats(cmd.OutOrStdout(), res, asJSON)
		},
	}
	sel.bind(cmd)
	cmd.Flags().BoolVar(&weighted, "weighted", false, "Use inverted weights as distances for centrality")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newExportCmd(g *globals) *cobra.Command {
	var sel selection
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Store the thresholded graph in Neo4j",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := sel.request()
			if err != nil {
				return err
			}
			a, err := setup(cmd.Context(), g)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())
			if a.cfg.Neo4j.URI == "" {
				return fmt.Errorf("neo4j.uri is not configured")
			}

			p, err := a.runner.Prepare(cmd.Context(), req)
			if err != nil {
				return err
			}
			store, err := neo4jstore.New(cmd.Context(), a.cfg.Neo4j.URI, a.cfg.Neo4j.Username, a.cfg.Neo4j.Password)
			if err != nil {
				return err
			}
			defer store.Close(cmd.Context())

			ctx, span := observability.StartStageSpan(cmd.Context(), "export", req.Year)
			n, err := store.StoreGraph(ctx, req.Year, p.Thresholded, p.Dataset.PartyOf())
			observability.RecordError(span, err)
			span.End()
			if err != nil {
				return err
			}
			a.log.Info("graph exported", "year", req.Year, "statements", n)
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d nodes and %d edges\n", p.Thresholded.NodeCount(), p.Thresholded.EdgeCount())
			return nil
		},
	}
	sel.bind(cmd)
	return cmd
}

func printStats(w io.Writer, res *pipeline.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	parties := "all"
	if len(res.Parties) > 0 {
		parties = strings.Join(res.Parties, ", ")
	}
	fmt.Fprintf(w, "Year %d, parties %s, threshold %g\n", res.Year, parties, res.Threshold)
	fmt.Fprintf(w, "  legislators with ties:  %d\n", res.Nodes)
	fmt.Fprintf(w, "  without ties:           %d\n", res.LegislatorsWithout)
	fmt.Fprintf(w, "  directed edges:         %d\n", res.NormalizedEdges)
	fmt.Fprintf(w, "  after threshold:        %d\n", res.ThresholdedEdges)
	fmt.Fprintf(w, "  undirected ties:        %d\n", res.SimpleGraphEdges)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tLEGISLATOR\tBETWEENNESS")
	for i, s := range res.Ranking {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\n", i+1, s.Name, s.Value)
	}
	return tw.Flush()
}
