// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/votegraph/internal/config"
	"github.com/katalvlaran/votegraph/internal/logger"
	"github.com/katalvlaran/votegraph/pipeline"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "graph2019.csv"),
		[]byte("Ana;Bruno;40\nBruno;Caio;30\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "politicians2019.csv"),
		[]byte("Ana;PT;50\nBruno;PT;80\nCaio;PL;50\n"), 0o644))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestStatsCmd_JSON(t *testing.T) {
	dir := writeFixture(t)
	out, err := execute(t, "stats", "--dataset-dir", dir, "--year", "2019", "--threshold", "50", "--json")
	require.NoError(t, err)

	var res pipeline.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2019, res.Year)
	assert.InDelta(t, 0.5, res.Threshold, 1e-12)
	assert.Equal(t, 3, res.Nodes)
	assert.Equal(t, 4, res.NormalizedEdges)
	assert.Equal(t, 4, res.ThresholdedEdges)
	require.NotEmpty(t, res.Ranking)
	assert.Equal(t, "Bruno", res.Ranking[0].Name)
}

func TestStatsCmd_Table(t *testing.T) {
	dir := writeFixture(t)
	out, err := execute(t, "stats", "--dataset-dir", dir, "--year", "2019", "--parties", "PT")
	require.NoError(t, err)
	assert.Contains(t, out, "Year 2019, parties PT")
	assert.Contains(t, out, "RANK")
}

func TestPlotCmd_WritesFiles(t *testing.T) {
	dir := writeFixture(t)
	outDir := filepath.Join(t.TempDir(), "charts")
	out, err := execute(t, "plot", "--dataset-dir", dir, "--output-dir", outDir,
		"--year", "2019", "--html", "--graph")
	require.NoError(t, err)

	lines := strings.Fields(out)
	assert.Equal(t, []string{
		filepath.Join(outDir, "grafo_2019_todos.html"),
		filepath.Join(outDir, "grafo_2019_todos.png"),
	}, lines)
}

func TestCmd_ValidationErrors(t *testing.T) {
	dir := writeFixture(t)

	_, err := execute(t, "stats", "--dataset-dir", dir, "--year", "2019", "--threshold", "150")
	assert.ErrorIs(t, err, pipeline.ErrInvalidThreshold)

	_, err = execute(t, "stats", "--dataset-dir", dir, "--year", "1990")
	assert.ErrorIs(t, err, pipeline.ErrInvalidYear)

	_, err = execute(t, "plot", "--dataset-dir", dir, "--year", "2019", "--parties", "NOVO", "--heatmap")
	assert.ErrorIs(t, err, pipeline.ErrUnknownParty)

	_, err = execute(t, "export", "--dataset-dir", dir, "--year", "2019")
	assert.ErrorContains(t, err, "neo4j.uri")
}

func TestWarnConfig_LogsThroughLogger(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Neo4j.URI = "bolt://localhost:7687"
	cfg.Plot.Width = 100

	obs, logs := observer.New(zapcore.DebugLevel)
	warnConfig(&logger.Logger{SugaredLogger: zap.New(obs).Sugar()}, cfg)

	entries := logs.FilterMessage("config").All()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, zapcore.WarnLevel, e.Level)
	}
	assert.Contains(t, entries[0].ContextMap()["warning"], "neo4j")
}
