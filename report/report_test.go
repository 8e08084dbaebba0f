package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simgraph/centrality"
	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/densest"
	"github.com/katalvlaran/simgraph/report"
)

// fixture is the three-entity scenario: A–B connected, C isolated.
func fixture(t *testing.T) *report.Summary {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("C"))

	sub, d := densest.Find(g)

	return report.Summarize(g, centrality.Closeness(g), sub, d, 5)
}

func TestSummarize(t *testing.T) {
	s := fixture(t)
	require.Equal(t, 3, s.Nodes)
	require.Equal(t, 1, s.Edges)
	require.InDelta(t, 2.0/3.0, s.AverageDegree, 1e-12)
	require.Equal(t, 2, s.Components)
	require.Equal(t, 2, s.Largest)
	require.Equal(t, []centrality.Ranked{{ID: "A", Score: 1}, {ID: "B", Score: 1}, {ID: "C", Score: 0}}, s.Closeness)
	require.Equal(t, 2, s.Densest.Nodes)
	require.InDelta(t, 0.5, s.Densest.Density, 1e-12)
	require.Equal(t, []report.Member{{ID: "A", Degree: 1}, {ID: "B", Degree: 1}}, s.Densest.Top)
}

func TestSummarize_TopKAndEmpty(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"hub", "a"}, {"hub", "b"}, {"hub", "c"}, {"a", "b"}} {
		_, err := g.AddEdge(e[0], e[1], 0.9)
		require.NoError(t, err)
	}
	s := report.Summarize(g, centrality.Closeness(g), g, g.Density(), 2)
	require.Len(t, s.Closeness, 2)
	require.Equal(t, "hub", s.Closeness[0].ID)
	require.Equal(t, []report.Member{{ID: "hub", Degree: 3}, {ID: "a", Degree: 2}}, s.Densest.Top)

	empty := report.Summarize(nil, nil, nil, 0, 5)
	require.Equal(t, 0, empty.Nodes)
	require.Equal(t, 0.0, empty.AverageDegree)
	require.Empty(t, empty.Closeness)
	require.Empty(t, empty.Densest.Top)
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatText, fixture(t)))

	want := "Graph has 3 nodes and 1 edges\n" +
		"Average node degree: 0.67\n" +
		"Connected components: 2 (largest 2 nodes)\n" +
		"\n" +
		"Top 3 entities by closeness centrality:\n" +
		"A: 1.000\n" +
		"B: 1.000\n" +
		"C: 0.000\n" +
		"\n" +
		"Densest subgraph: 2 nodes, density = 0.500\n" +
		"Top 2 nodes in densest subgraph by degree:\n" +
		"A (degree 1)\n" +
		"B (degree 1)\n"
	require.Equal(t, want, buf.String())
}

func TestWrite_TextLargeCounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatText, &report.Summary{Nodes: 1200, Edges: 654321}))
	require.Contains(t, buf.String(), "Graph has 1,200 nodes and 654,321 edges\n")
}

func TestWrite_JSONAndYAMLRoundTrip(t *testing.T) {
	s := fixture(t)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatJSON, s))
	var fromJSON report.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	require.Equal(t, *s, fromJSON)

	buf.Reset()
	require.NoError(t, report.Write(&buf, report.FormatYAML, s))
	var fromYAML report.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	require.Equal(t, *s, fromYAML)
	require.Contains(t, buf.String(), "average_degree:")
}

func TestFormats(t *testing.T) {
	for in, want := range map[string]report.Format{
		"text": report.FormatText, "JSON": report.FormatJSON, " yaml ": report.FormatYAML, "yml": report.FormatYAML,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}
	_, err := report.ParseFormat("xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)

	var buf bytes.Buffer
	require.ErrorIs(t, report.Write(&buf, "xml", fixture(t)), report.ErrUnknownFormat)
	require.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output_results.txt")

	require.NoError(t, report.WriteFile(path, report.FormatText, fixture(t)))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "Densest subgraph: 2 nodes")

	bad := filepath.Join(dir, "bad.out")
	require.ErrorIs(t, report.WriteFile(bad, "xml", fixture(t)), report.ErrUnknownFormat)
	_, err = os.Stat(bad)
	require.True(t, os.IsNotExist(err), "no file on render failure")
}
