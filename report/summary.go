package report

import (
	"sort"

	"github.com/katalvlaran/simgraph/centrality"
	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/dfs"
)

// Member is a densest-subgraph vertex with its degree inside that subgraph.
type Member struct {
	ID     string `json:"id" yaml:"id"`
	Degree int    `json:"degree" yaml:"degree"`
}

// Dense describes the densest subgraph.
type Dense struct {
	Nodes   int      `json:"nodes" yaml:"nodes"`
	Edges   int      `json:"edges" yaml:"edges"`
	Density float64  `json:"density" yaml:"density"`
	Top     []Member `json:"top" yaml:"top"`
}

// Summary is the reportable outcome of one run.
type Summary struct {
	RunID         string              `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Threshold     float64             `json:"threshold" yaml:"threshold"`
	Nodes         int                 `json:"nodes" yaml:"nodes"`
	Edges         int                 `json:"edges" yaml:"edges"`
	AverageDegree float64             `json:"average_degree" yaml:"average_degree"`
	Components    int                 `json:"components" yaml:"components"`
	Largest       int                 `json:"largest_component" yaml:"largest_component"`
	TopK          int                 `json:"top_k" yaml:"top_k"`
	Closeness     []centrality.Ranked `json:"closeness" yaml:"closeness"`
	Densest       Dense               `json:"densest" yaml:"densest"`
}

// Summarize collects graph statistics (including connected components), the topK closeness entries and the
// topK densest members by degree (descending, ties by ID). topK ≤ 0 keeps
// every entry. A nil graph counts as empty.
func Summarize(g *core.Graph, scores centrality.Scores, dense *core.Graph, density float64, topK int) *Summary {
	s := &Summary{
		TopK:      topK,
		Closeness: scores.Top(topK),
		Densest:   Dense{Density: density, Top: []Member{}},
	}
	if g != nil {
		s.Nodes = g.VertexCount()
		s.Edges = g.EdgeCount()
		if cs := dfs.Components(g); len(cs) > 0 {
			s.Components = len(cs)
			s.Largest = len(cs[0])
		}
	}
	if s.Nodes > 0 {
		s.AverageDegree = 2 * float64(s.Edges) / float64(s.Nodes)
	}
	if dense != nil {
		s.Densest.Nodes = dense.VertexCount()
		s.Densest.Edges = dense.EdgeCount()
		s.Densest.Top = topMembers(dense, topK)
	}

	return s
}

// topMembers ranks dense's vertices by degree.
func topMembers(dense *core.Graph, k int) []Member {
	ms := make([]Member, 0, dense.VertexCount())
	for id, nbrs := range dense.AdjacencyList() {
		ms = append(ms, Member{ID: id, Degree: len(nbrs)})
	}
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Degree != ms[j].Degree {
			return ms[i].Degree > ms[j].Degree
		}
		return ms[i].ID < ms[j].ID
	})
	if k > 0 && k < len(ms) {
		ms = ms[:k]
	}

	return ms
}
