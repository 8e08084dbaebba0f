package densest

import "github.com/katalvlaran/simgraph/core"

// Result is a full peeling run.
type Result struct {
	// Subgraph is the densest candidate, independent of the input graph.
	Subgraph *core.Graph
	// Density is Subgraph's edges/nodes.
	Density float64
	// Order lists vertex IDs in removal order.
	Order []string
	// Steps[k] is the density before the k-th removal.
	Steps []float64
	// Best is the step at which Subgraph was observed.
	Best int
}

// peeler is the mutable working state of one run.
type peeler struct {
	ids     []string
	adj     [][]int
	degree  []int
	removed []bool
	alive   int
	edges   int
}

// Find returns the densest subgraph found by greedy peeling and its density.
// A nil or empty graph yields an empty graph and 0.
func Find(g *core.Graph) (*core.Graph, float64) {
	r := Peel(g)

	return r.Subgraph, r.Density
}

// Peel runs greedy peeling on g and reports every step.
func Peel(g *core.Graph) Result {
	if g == nil {
		return Result{Subgraph: core.NewGraph()}
	}
	p := newPeeler(g)
	res := Result{
		Order: make([]string, 0, len(p.ids)),
		Steps: make([]float64, 0, len(p.ids)),
	}

	bestDensity := 0.0
	for step := 0; p.alive > 0; step++ {
		d := float64(p.edges) / float64(p.alive)
		res.Steps = append(res.Steps, d)
		if d > bestDensity {
			bestDensity = d
			res.Best = step
		}
		res.Order = append(res.Order, p.ids[p.remove(p.minDegree())])
	}

	// Everything not removed before the best step.
	keep := make(map[string]bool, len(p.ids)-res.Best)
	for _, id := range p.ids {
		keep[id] = true
	}
	for _, id := range res.Order[:res.Best] {
		delete(keep, id)
	}
	res.Subgraph = core.InducedSubgraph(g, keep)
	res.Density = bestDensity

	return res
}

// newPeeler snapshots g into index form, positions following g.Vertices().
func newPeeler(g *core.Graph) *peeler {
	ids := g.Vertices()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	p := &peeler{
		ids:     ids,
		adj:     make([][]int, len(ids)),
		degree:  make([]int, len(ids)),
		removed: make([]bool, len(ids)),
		alive:   len(ids),
	}
	for _, e := range g.Edges() {
		u, v := pos[e.From], pos[e.To]
		p.adj[u] = append(p.adj[u], v)
		p.adj[v] = append(p.adj[v], u)
		p.degree[u]++
		p.degree[v]++
		p.edges++
	}

	return p
}

// minDegree returns an alive position of minimum degree; any one would do.
// Caller guarantees alive > 0.
func (p *peeler) minDegree() int {
	best := -1
	for i, d := range p.degree {
		if p.removed[i] {
			continue
		}
		if best < 0 || d < p.degree[best] {
			best = i
		}
	}

	return best
}

// remove drops position i and its incident edges, returning i.
func (p *peeler) remove(i int) int {
	p.removed[i] = true
	p.alive--
	for _, j := range p.adj[i] {
		if p.removed[j] {
			continue
		}
		p.degree[j]--
		p.edges--
	}
	p.degree[i] = 0

	return i
}
