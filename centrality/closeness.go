package centrality

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/simgraph/bfs"
	"github.com/katalvlaran/simgraph/core"
)

// Scores maps vertex ID to closeness centrality.
type Scores map[string]float64

// Ranked is one (ID, Score) entry of a ranking.
type Ranked struct {
	ID    string  `json:"id" yaml:"id"`
	Score float64 `json:"score" yaml:"score"`
}

// Closeness returns the closeness centrality of every vertex in g.
// A nil or empty graph yields an empty map.
func Closeness(g *core.Graph) Scores {
	// Background is never cancelled and a well-formed graph cannot fail BFS.
	s, _ := ClosenessContext(context.Background(), g)

	return s
}

// ClosenessContext is Closeness with cancellation, checked between vertices.
// On cancellation it returns the scores computed so far and ctx.Err().
func ClosenessContext(ctx context.Context, g *core.Graph) (Scores, error) {
	if g == nil {
		return Scores{}, nil
	}
	ids := g.Vertices()
	out := make(Scores, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		res, err := bfs.BFS(g, id)
		if err != nil {
			return out, fmt.Errorf("centrality: closeness of %q: %w", id, err)
		}
		out[id] = closeness(res.Reached(), res.DistanceSum())
	}

	return out, nil
}

// closeness is (reached−1)/sum, or 0 when nothing besides the source was reached.
func closeness(reached, sum int) float64 {
	if sum == 0 {
		return 0
	}

	return float64(reached-1) / float64(sum)
}

// Ranked returns the scores ordered by score descending, ties broken by ID
// ascending.
func (s Scores) Ranked() []Ranked {
	out := make([]Ranked, 0, len(s))
	for id, v := range s {
		out = append(out, Ranked{ID: id, Score: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// Top returns at most k leading entries of Ranked. k ≤ 0 yields all of them.
func (s Scores) Top(k int) []Ranked {
	r := s.Ranked()
	if k > 0 && k < len(r) {
		r = r[:k]
	}

	return r
}
