package densest_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/densest"
)

func BenchmarkFind(b *testing.B) {
	rnd := rand.New(rand.NewSource(3))
	g := core.NewGraph()
	const n = 300
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rnd.Float64() < 0.05 {
				_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j), 1)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		densest.Find(g)
	}
}
