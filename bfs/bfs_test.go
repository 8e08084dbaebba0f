package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/simgraph/bfs"
	"github.com/katalvlaran/simgraph/core"
)

// chain builds the path graph ids[0]–ids[1]–…; weights vary to prove they are ignored.
func chain(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			t.Fatal(err)
		}
	}
	for i := 1; i < len(ids); i++ {
		if _, err := g.AddEdge(ids[i-1], ids[i], float64(i)/10); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := chain(t, "A")
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	res, err := bfs.BFS(chain(t, "A"), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Reached() != 1 || res.DistanceSum() != 0 {
		t.Errorf("Reached/DistanceSum = %d/%d; want 1/0", res.Reached(), res.DistanceSum())
	}
}

// TestBFS_WeightedEdgesCountAsHops checks depths on a weighted chain.
func TestBFS_WeightedEdgesCountAsHops(t *testing.T) {
	g := chain(t, "A", "B", "C", "D")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if got := res.DistanceSum(); got != 6 {
		t.Errorf("DistanceSum = %d; want 6", got)
	}
	path, err := res.PathTo("D")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(D) = %v; want %v", path, want)
	}
}

// TestBFS_CycleOrder checks layer order on A–B–C–D–A.
func TestBFS_CycleOrder(t *testing.T) {
	g := chain(t, "A", "B", "C", "D")
	if _, err := g.AddEdge("D", "A", 0.9); err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	// neighbors follow insertion order: B before D
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Depth["C"] != 2 {
		t.Errorf("Depth[C] = %d; want 2", res.Depth["C"])
	}
	if res.Parent["C"] != "B" {
		t.Errorf("Parent[C] = %q; want B", res.Parent["C"])
	}
}

// TestBFS_StaysInComponent ensures unreachable vertices are absent.
func TestBFS_StaysInComponent(t *testing.T) {
	g := chain(t, "A", "B")
	if _, err := g.AddEdge("X", "Y", 1); err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached() != 2 {
		t.Errorf("Reached = %d; want 2", res.Reached())
	}
	if _, err := res.PathTo("X"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(X): want ErrNoPath, got %v", err)
	}
}

// TestBFS_MaxDepthAndFilter covers depth limiting and neighbor filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := chain(t, "A", "B", "C", "D")

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth(2) Order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "C" }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_HookErrorAndCancel covers OnVisit aborts and context cancellation.
func TestBFS_HookErrorAndCancel(t *testing.T) {
	g := chain(t, "A", "B", "C")
	stop := errors.New("stop")
	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want hook error, got %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v; want %v", res.Order, want)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}
