package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/exwalk/core"
)

// BenchmarkNewGraph_Sparse measures construction of a random sparse graph.
func BenchmarkNewGraph_Sparse(b *testing.B) {
	const V = 10000
	const E = 50000

	rnd := rand.New(rand.NewSource(42))
	edges := make([]core.Edge, 0, E)
	for len(edges) < E {
		u, v := rnd.Intn(V), rnd.Intn(V)
		if u == v {
			continue
		}
		edges = append(edges, core.Edge{U: u, V: v})
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = core.NewGraph(V, edges)
	}
}

// BenchmarkHasEdge measures point lookups on a pre-built graph.
func BenchmarkHasEdge(b *testing.B) {
	const V = 10000
	const E = 50000

	rnd := rand.New(rand.NewSource(7))
	edges := make([]core.Edge, 0, E)
	for len(edges) < E {
		u, v := rnd.Intn(V), rnd.Intn(V)
		if u == v {
			continue
		}
		edges = append(edges, core.Edge{U: u, V: v})
	}
	g, err := core.NewGraph(V, edges)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(i%V, (i*31)%V)
	}
}
