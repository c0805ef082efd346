package fleury_test

import (
	"testing"

	"github.com/katalvlaran/eulertrail/builder"
	"github.com/katalvlaran/eulertrail/fleury"
)

func benchTour(b *testing.B, n int, cons builder.Constructor, p fleury.RestorePolicy) {
	b.Helper()
	g, err := builder.BuildGraph(n, []fleury.GraphOption{fleury.WithRestorePolicy(p)}, nil, cons)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = g.Clone().Tour(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTour_Cycle measures the walk on a long cycle (no bridges until the end).
func BenchmarkTour_Cycle(b *testing.B) {
	benchTour(b, 500, builder.Cycle(500), fleury.RestoreAppend)
}

// BenchmarkTour_Complete measures the walk on K_21 (every vertex even, dense).
func BenchmarkTour_Complete(b *testing.B) {
	b.Run("append", func(b *testing.B) { benchTour(b, 21, builder.Complete(21), fleury.RestoreAppend) })
	b.Run("inplace", func(b *testing.B) { benchTour(b, 21, builder.Complete(21), fleury.RestoreInPlace) })
}

// BenchmarkIsValidNextEdge measures one bridge probe on a 30x30 grid.
func BenchmarkIsValidNextEdge(b *testing.B) {
	g, err := builder.BuildGraph(900, []fleury.GraphOption{fleury.WithRestorePolicy(fleury.RestoreInPlace)}, nil, builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.IsValidNextEdge(0, 1)
	}
}
