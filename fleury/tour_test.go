package fleury_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulertrail/builder"
	"github.com/katalvlaran/eulertrail/fleury"
)

var policies = []fleury.RestorePolicy{fleury.RestoreAppend, fleury.RestoreInPlace}

func TestTour_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		edges    [][2]int
		want     string
		start    int
		circuit  bool
		deferred int
	}{
		{name: "triangle", n: 3, edges: triangle, want: "0-1 1-2 2-0", start: 0, circuit: true},
		{name: "path", n: 3, edges: path3, want: "0-1 1-2", start: 0},
		{name: "bowtie", n: 4, edges: bowtie, want: "0-1 1-2 2-3 3-0 0-2", start: 0},
		{name: "lollipop", n: 4, edges: lollipop, want: "0-1 1-2 2-0 0-3", start: 0, deferred: 1},
		{name: "single vertex", n: 1, edges: nil, want: "", start: 0},
		{name: "odd start", n: 4, edges: [][2]int{{1, 0}, {1, 2}, {2, 3}}, want: "0-1 1-2 2-3", start: 0},
		{name: "late odd start", n: 4, edges: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}}, want: "2-1 1-0 0-2 2-3", start: 2},
	}

	for _, tc := range tests {
		for _, p := range policies {
			t.Run(tc.name+"/"+p.String(), func(t *testing.T) {
				g := mustGraph(t, tc.n, tc.edges, fleury.WithRestorePolicy(p))
				snapshot := g.Clone()

				res, err := g.Tour()
				require.NoError(t, err)
				assert.Equal(t, tc.want, res.String())
				assert.Equal(t, tc.start, res.Start)
				assert.Equal(t, tc.circuit, res.Circuit)
				assert.Equal(t, tc.deferred, res.Deferred)
				assert.True(t, res.Complete)
				assert.Len(t, res.Steps, len(tc.edges))
				assert.Equal(t, 0, g.EdgeCount(), "tour consumes every edge")
				assert.NoError(t, fleury.ValidateTrail(snapshot, res.Steps))
			})
		}
	}
}

func TestTour_BowtieDefersDiagonal(t *testing.T) {
	g := mustGraph(t, 4, bowtie)

	var seen bool
	res, err := g.Tour(fleury.WithOnStep(func(s fleury.Step) error {
		if (s.From == 0 && s.To == 2) || (s.From == 2 && s.To == 0) {
			seen = true
			// the hook runs before the edge is consumed
			assert.Equal(t, 1, g.Degree(s.From), "diagonal taken while other edges remained")
		}
		return nil
	}))
	require.NoError(t, err)
	assert.True(t, seen)
	assert.Equal(t, fleury.Step{From: 0, To: 2}, res.Steps[len(res.Steps)-1])
}

func TestTour_LollipopDefersBridge(t *testing.T) {
	g := mustGraph(t, 4, lollipop)

	var deferred []fleury.Step
	res, err := g.Tour(fleury.WithOnDefer(func(u, v int) {
		deferred = append(deferred, fleury.Step{From: u, To: v})
	}))
	require.NoError(t, err)
	assert.Equal(t, []fleury.Step{{From: 0, To: 3}}, deferred)
	assert.Equal(t, 3, res.End())
	assert.False(t, res.Circuit)
}

func TestTour_BuilderTopologies(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		cons    []builder.Constructor
		want    string
		circuit bool
	}{
		{
			name: "K5", n: 5, cons: []builder.Constructor{builder.Complete(5)},
			want:    "0-1 1-2 2-0 0-3 3-1 1-4 4-2 2-3 3-4 4-0",
			circuit: true,
		},
		{
			name: "figure eight", n: 5,
			cons:    []builder.Constructor{builder.Cycle(3), builder.Shift(2, builder.Cycle(3))},
			want:    "0-1 1-2 2-3 3-4 4-2 2-0",
			circuit: true,
		},
		{
			name: "K2,4", n: 6, cons: []builder.Constructor{builder.CompleteBipartite(2, 4)},
			want:    "0-2 2-1 1-3 3-0 0-4 4-1 1-5 5-0",
			circuit: true,
		},
		{
			name: "grid 2x3", n: 6, cons: []builder.Constructor{builder.Grid(2, 3)},
			want: "1-0 0-3 3-4 4-1 1-2 2-5 5-4",
		},
		{
			name: "C5", n: 5, cons: []builder.Constructor{builder.Cycle(5)},
			want:    "0-1 1-2 2-3 3-4 4-0",
			circuit: true,
		},
	}

	for _, tc := range tests {
		for _, p := range policies {
			t.Run(tc.name+"/"+p.String(), func(t *testing.T) {
				g, err := builder.BuildGraph(tc.n, []fleury.GraphOption{fleury.WithRestorePolicy(p)}, nil, tc.cons...)
				require.NoError(t, err)
				snapshot := g.Clone()

				res, err := g.Tour(fleury.WithStrict())
				require.NoError(t, err)
				assert.Equal(t, tc.want, res.String())
				assert.Equal(t, tc.circuit, res.Circuit)
				assert.NoError(t, fleury.ValidateTrail(snapshot, res.Steps))
			})
		}
	}
}

// Random simple graphs: every sample that admits a trail must yield one,
// and both restore policies must agree on it.
func TestTour_RandomEulerian(t *testing.T) {
	checked := 0
	for seed := int64(0); seed < 200; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithShuffle()}
		g, err := builder.BuildGraph(7, nil, opts, builder.RandomSparse(7, 0.5))
		require.NoError(t, err)
		if g.EdgeCount() == 0 || g.CheckEulerian() != nil {
			continue
		}
		checked++

		inplace := mustGraph(t, 7, g.Edges(), fleury.WithRestorePolicy(fleury.RestoreInPlace))
		snapshot := g.Clone()

		a, err := g.Tour(fleury.WithStrict())
		require.NoError(t, err, "seed %d", seed)
		b, err := inplace.Tour(fleury.WithStrict())
		require.NoError(t, err, "seed %d", seed)

		require.NoError(t, fleury.ValidateTrail(snapshot, a.Steps), "seed %d: %s", seed, a)
		assert.Equal(t, a.String(), b.String(), "seed %d", seed)
		assert.True(t, a.Complete)

		odd := snapshot.OddVertices()
		if len(odd) == 0 {
			assert.True(t, a.Circuit, "seed %d", seed)
		} else {
			assert.Equal(t, odd[0], a.Start, "seed %d", seed)
			assert.Equal(t, odd[1], a.End(), "seed %d", seed)
		}
	}
	assert.Positive(t, checked)
}

func TestTour_NotEulerian(t *testing.T) {
	// star K_{1,3}: every edge is a bridge and three vertices are odd
	star := [][2]int{{0, 1}, {0, 2}, {0, 3}}
	for _, p := range policies {
		g := mustGraph(t, 4, star, fleury.WithRestorePolicy(p))
		res, err := g.Clone().Tour()
		require.NoError(t, err)
		assert.Empty(t, res.Steps)
		assert.Equal(t, 3, res.Deferred)
		assert.False(t, res.Complete)

		_, err = g.Tour(fleury.WithStrict())
		assert.ErrorIs(t, err, fleury.ErrTooManyOddVertices)
		assert.Equal(t, 3, g.EdgeCount(), "strict rejection leaves the graph untouched")
	}

	// wheel W_5: all edges get printed but the trail is not a walk
	g, err := builder.BuildGraph(5, nil, nil, builder.Wheel(5))
	require.NoError(t, err)
	snapshot := g.Clone()
	res, err := g.Tour()
	require.NoError(t, err)
	assert.Equal(t, "0-1 1-2 2-3 3-0 0-4 3-4 2-4 4-1", res.String())
	assert.ErrorIs(t, fleury.ValidateTrail(snapshot, res.Steps), fleury.ErrInvalidTrail)
}

func TestTour_Disconnected(t *testing.T) {
	twoTriangles := [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}
	g := mustGraph(t, 6, twoTriangles)

	res, err := g.Clone().Tour()
	require.NoError(t, err)
	assert.Equal(t, "0-1 1-2 2-0", res.String())
	assert.False(t, res.Complete)

	_, err = g.Tour(fleury.WithStrict())
	assert.ErrorIs(t, err, fleury.ErrDisconnected)
}

func TestTour_IsolatedVertexZero(t *testing.T) {
	g := mustGraph(t, 4, [][2]int{{1, 2}, {1, 3}, {2, 3}})

	res, err := g.Clone().Tour()
	require.NoError(t, err)
	assert.Empty(t, res.Steps, "walk starts at isolated vertex 0")
	assert.False(t, res.Complete)

	res, err = g.Tour(fleury.WithStrict())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Start)
	assert.Equal(t, "1-2 2-3 3-1", res.String())
	assert.True(t, res.Circuit)
}

func TestTour_OnStepAbort(t *testing.T) {
	g := mustGraph(t, 3, triangle)
	boom := errors.New("boom")

	calls := 0
	res, err := g.Tour(fleury.WithOnStep(func(s fleury.Step) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "1-2")
	require.NotNil(t, res)
	// the rejected step is neither recorded nor consumed
	assert.Equal(t, "0-1", res.String())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 2))
	assert.Equal(t, len(triangle)-g.EdgeCount(), len(res.Steps), "Steps holds exactly the consumed edges")
}

func TestTourOptions_NilHooksPanic(t *testing.T) {
	assert.Panics(t, func() { fleury.WithOnStep(nil) })
	assert.Panics(t, func() { fleury.WithOnDefer(nil) })
}

func TestTour_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := mustGraph(t, 3, triangle)
	res, err := g.Tour(fleury.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Steps)
	assert.Equal(t, 3, g.EdgeCount())

	// cancelled from inside the walk: the step in flight is still consumed
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	g = mustGraph(t, 3, triangle)
	res, err = g.Tour(fleury.WithContext(ctx), fleury.WithOnStep(func(fleury.Step) error {
		cancel()
		return nil
	}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "0-1", res.String())
	assert.Equal(t, 2, g.EdgeCount())

}

func TestIsValidNextEdge(t *testing.T) {
	g := mustGraph(t, 4, lollipop)

	assert.False(t, g.IsValidNextEdge(0, 3), "0-3 is a bridge")
	assert.True(t, g.IsValidNextEdge(0, 1))
	assert.True(t, g.IsValidNextEdge(3, 0), "only edge at 3")

	assert.False(t, g.IsValidNextEdge(1, 3), "no such edge")
	assert.False(t, g.IsValidNextEdge(0, 4))
	assert.False(t, g.IsValidNextEdge(-1, 0))
}

func TestIsValidNextEdge_LeavesLiveEdgesUnchanged(t *testing.T) {
	for _, p := range policies {
		g := mustGraph(t, 4, bowtie, fleury.WithRestorePolicy(p))
		edges := g.Edges()
		counts := make([]int, 4)
		for v := range counts {
			counts[v] = g.DFSCount(v, make([]bool, 4))
		}

		for _, e := range bowtie {
			g.IsValidNextEdge(e[0], e[1])
			g.IsValidNextEdge(e[1], e[0])
		}

		assert.Equal(t, len(bowtie), g.EdgeCount(), p.String())
		assert.ElementsMatch(t, edges, g.Edges(), p.String())
		for v := range counts {
			assert.Equal(t, counts[v], g.DFSCount(v, make([]bool, 4)), p.String())
		}
	}
}

// The probe's restore policy is visible in neighbor order only.
func TestIsValidNextEdge_RestoreOrder(t *testing.T) {
	appendG := mustGraph(t, 3, triangle)
	require.True(t, appendG.IsValidNextEdge(0, 1))
	assert.Equal(t, []int{2, 1}, appendG.Neighbors(0))
	assert.Equal(t, []int{2, 0}, appendG.Neighbors(1))

	inplaceG := mustGraph(t, 3, triangle, fleury.WithRestorePolicy(fleury.RestoreInPlace))
	require.True(t, inplaceG.IsValidNextEdge(0, 1))
	assert.Equal(t, []int{1, 2}, inplaceG.Neighbors(0))
	assert.Equal(t, []int{0, 2}, inplaceG.Neighbors(1))
}

func TestStartVertex(t *testing.T) {
	assert.Equal(t, 0, mustGraph(t, 3, triangle).StartVertex())
	assert.Equal(t, 0, mustGraph(t, 3, path3).StartVertex())
	assert.Equal(t, 1, mustGraph(t, 3, [][2]int{{1, 0}, {0, 2}, {2, 1}, {1, 2}}).StartVertex())
	assert.Equal(t, 0, mustGraph(t, 2, nil).StartVertex())
}

func TestWriteTour(t *testing.T) {
	var buf bytes.Buffer
	res, err := mustGraph(t, 3, triangle).WriteTour(&buf)
	require.NoError(t, err)
	assert.Equal(t, "0-1 1-2 2-0\n", buf.String())
	assert.Len(t, res.Steps, 3)

	buf.Reset()
	_, err = mustGraph(t, 1, nil).WriteTour(&buf)
	require.NoError(t, err)
	assert.Equal(t, "\n", buf.String())

	buf.Reset()
	_, err = mustGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}}).WriteTour(&buf, fleury.WithStrict())
	assert.ErrorIs(t, err, fleury.ErrTooManyOddVertices)
	assert.Empty(t, buf.String())
}
