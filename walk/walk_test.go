// SPDX-License-Identifier: MIT

package walk_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/walk"
	"github.com/katalvlaran/weir/weir"
)

// build creates a 2D graph with n vertices on the x axis and the given edges.
func build(t *testing.T, n int, edges ...[2]weir.VertexID) *weir.Graph[vec.V2] {
	t.Helper()
	g := weir.New[vec.V2]()
	for i := 0; i < n; i++ {
		_, err := g.AddVertex(vec.XY(float64(i), 0), nil)
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := walk.BFS[vec.V2](nil, 0)
	require.ErrorIs(t, err, walk.ErrReaderNil)

	g := build(t, 1)
	_, err = walk.BFS[vec.V2](g, 5)
	require.ErrorIs(t, err, weir.ErrUnknownVertex)

	_, err = walk.BFS[vec.V2](g, 0, walk.WithMaxDepth(-1))
	require.ErrorIs(t, err, walk.ErrOptionViolation)
}

func TestBFS_OrderAndDepths(t *testing.T) {
	// 0-1, 0-2, 1-3, 2-3, 3-4
	g := build(t, 5, [2]weir.VertexID{0, 1}, [2]weir.VertexID{0, 2}, [2]weir.VertexID{1, 3},
		[2]weir.VertexID{2, 3}, [2]weir.VertexID{3, 4})

	res, err := walk.BFS[vec.V2](g, 0)
	require.NoError(t, err)
	require.Equal(t, []weir.VertexID{0, 1, 2, 3, 4}, res.Order)
	require.Equal(t, map[weir.VertexID]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 3}, res.Depth)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	require.Equal(t, []weir.VertexID{0, 1, 3, 4}, path)
	require.Len(t, res.Tree(), 4)
}

func TestBFS_Options(t *testing.T) {
	g := build(t, 5, [2]weir.VertexID{0, 1}, [2]weir.VertexID{1, 2}, [2]weir.VertexID{2, 3},
		[2]weir.VertexID{3, 4})

	res, err := walk.BFS[vec.V2](g, 0, walk.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []weir.VertexID{0, 1, 2}, res.Order)
	_, err = res.PathTo(4)
	require.ErrorIs(t, err, weir.ErrUnknownVertex)

	res, err = walk.BFS[vec.V2](g, 0, walk.WithFilter(func(_, next weir.VertexID) bool { return next != 3 }))
	require.NoError(t, err)
	require.Equal(t, []weir.VertexID{0, 1, 2}, res.Order)

	stop := errors.New("stop")
	_, err = walk.BFS[vec.V2](g, 0, walk.WithOnVisit(func(v weir.VertexID, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = walk.BFS[vec.V2](g, 0, walk.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := build(t, 6, [2]weir.VertexID{4, 0}, [2]weir.VertexID{1, 3})
	require.Equal(t, [][]weir.VertexID{{0, 4}, {1, 3}, {2}, {5}}, walk.Components[vec.V2](g))
	require.Empty(t, walk.Components[vec.V2](weir.New[vec.V2]()))
}

func TestSpanningTree(t *testing.T) {
	g := build(t, 4, [2]weir.VertexID{0, 1}, [2]weir.VertexID{1, 2}, [2]weir.VertexID{2, 0},
		[2]weir.VertexID{2, 3})
	tree, err := walk.SpanningTree[vec.V2](g, 0)
	require.NoError(t, err)
	require.Equal(t, []weir.Edge{{A: 0, B: 1}, {A: 0, B: 2}, {A: 2, B: 3}}, tree)

	_, err = walk.SpanningTree[vec.V2](g, 9)
	require.ErrorIs(t, err, weir.ErrUnknownVertex)
}

func TestMinSpanning(t *testing.T) {
	// Unit square 0..3 plus a diagonal, and a detached pair 4-5.
	g := weir.New[vec.V2]()
	for _, p := range []vec.V2{vec.XY(0, 0), vec.XY(1, 0), vec.XY(1, 1), vec.XY(0, 1), vec.XY(5, 5), vec.XY(5, 7)} {
		_, err := g.AddVertex(p, nil)
		require.NoError(t, err)
	}
	for _, e := range [][2]weir.VertexID{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {4, 5}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	forest, total := walk.MinSpanningForest[vec.V2](g)
	require.Equal(t, []weir.Edge{{A: 0, B: 1}, {A: 0, B: 3}, {A: 1, B: 2}, {A: 4, B: 5}}, forest)
	require.InDelta(t, 5.0, total, 1e-12)

	tree, l, err := walk.MinSpanningTree[vec.V2](g, 2)
	require.NoError(t, err)
	require.Len(t, tree, 3)
	require.InDelta(t, 3.0, l, 1e-12)
	for _, e := range tree {
		require.NotEqual(t, weir.Edge{A: 0, B: 2}, e, "diagonal is never minimal")
	}

	_, _, err = walk.MinSpanningTree[vec.V2](g, 42)
	require.ErrorIs(t, err, weir.ErrUnknownVertex)
}

func TestSegments(t *testing.T) {
	t.Run("path", func(t *testing.T) {
		g := build(t, 4, [2]weir.VertexID{0, 1}, [2]weir.VertexID{1, 2}, [2]weir.VertexID{2, 3})
		require.Equal(t, [][]weir.VertexID{{0, 1, 2, 3}}, walk.Segments[vec.V2](g))
	})

	t.Run("cycle", func(t *testing.T) {
		g := build(t, 4, [2]weir.VertexID{3, 1}, [2]weir.VertexID{1, 2}, [2]weir.VertexID{2, 3})
		require.Equal(t, [][]weir.VertexID{{1, 2, 3, 1}}, walk.Segments[vec.V2](g))
	})

	t.Run("star", func(t *testing.T) {
		// junction 0 with arms 0-1-2 and 0-3, and a loop 0-4-5-0
		g := build(t, 6, [2]weir.VertexID{0, 1}, [2]weir.VertexID{1, 2}, [2]weir.VertexID{0, 3},
			[2]weir.VertexID{0, 4}, [2]weir.VertexID{4, 5}, [2]weir.VertexID{5, 0})
		require.Equal(t, [][]weir.VertexID{{0, 1, 2}, {0, 3}, {0, 4, 5, 0}}, walk.Segments[vec.V2](g))
	})
}

func TestWalk_InsideScope(t *testing.T) {
	g := build(t, 3, [2]weir.VertexID{0, 1}, [2]weir.VertexID{1, 2})

	_, err := g.With(func(s *weir.Scope[vec.V2]) error {
		for _, seg := range walk.Segments[vec.V2](s) {
			for i := 1; i < len(seg); i++ {
				s.SplitEdge(weir.V(seg[i-1]), weir.V(seg[i]), 0.5)
			}
		}
		// pending splits are not visible to the traversal
		require.Len(t, walk.Components[vec.V2](s), 1)
		require.Equal(t, 3, s.VertexCount())
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, [][]weir.VertexID{{0, 3, 1, 4, 2}}, walk.Segments[vec.V2](g))
}

func TestDFS(t *testing.T) {
	_, err := walk.DFS[vec.V2](nil, 0)
	require.ErrorIs(t, err, walk.ErrReaderNil)

	// 0-1, 0-2, 1-3, 2-3, 3-4
	g := build(t, 5, [2]weir.VertexID{0, 1}, [2]weir.VertexID{0, 2}, [2]weir.VertexID{1, 3},
		[2]weir.VertexID{2, 3}, [2]weir.VertexID{3, 4})
	_, err = walk.DFS[vec.V2](g, 7)
	require.ErrorIs(t, err, weir.ErrUnknownVertex)

	var exits []weir.VertexID
	res, err := walk.DFS[vec.V2](g, 0, walk.WithOnExit(func(v weir.VertexID, _ int) error {
		exits = append(exits, v)
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, []weir.VertexID{0, 1, 3, 2, 4}, res.Order)
	require.Equal(t, []weir.VertexID{2, 4, 3, 1, 0}, exits)
	require.Equal(t, map[weir.VertexID]int{0: 0, 1: 1, 3: 2, 2: 3, 4: 3}, res.Depth)
	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []weir.VertexID{0, 1, 3, 2}, path)

	res, err = walk.DFS[vec.V2](g, 0, walk.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []weir.VertexID{0, 1, 2}, res.Order)

	stop := errors.New("stop")
	res, err = walk.DFS[vec.V2](g, 0, walk.WithOnExit(func(v weir.VertexID, _ int) error {
		if v == 3 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []weir.VertexID{0, 1, 3, 2, 4}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = walk.DFS[vec.V2](g, 0, walk.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCycleBasis(t *testing.T) {
	g := build(t, 5, [2]weir.VertexID{0, 1}, [2]weir.VertexID{0, 2}, [2]weir.VertexID{1, 3},
		[2]weir.VertexID{2, 3}, [2]weir.VertexID{3, 4})
	cycles, err := walk.CycleBasis[vec.V2](g)
	require.NoError(t, err)
	require.Equal(t, [][]weir.VertexID{{0, 1, 3, 2}}, cycles)

	tree := build(t, 4, [2]weir.VertexID{0, 1}, [2]weir.VertexID{1, 2}, [2]weir.VertexID{1, 3})
	cycles, err = walk.CycleBasis[vec.V2](tree)
	require.NoError(t, err)
	require.Empty(t, cycles)

	// two triangles sharing vertex 2: E - V + C = 6 - 5 + 1
	bow := build(t, 5, [2]weir.VertexID{0, 1}, [2]weir.VertexID{1, 2}, [2]weir.VertexID{2, 0},
		[2]weir.VertexID{2, 3}, [2]weir.VertexID{3, 4}, [2]weir.VertexID{4, 2})
	cycles, err = walk.CycleBasis[vec.V2](bow)
	require.NoError(t, err)
	require.Len(t, cycles, 2)
	for _, c := range cycles {
		require.Len(t, c, 3)
		for i := range c {
			require.True(t, bow.EdgeExists(c[i], c[(i+1)%len(c)]), "cycle %v", c)
		}
	}
}

func TestShortestPath(t *testing.T) {
	// unit square 0..3 with diagonal 0-2, and a detached pair 4-5
	g := weir.New[vec.V2]()
	for _, p := range []vec.V2{vec.XY(0, 0), vec.XY(1, 0), vec.XY(1, 1), vec.XY(0, 1), vec.XY(5, 5), vec.XY(5, 7)} {
		_, err := g.AddVertex(p, nil)
		require.NoError(t, err)
	}
	for _, e := range [][2]weir.VertexID{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {4, 5}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	path, l, err := walk.ShortestPath[vec.V2](g, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []weir.VertexID{0, 2}, path)
	require.InDelta(t, 1.41421356, l, 1e-8)

	path, l, err = walk.ShortestPath[vec.V2](g, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []weir.VertexID{1, 0, 3}, path, "ties resolve toward the smaller id")
	require.InDelta(t, 2.0, l, 1e-12)

	path, l, err = walk.ShortestPath[vec.V2](g, 4, 4)
	require.NoError(t, err)
	require.Equal(t, []weir.VertexID{4}, path)
	require.Zero(t, l)

	_, _, err = walk.ShortestPath[vec.V2](g, 0, 5)
	require.ErrorIs(t, err, walk.ErrNoPath)
	_, _, err = walk.ShortestPath[vec.V2](g, 0, 9)
	require.ErrorIs(t, err, weir.ErrUnknownVertex)
	_, _, err = walk.ShortestPath[vec.V2](g, 9, 0)
	require.ErrorIs(t, err, weir.ErrUnknownVertex)

	dist, _, err := walk.Distances[vec.V2](g, 4)
	require.NoError(t, err)
	require.Equal(t, map[weir.VertexID]float64{4: 0, 5: 2}, dist)
}

func TestNilReader(t *testing.T) {
	_, err := walk.CycleBasis[vec.V2](nil)
	require.ErrorIs(t, err, walk.ErrReaderNil)
	_, err = walk.SpanningTree[vec.V2](nil, 0)
	require.ErrorIs(t, err, walk.ErrReaderNil)
	_, _, err = walk.ShortestPath[vec.V2](nil, 0, 1)
	require.ErrorIs(t, err, walk.ErrReaderNil)

	require.Empty(t, walk.Components[vec.V2](nil))
	require.Empty(t, walk.Segments[vec.V2](nil))
	forest, total := walk.MinSpanningForest[vec.V2](nil)
	require.Empty(t, forest)
	require.Zero(t, total)
}
