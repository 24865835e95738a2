// SPDX-License-Identifier: MIT
// Tests for the direct (non-transactional) graph store operations.

package weir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

func TestNewEdge_Canonical(t *testing.T) {
	require.Equal(t, weir.Edge{A: 2, B: 5}, weir.NewEdge(5, 2))
	require.Equal(t, weir.NewEdge(2, 5), weir.NewEdge(5, 2))
	require.Equal(t, "(2,5)", weir.NewEdge(5, 2).String())

	other, ok := weir.NewEdge(2, 5).Other(5)
	require.True(t, ok)
	require.Equal(t, weir.VertexID(2), other)
	_, ok = weir.NewEdge(2, 5).Other(3)
	require.False(t, ok)
}

func TestAddVertex_MonotonicIDs(t *testing.T) {
	g := weir.New[vec.V2]()
	a, err := g.AddVertex(Origin, nil)
	require.NoError(t, err)
	b, err := g.AddVertex(UnitX, nil)
	require.NoError(t, err)
	require.Equal(t, weir.VertexID(0), a)
	require.Equal(t, weir.VertexID(1), b)

	// Deleted ids are never handed out again.
	require.NoError(t, g.DeleteVertex(b))
	c, err := g.AddVertex(UnitY, nil)
	require.NoError(t, err)
	require.Equal(t, weir.VertexID(2), c)
	require.False(t, g.HasVertex(b))
	require.Equal(t, weir.VertexID(3), g.NextID())
	require.Equal(t, 2, g.Dim())
	require.Equal(t, 3, weir.New[vec.V3]().Dim())
}

func TestAddEdge_CanonicalIdentity(t *testing.T) {
	g := NewTriangle(t)

	require.False(t, g.EdgeExists(0, 1))
	require.False(t, g.EdgeExists(1, 0))

	e, err := g.AddEdge(1, 0)
	require.NoError(t, err)
	require.Equal(t, weir.Edge{A: 0, B: 1}, e)
	require.True(t, g.EdgeExists(0, 1))
	require.True(t, g.EdgeExists(1, 0))

	_, err = g.AddEdge(0, 1)
	require.ErrorIs(t, err, weir.ErrDuplicateEdge)
	_, err = g.AddEdge(1, 0)
	require.ErrorIs(t, err, weir.ErrDuplicateEdge)
	require.Equal(t, 1, g.EdgeCount())
	RequireConsistent(t, g)
}

func TestAddEdge_Rejections(t *testing.T) {
	g := NewTriangle(t)

	for _, v := range g.VertexIDs() {
		_, err := g.AddEdge(v, v)
		require.ErrorIs(t, err, weir.ErrInvalidEdge, "self-loop on %d", v)
	}

	_, err := g.AddEdge(0, 42)
	require.ErrorIs(t, err, weir.ErrUnknownVertex)
	_, err = g.AddEdge(42, 0)
	require.ErrorIs(t, err, weir.ErrUnknownVertex)
	require.Zero(t, g.EdgeCount())
}

func TestIncidentEdges(t *testing.T) {
	g := NewTriangle(t)
	_, err := g.IncidentEdges(9)
	require.ErrorIs(t, err, weir.ErrUnknownVertex)

	inc, err := g.IncidentEdges(0)
	require.NoError(t, err)
	require.Empty(t, inc)

	_, err = g.AddEdge(2, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)

	inc, err = g.IncidentEdges(0)
	require.NoError(t, err)
	require.Equal(t, []weir.Edge{{A: 0, B: 1}, {A: 0, B: 2}}, inc)

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []weir.VertexID{1, 2}, nbrs)

	deg, err := g.Degree(1)
	require.NoError(t, err)
	require.Equal(t, 1, deg)
}

func TestMoveVertex(t *testing.T) {
	g := NewTriangle(t)
	delta := vec.XY(0.3, -1.7)

	require.NoError(t, g.MoveVertex(1, delta, true))
	require.NoError(t, g.MoveVertex(1, delta.Neg(), true))
	p, err := g.Position(1)
	require.NoError(t, err)
	require.True(t, vec.Near(UnitX, p, 1e-12), "got %v", p)

	require.NoError(t, g.MoveVertex(1, vec.XY(5, 5), false))
	p, err = g.Position(1)
	require.NoError(t, err)
	require.Equal(t, vec.XY(5, 5), p)

	require.ErrorIs(t, g.MoveVertex(7, delta, true), weir.ErrUnknownVertex)
}

func TestDeleteVertex_Cascades(t *testing.T) {
	// Star: 0 joined to 1..4, plus 1-2.
	g := weir.New[vec.V2]()
	for i := 0; i < 5; i++ {
		_, err := g.AddVertex(vec.XY(float64(i), 0), nil)
		require.NoError(t, err)
	}
	for i := 1; i < 5; i++ {
		_, err := g.AddEdge(0, weir.VertexID(i))
		require.NoError(t, err)
	}
	_, err := g.AddEdge(1, 2)
	require.NoError(t, err)

	require.NoError(t, g.DeleteVertex(0))
	require.False(t, g.HasVertex(0))
	require.Equal(t, []weir.Edge{{A: 1, B: 2}}, g.EdgeList())
	for i := 1; i < 5; i++ {
		inc, err := g.IncidentEdges(weir.VertexID(i))
		require.NoError(t, err)
		for _, e := range inc {
			require.False(t, e.Has(0), "dangling edge %s", e)
		}
	}
	RequireConsistent(t, g)

	require.ErrorIs(t, g.DeleteVertex(0), weir.ErrUnknownVertex)
}

func TestDeleteEdge(t *testing.T) {
	g := NewPath(t, 3)
	require.ErrorIs(t, g.DeleteEdge(0, 2), weir.ErrUnknownEdge)

	require.NoError(t, g.DeleteEdge(1, 0))
	require.False(t, g.EdgeExists(0, 1))
	deg, err := g.Degree(1)
	require.NoError(t, err)
	require.Equal(t, 1, deg)
	require.ErrorIs(t, g.DeleteEdge(0, 1), weir.ErrUnknownEdge)
	RequireConsistent(t, g)
}

func TestEdgeLength(t *testing.T) {
	g := NewTriangle(t)
	_, err := g.AddEdge(1, 2)
	require.NoError(t, err)

	l, err := g.EdgeLength(2, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.4142135623730951, l, 1e-12)

	_, err = g.EdgeLength(0, 1)
	require.ErrorIs(t, err, weir.ErrUnknownEdge)
	_, err = g.EdgeLength(0, 9)
	require.ErrorIs(t, err, weir.ErrUnknownVertex)
}

func TestAttributes(t *testing.T) {
	g := weir.New[vec.V2]()
	in := weir.Attrs{"color": weir.Text("red")}
	v, err := g.AddVertex(Origin, in)
	require.NoError(t, err)
	in["color"] = weir.Text("blue") // the graph keeps its own copy

	got, ok := g.VertexAttr(v, "color")
	require.True(t, ok)
	require.True(t, got.Equal(weir.Text("red")))

	require.NoError(t, g.SetVertexAttr(v, "w", weir.Number(2.5)))
	attrs, err := g.VertexAttrs(v)
	require.NoError(t, err)
	require.Len(t, attrs, 2)

	require.NoError(t, g.SetVertexAttr(v, "w", weir.Value{}))
	_, ok = g.VertexAttr(v, "w")
	require.False(t, ok)

	u, err := g.AddVertex(UnitX, nil)
	require.NoError(t, err)
	_, err = g.AddEdge(v, u)
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeAttr(u, v, "dir", weir.Vector(1, 0)))
	eattrs, err := g.EdgeAttrs(v, u)
	require.NoError(t, err)
	c, ok := eattrs["dir"].Vector()
	require.True(t, ok)
	require.Equal(t, []float64{1, 0}, c)

	require.ErrorIs(t, g.SetEdgeAttr(0, 7, "x", weir.Bool(true)), weir.ErrUnknownEdge)
	require.ErrorIs(t, g.SetVertexAttr(7, "x", weir.Bool(true)), weir.ErrUnknownVertex)
}

func TestAddVertex_DropsEmptyValues(t *testing.T) {
	g := weir.New[vec.V2]()
	v, err := g.AddVertex(Origin, weir.Attrs{"k": weir.Value{}, "c": weir.Text("red")})
	require.NoError(t, err)
	attrs, err := g.VertexAttrs(v)
	require.NoError(t, err)
	require.Equal(t, weir.Attrs{"c": weir.Text("red")}, attrs)

	res, err := g.With(func(s *weir.Scope[vec.V2]) error {
		s.AddVertex(UnitX, weir.Attrs{"k": weir.Value{}})
		return nil
	})
	require.NoError(t, err)
	u, ok := res.Resolve(weir.V(1))
	require.True(t, ok)
	_, ok = g.VertexAttr(u, "k")
	require.False(t, ok, "an empty value never reaches the graph")

	_, verts, _ := g.Records()
	require.Nil(t, verts[1].Attrs)

	h, err := weir.Restore(1, []weir.VertexRecord[vec.V2]{{ID: 0, Pos: Origin, Attrs: weir.Attrs{"k": weir.Value{}}}}, nil)
	require.NoError(t, err)
	_, ok = h.VertexAttr(0, "k")
	require.False(t, ok)
	RequireConsistent(t, h)
}

func TestValue_Kinds(t *testing.T) {
	n, ok := weir.Number(3).Number()
	require.True(t, ok)
	require.Equal(t, 3.0, n)
	_, ok = weir.Number(3).Text()
	require.False(t, ok)

	b, ok := weir.Bool(true).Bool()
	require.True(t, ok)
	require.True(t, b)

	require.Equal(t, weir.KindVector, weir.VectorOf(vec.XYZ(1, 2, 3)).Kind())
	require.Equal(t, "(1, 2, 3)", weir.VectorOf(vec.XYZ(1, 2, 3)).String())
	require.Equal(t, `"hi"`, weir.Text("hi").String())
	require.False(t, weir.Vector(1, 2).Equal(weir.Vector(1, 2, 3)))
	require.Equal(t, "none", weir.Value{}.Kind().String())
}

func TestBounds(t *testing.T) {
	g := weir.New[vec.V2]()
	_, _, ok := g.Bounds()
	require.False(t, ok)

	for _, p := range []vec.V2{vec.XY(-1, 4), vec.XY(3, -2), vec.XY(0, 0)} {
		_, err := g.AddVertex(p, nil)
		require.NoError(t, err)
	}
	lo, hi, ok := g.Bounds()
	require.True(t, ok)
	require.Equal(t, vec.XY(-1, -2), lo)
	require.Equal(t, vec.XY(3, 4), hi)
}

func TestRandomOperations_KeepInvariants(t *testing.T) {
	g := weir.New[vec.V3]()
	r := NewRand()

	for step := 0; step < 2000; step++ {
		switch r.IntN(6) {
		case 0, 1:
			_, err := g.AddVertex(vec.XYZ(r.Float64(), r.Float64(), r.Float64()), nil)
			require.NoError(t, err)
		case 2:
			u, ok1 := g.RandVertex(r)
			v, ok2 := g.RandVertex(r)
			if ok1 && ok2 && u != v && !g.EdgeExists(u, v) {
				_, err := g.AddEdge(u, v)
				require.NoError(t, err)
			}
		case 3:
			if v, ok := g.RandVertex(r); ok && r.IntN(4) == 0 {
				require.NoError(t, g.DeleteVertex(v))
			}
		case 4:
			if e, ok := g.RandEdge(r); ok {
				require.NoError(t, g.DeleteEdge(e.B, e.A))
			}
		case 5:
			if v, ok := g.RandVertex(r); ok {
				require.NoError(t, g.MoveVertex(v, vec.XYZ(0.1, 0, 0), true))
			}
		}
	}
	RequireConsistent(t, g)
}
