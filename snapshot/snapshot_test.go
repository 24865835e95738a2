// SPDX-License-Identifier: MIT

package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weir/snapshot"
	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

// sample builds a small 3D graph with a gap in its ids and every attribute kind.
func sample(t *testing.T) *weir.Graph[vec.V3] {
	t.Helper()
	g := weir.New[vec.V3]()
	for i := 0; i < 4; i++ {
		_, err := g.AddVertex(vec.XYZ(float64(i), 0.5, -1), nil)
		require.NoError(t, err)
	}
	for _, e := range [][2]weir.VertexID{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.DeleteVertex(2))
	require.NoError(t, g.SetVertexAttr(0, "name", weir.Text("true")))
	require.NoError(t, g.SetVertexAttr(0, "w", weir.Number(2)))
	require.NoError(t, g.SetVertexAttr(1, "pinned", weir.Bool(true)))
	require.NoError(t, g.SetEdgeAttr(0, 1, "dir", weir.Vector(1, 0, 0)))
	require.NoError(t, g.SetEdgeAttr(0, 3, "len", weir.Number(1.25)))

	return g
}

func TestRoundTrip(t *testing.T) {
	g := sample(t)

	data, err := snapshot.MarshalGraph(g)
	require.NoError(t, err)

	dim, err := snapshot.PeekDim(data)
	require.NoError(t, err)
	require.Equal(t, 3, dim)

	h, err := snapshot.Unmarshal[vec.V3](data)
	require.NoError(t, err)
	require.NoError(t, h.Validate())
	require.Equal(t, g.VertexIDs(), h.VertexIDs())
	require.Equal(t, g.EdgeList(), h.EdgeList())
	require.Equal(t, g.NextID(), h.NextID())

	for _, v := range g.VertexIDs() {
		pg, _ := g.Position(v)
		ph, _ := h.Position(v)
		require.Equal(t, pg, ph)

		ag, _ := g.VertexAttrs(v)
		ah, _ := h.VertexAttrs(v)
		require.Len(t, ah, len(ag))
		for k, val := range ag {
			require.True(t, val.Equal(ah[k]), "vertex %d attr %q: %s vs %s", v, k, val, ah[k])
		}
	}
	for _, e := range g.EdgeList() {
		ag, _ := g.EdgeAttrs(e.A, e.B)
		ah, _ := h.EdgeAttrs(e.A, e.B)
		for k, val := range ag {
			require.True(t, val.Equal(ah[k]), "edge %s attr %q", e, k)
		}
	}

	again, err := snapshot.MarshalGraph(h)
	require.NoError(t, err)
	require.Equal(t, string(data), string(again), "output is deterministic")
}

func TestRoundTrip_EmptyValueDropped(t *testing.T) {
	g := weir.New[vec.V2]()
	_, err := g.With(func(s *weir.Scope[vec.V2]) error {
		s.AddVertex(vec.XY(0, 0), weir.Attrs{"k": weir.Value{}, "n": weir.Number(1)})
		return nil
	})
	require.NoError(t, err)

	data, err := snapshot.MarshalGraph(g)
	require.NoError(t, err)
	require.NotContains(t, string(data), "k:")

	h, err := snapshot.Unmarshal[vec.V2](data)
	require.NoError(t, err)
	attrs, err := h.VertexAttrs(0)
	require.NoError(t, err)
	require.Equal(t, weir.Attrs{"n": weir.Number(1)}, attrs)
}

func TestDecode_Layout(t *testing.T) {
	src := `
format: weir/v1
dim: 2
next: 5
vertices:
  - {id: 0, pos: [0, 0]}
  - {id: 4, pos: [1, 2], attrs: {tag: hi, v: [1, 2], on: false}}
edges:
  - {a: 0, b: 4, attrs: {w: 0.5}}
`
	g, err := snapshot.Unmarshal[vec.V2]([]byte(src))
	require.NoError(t, err)
	require.Equal(t, []weir.VertexID{0, 4}, g.VertexIDs())
	require.Equal(t, weir.VertexID(5), g.NextID())

	tag, ok := g.VertexAttr(4, "tag")
	require.True(t, ok)
	require.True(t, tag.Equal(weir.Text("hi")))
	v, _ := g.VertexAttr(4, "v")
	require.True(t, v.Equal(weir.Vector(1, 2)))
	on, _ := g.VertexAttr(4, "on")
	require.True(t, on.Equal(weir.Bool(false)))

	l, err := g.EdgeLength(0, 4)
	require.NoError(t, err)
	require.InDelta(t, 2.23606797749979, l, 1e-12)
}

func TestRestore_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"wrong dim", "format: weir/v1\ndim: 3\nnext: 0\n", vec.ErrDimension},
		{"short position", "format: weir/v1\ndim: 2\nnext: 1\nvertices: [{id: 0, pos: [1]}]\n", vec.ErrDimension},
		{"unknown format", "format: other\ndim: 2\n", weir.ErrCorrupt},
		{"bad yaml", "dim: [", weir.ErrCorrupt},
		{"self-loop", "format: weir/v1\ndim: 2\nnext: 1\nvertices: [{id: 0, pos: [0, 0]}]\nedges: [{a: 0, b: 0}]\n", weir.ErrCorrupt},
		{"dangling", "format: weir/v1\ndim: 2\nnext: 1\nvertices: [{id: 0, pos: [0, 0]}]\nedges: [{a: 0, b: 3}]\n", weir.ErrCorrupt},
		{"negative counter", "format: weir/v1\ndim: 2\nnext: -3\n", weir.ErrCorrupt},
		{"id past counter", "format: weir/v1\ndim: 2\nnext: 0\nvertices: [{id: 0, pos: [0, 0]}]\n", weir.ErrCorrupt},
		{"nested attr", "format: weir/v1\ndim: 2\nnext: 1\nvertices: [{id: 0, pos: [0, 0], attrs: {m: {x: 1}}}]\n", weir.ErrCorrupt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := snapshot.Unmarshal[vec.V2]([]byte(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPeekDim(t *testing.T) {
	d, err := snapshot.PeekDim([]byte("dim: 2\nvertices: []\n"))
	require.NoError(t, err)
	require.Equal(t, 2, d)

	_, err = snapshot.PeekDim([]byte("dim: 4\n"))
	require.ErrorIs(t, err, vec.ErrDimension)
	_, err = snapshot.PeekDim([]byte(":"))
	require.Error(t, err)
}

func TestExport_Empty(t *testing.T) {
	doc := snapshot.Export(weir.New[vec.V2]())
	require.Equal(t, snapshot.Format, doc.Format)
	require.Equal(t, 2, doc.Dim)
	require.Empty(t, doc.Vertices)

	data, err := snapshot.Marshal(doc)
	require.NoError(t, err)
	g, err := snapshot.Unmarshal[vec.V2](data)
	require.NoError(t, err)
	require.Zero(t, g.VertexCount())
}
