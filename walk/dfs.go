// SPDX-License-Identifier: MIT

package walk

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[P vec.Vector[P]] struct {
	g    weir.Reader[P]
	opts Options
	res  *Result
}

// DFS walks g depth-first from start, neighbors in ascending id order.
// OnVisit runs in pre-order and OnExit in post-order; Result.Order is the pre-order.
//
// Returns ErrReaderNil, weir.ErrUnknownVertex for an absent start, ErrOptionViolation
// for bad options, the context error on cancellation, or a wrapped hook error. On error
// the partial Result is returned alongside it.
// Complexity: O(V + E·log E), recursion depth O(V).
func DFS[P vec.Vector[P]](g weir.Reader[P], start weir.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrReaderNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, errors.Wrapf(weir.ErrUnknownVertex, "walk: start vertex %d", start)
	}

	w := newDFSWalker(g, o)

	return w.res, w.traverse(start, 0)
}

func newDFSWalker[P vec.Vector[P]](g weir.Reader[P], o Options) *dfsWalker[P] {
	n := g.VertexCount()

	return &dfsWalker[P]{
		g:    g,
		opts: o,
		res: &Result{
			Order:  make([]weir.VertexID, 0, n),
			Depth:  make(map[weir.VertexID]int, n),
			Parent: make(map[weir.VertexID]weir.VertexID, n),
		},
	}
}

// traverse visits id at depth and recurses into its unvisited neighbors.
func (w *dfsWalker[P]) traverse(id weir.VertexID, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, depth); err != nil {
		return errors.Wrapf(err, "walk: OnVisit at %d", id)
	}

	if w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth {
		nbrs, err := w.g.Neighbors(id)
		if err != nil {
			return errors.Wrapf(err, "walk: neighbors of %d", id)
		}
		for _, nbr := range nbrs {
			if _, seen := w.res.Depth[nbr]; seen || !w.opts.Filter(id, nbr) {
				continue
			}
			w.res.Parent[nbr] = id
			if err := w.traverse(nbr, depth+1); err != nil {
				return err
			}
		}
	}

	if err := w.opts.OnExit(id, depth); err != nil {
		return errors.Wrapf(err, "walk: OnExit at %d", id)
	}

	return nil
}

// CycleBasis returns one fundamental cycle per edge outside a depth-first spanning
// forest of g. Each cycle lists its vertices in order; the closing edge runs from the
// last vertex back to the first. The basis has E - V + C cycles for C components, so an
// empty result means g is a forest.
//
// Returns ErrReaderNil, or a wrapped neighbor lookup error if g changes during the walk.
func CycleBasis[P vec.Vector[P]](g weir.Reader[P]) ([][]weir.VertexID, error) {
	if g == nil {
		return nil, ErrReaderNil
	}
	w := newDFSWalker(g, DefaultOptions())
	for _, v := range g.VertexIDs() {
		if _, seen := w.res.Depth[v]; seen {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return nil, err
		}
	}

	var cycles [][]weir.VertexID
	for _, e := range g.EdgeList() {
		if p, ok := w.res.Parent[e.B]; ok && p == e.A {
			continue
		}
		if p, ok := w.res.Parent[e.A]; ok && p == e.B {
			continue
		}
		cycles = append(cycles, w.res.treePath(e.A, e.B))
	}

	return cycles, nil
}

// treePath joins u and v through their lowest common ancestor in the walk tree.
func (r *Result) treePath(u, v weir.VertexID) []weir.VertexID {
	var up, down []weir.VertexID
	for r.Depth[u] > r.Depth[v] {
		up = append(up, u)
		u = r.Parent[u]
	}
	for r.Depth[v] > r.Depth[u] {
		down = append(down, v)
		v = r.Parent[v]
	}
	for u != v {
		up = append(up, u)
		down = append(down, v)
		u, v = r.Parent[u], r.Parent[v]
	}
	up = append(up, u)
	for i := len(down) - 1; i >= 0; i-- {
		up = append(up, down[i])
	}

	return up
}
