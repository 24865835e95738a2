// SPDX-License-Identifier: MIT

package walk

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    weir.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker[P vec.Vector[P]] struct {
	g       weir.Reader[P]
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[weir.VertexID]bool
	res     *Result
}

// BFS walks g breadth-first from start. Neighbors are expanded in ascending id order,
// so the visit sequence is reproducible.
//
// Returns ErrReaderNil, weir.ErrUnknownVertex for an absent start, ErrOptionViolation
// for bad options, the context error on cancellation, or a wrapped OnVisit error.
// Complexity: O(V + E·log E).
func BFS[P vec.Vector[P]](g weir.Reader[P], start weir.VertexID, opts ...Option) (*Result, error) {
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

	n := g.VertexCount()
	w := &walker[P]{
		g:       g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[weir.VertexID]bool, n),
		res: &Result{
			Order:  make([]weir.VertexID, 0, n),
			Depth:  make(map[weir.VertexID]int, n),
			Parent: make(map[weir.VertexID]weir.VertexID, n),
		},
	}
	w.enqueue(start, 0, start)

	return w.res, w.loop()
}

func (w *walker[P]) enqueue(v weir.VertexID, d int, parent weir.VertexID) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if parent != v {
		w.res.Parent[v] = parent
	}
	w.queue = append(w.queue, queueItem{id: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[P]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return errors.Wrapf(err, "walk: OnVisit at %d", item.id)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen, unfiltered neighbor within the depth limit.
func (w *walker[P]) expand(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.g.Neighbors(item.id)
	if err != nil {
		// the vertex vanished between visits (direct mutation on an unscoped graph)
		return errors.Wrapf(err, "walk: neighbors of %d", item.id)
	}
	for _, nbr := range nbrs {
		if w.visited[nbr] || !w.opts.Filter(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id)
	}

	return nil
}
