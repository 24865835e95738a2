// SPDX-License-Identifier: MIT

package walk

import (
	"cmp"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

// nodeItem is a heap entry: a vertex and its tentative distance.
type nodeItem struct {
	id   weir.VertexID
	dist float64
}

// Distances runs Dijkstra's algorithm from source, weighting every edge by its
// Euclidean length. It returns the distance to each reachable vertex and the
// predecessor of each reachable vertex except source.
//
// The heap is lazy: stale entries are skipped when popped instead of decreased in place.
// Returns ErrReaderNil or weir.ErrUnknownVertex for an absent source.
// Complexity: O((V + E) log E).
func Distances[P vec.Vector[P]](g weir.Reader[P], source weir.VertexID) (map[weir.VertexID]float64, map[weir.VertexID]weir.VertexID, error) {
	if g == nil {
		return nil, nil, ErrReaderNil
	}
	if !g.HasVertex(source) {
		return nil, nil, errors.Wrapf(weir.ErrUnknownVertex, "walk: source vertex %d", source)
	}

	dist := map[weir.VertexID]float64{source: 0}
	prev := make(map[weir.VertexID]weir.VertexID)
	done := make(map[weir.VertexID]bool)
	pq := binaryheap.NewWith(func(a, b interface{}) int {
		x, y := a.(nodeItem), b.(nodeItem)
		if c := cmp.Compare(x.dist, y.dist); c != 0 {
			return c
		}
		return cmp.Compare(x.id, y.id)
	})
	pq.Push(nodeItem{id: source})

	for !pq.Empty() {
		top, _ := pq.Pop()
		cur := top.(nodeItem)
		if done[cur.id] {
			continue
		}
		done[cur.id] = true

		nbrs, err := g.Neighbors(cur.id)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "walk: neighbors of %d", cur.id)
		}
		for _, nbr := range nbrs {
			if done[nbr] {
				continue
			}
			l, err := g.EdgeLength(cur.id, nbr)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "walk: edge %d-%d", cur.id, nbr)
			}
			nd := cur.dist + l
			if old, ok := dist[nbr]; ok && old <= nd {
				continue
			}
			dist[nbr] = nd
			prev[nbr] = cur.id
			pq.Push(nodeItem{id: nbr, dist: nd})
		}
	}

	return dist, prev, nil
}

// ShortestPath returns the shortest path from source to target by Euclidean edge length,
// as a vertex sequence starting at source, together with its length.
// Returns ErrNoPath if target is present but unreachable.
func ShortestPath[P vec.Vector[P]](g weir.Reader[P], source, target weir.VertexID) ([]weir.VertexID, float64, error) {
	dist, prev, err := Distances(g, source)
	if err != nil {
		return nil, 0, err
	}
	if !g.HasVertex(target) {
		return nil, 0, errors.Wrapf(weir.ErrUnknownVertex, "walk: target vertex %d", target)
	}
	total, ok := dist[target]
	if !ok {
		return nil, 0, errors.Wrapf(ErrNoPath, "%d to %d", source, target)
	}

	path := []weir.VertexID{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, total, nil
}
