// SPDX-License-Identifier: MIT

package walk

import (
	"cmp"
	"slices"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

// weighted is an edge with its Euclidean length.
type weighted struct {
	e   weir.Edge
	len float64
}

// byLength orders by length, then canonically, so equal lengths break ties the same way
// on every run.
func byLength(a, b weighted) int {
	if c := cmp.Compare(a.len, b.len); c != 0 {
		return c
	}
	if c := cmp.Compare(a.e.A, b.e.A); c != 0 {
		return c
	}

	return cmp.Compare(a.e.B, b.e.B)
}

// MinSpanningForest computes a minimum spanning forest of g weighted by edge length,
// using Kruskal's algorithm with a union-find (path compression, union by rank).
// A disconnected graph yields one tree per component; the total length is returned.
// A nil reader yields an empty forest.
//
// Steps:
//  1. Collect every edge with its EdgeLength.
//  2. Sort by length, ties broken canonically.
//  3. Take each edge whose endpoints lie in different sets and merge the sets.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func MinSpanningForest[P vec.Vector[P]](g weir.Reader[P]) ([]weir.Edge, float64) {
	if g == nil {
		return nil, 0
	}
	edges := make([]weighted, 0, g.EdgeCount())
	for _, e := range g.EdgeList() {
		l, err := g.EdgeLength(e.A, e.B)
		if err != nil {
			continue
		}
		edges = append(edges, weighted{e: e, len: l})
	}
	slices.SortStableFunc(edges, byLength)

	vertices := g.VertexIDs()
	parent := make(map[weir.VertexID]weir.VertexID, len(vertices))
	rank := make(map[weir.VertexID]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	find := func(u weir.VertexID) weir.VertexID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(ru, rv weir.VertexID) {
		if rank[ru] < rank[rv] {
			parent[ru] = rv
			return
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
	}

	var (
		forest []weir.Edge
		total  float64
	)
	for _, w := range edges {
		ru, rv := find(w.e.A), find(w.e.B)
		if ru == rv {
			continue
		}
		union(ru, rv)
		forest = append(forest, w.e)
		total += w.len
		if len(forest) == len(vertices)-1 {
			break
		}
	}

	return forest, total
}

// MinSpanningTree grows a minimum spanning tree of the component containing root with
// Prim's algorithm over a binary heap of candidate edges. Edges are returned in the
// order they join the tree, together with the total length.
// Returns weir.ErrUnknownVertex if root is absent.
// Complexity: O(E log E).
func MinSpanningTree[P vec.Vector[P]](g weir.Reader[P], root weir.VertexID) ([]weir.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrReaderNil
	}
	if _, err := g.IncidentEdges(root); err != nil {
		return nil, 0, err
	}

	pq := binaryheap.NewWith(func(a, b interface{}) int {
		return byLength(a.(weighted), b.(weighted))
	})
	inTree := map[weir.VertexID]bool{root: true}
	push := func(v weir.VertexID) {
		edges, err := g.IncidentEdges(v)
		if err != nil {
			return
		}
		for _, e := range edges {
			other, _ := e.Other(v)
			if inTree[other] {
				continue
			}
			l, err := g.EdgeLength(e.A, e.B)
			if err != nil {
				continue
			}
			pq.Push(weighted{e: e, len: l})
		}
	}
	push(root)

	var (
		tree  []weir.Edge
		total float64
	)
	for !pq.Empty() {
		top, _ := pq.Pop()
		w := top.(weighted)
		next := w.e.A
		if inTree[next] {
			next = w.e.B
		}
		if inTree[next] {
			continue
		}
		inTree[next] = true
		tree = append(tree, w.e)
		total += w.len
		push(next)
	}

	return tree, total, nil
}
