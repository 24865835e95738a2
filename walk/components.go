// SPDX-License-Identifier: MIT

package walk

import (
	"slices"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

// Components returns the connected components of g, each sorted ascending and
// ordered by their smallest vertex id. Isolated vertices form singleton components.
// A nil reader has no components.
// Complexity: O(V + E·log E).
func Components[P vec.Vector[P]](g weir.Reader[P]) [][]weir.VertexID {
	var out [][]weir.VertexID
	if g == nil {
		return out
	}
	seen := make(map[weir.VertexID]bool, g.VertexCount())
	for _, v := range g.VertexIDs() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			// v was deleted concurrently; it belongs to no component
			continue
		}
		comp := slices.Clone(res.Order)
		slices.Sort(comp)
		for _, u := range comp {
			seen[u] = true
		}
		out = append(out, comp)
	}

	return out
}

// SpanningTree returns the BFS tree of the component containing root.
// Returns weir.ErrUnknownVertex if root is absent.
func SpanningTree[P vec.Vector[P]](g weir.Reader[P], root weir.VertexID) ([]weir.Edge, error) {
	res, err := BFS(g, root)
	if err != nil {
		return nil, err
	}

	return res.Tree(), nil
}

// Segments splits g into maximal chains: paths whose interior vertices have degree 2
// and whose ends have any other degree. A component that is a simple cycle is reported
// once as a closed chain starting and ending at its smallest id.
// Isolated vertices belong to no segment, and a nil reader has none.
//
// Chains are ordered by their first vertex, then by the first edge taken from it.
// Complexity: O(V + E·log E).
func Segments[P vec.Vector[P]](g weir.Reader[P]) [][]weir.VertexID {
	if g == nil {
		return nil
	}
	inc := incidence(g)
	used := make(map[weir.Edge]bool, g.EdgeCount())

	follow := func(start weir.VertexID, first weir.Edge) []weir.VertexID {
		chain := []weir.VertexID{start}
		cur, e := start, first
		for {
			used[e] = true
			cur, _ = e.Other(cur)
			chain = append(chain, cur)
			if len(inc[cur]) != 2 {
				return chain
			}
			nextEdge := inc[cur][0]
			if nextEdge == e {
				nextEdge = inc[cur][1]
			}
			if used[nextEdge] {
				return chain
			}
			e = nextEdge
		}
	}

	var out [][]weir.VertexID
	ids := g.VertexIDs()
	// open chains start at junctions and leaves
	for _, v := range ids {
		if len(inc[v]) == 2 {
			continue
		}
		for _, e := range inc[v] {
			if !used[e] {
				out = append(out, follow(v, e))
			}
		}
	}
	// whatever is left are pure cycles; ascending ids make v the smallest of its loop
	for _, v := range ids {
		if len(inc[v]) == 2 && !used[inc[v][0]] {
			out = append(out, follow(v, inc[v][0]))
		}
	}

	return out
}

// incidence snapshots the incidence lists of every vertex present in g.
func incidence[P vec.Vector[P]](g weir.Reader[P]) map[weir.VertexID][]weir.Edge {
	out := make(map[weir.VertexID][]weir.Edge, g.VertexCount())
	for _, v := range g.VertexIDs() {
		edges, err := g.IncidentEdges(v)
		if err != nil {
			continue
		}
		out[v] = edges
	}

	return out
}
