// SPDX-License-Identifier: MIT
//
// File: iter.go
// Role: Point-in-time traversal of vertices, edges and incidence sets, and the
//       "arbitrary element" helpers used inside traversals.
// Determinism:
//   - Every sequence is ascending (vertex id, canonical pair) and is fixed when the
//     method is called; alterations enqueued while ranging never show up in it.
//   - Random helpers draw only from committed state through an explicit Rand.

package weir

import (
	"iter"

	"github.com/pkg/errors"
)

// Rand is the seedable source used by the Rand* helpers.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// VertexIDs returns all vertex ids in ascending order.
// Complexity: O(V).
func (g *Graph[P]) VertexIDs() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertexIDs()
}

// EdgeList returns all edges in ascending canonical order.
// Complexity: O(E).
func (g *Graph[P]) EdgeList() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeList()
}

// Verts returns a sequence over the vertex ids present at the time of the call.
// Ranging over the result twice yields the same snapshot; call Verts again for a fresh one.
func (g *Graph[P]) Verts() iter.Seq[VertexID] {
	return seqOf(g.VertexIDs())
}

// Edges returns a sequence over the edges present at the time of the call.
func (g *Graph[P]) Edges() iter.Seq[Edge] {
	return seqOf(g.EdgeList())
}

// Incident returns a sequence over the edges touching v at the time of the call,
// or ErrUnknownVertex.
func (g *Graph[P]) Incident(v VertexID) (iter.Seq[Edge], error) {
	edges, err := g.IncidentEdges(v)
	if err != nil {
		return nil, err
	}

	return seqOf(edges), nil
}

// RandVertex picks a vertex uniformly. ok is false for an empty graph.
func (g *Graph[P]) RandVertex(r Rand) (VertexID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.verts.Empty() {
		return 0, false
	}
	ids := g.verts.Keys()

	return ids[r.IntN(len(ids))].(VertexID), true
}

// RandVertexExcept picks a vertex other than v uniformly. ok is false when no such vertex exists.
func (g *Graph[P]) RandVertexExcept(v VertexID, r Rand) (VertexID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := g.vertexIDs()
	for i, id := range ids {
		if id == v {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		return 0, false
	}

	return ids[r.IntN(len(ids))], true
}

// RandEdge picks an edge uniformly. ok is false for a graph without edges.
func (g *Graph[P]) RandEdge(r Rand) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.edges.Empty() {
		return Edge{}, false
	}
	keys := g.edges.Keys()

	return keys[r.IntN(len(keys))].(Edge), true
}

// RandIncidentEdge picks one of the edges touching v uniformly.
// Returns ErrUnknownVertex if v is absent and ErrUnknownEdge if v is isolated.
func (g *Graph[P]) RandIncidentEdge(v VertexID, r Rand) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	vx, err := g.vertexAt(v)
	if err != nil {
		return Edge{}, err
	}
	if vx.incident.Empty() {
		return Edge{}, errors.Wrapf(ErrUnknownEdge, "vertex %d has no incident edges", v)
	}
	vals := vx.incident.Values()

	return vals[r.IntN(len(vals))].(Edge), nil
}

func (g *Graph[P]) vertexIDs() []VertexID {
	keys := g.verts.Keys()
	out := make([]VertexID, len(keys))
	for i, k := range keys {
		out[i] = k.(VertexID)
	}

	return out
}

func (g *Graph[P]) edgeList() []Edge {
	keys := g.edges.Keys()
	out := make([]Edge, len(keys))
	for i, k := range keys {
		out[i] = k.(Edge)
	}

	return out
}

// seqOf yields the elements of a private slice in order.
func seqOf[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	}
}
