// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/DeleteEdge/EdgeExists/IncidentEdges/EdgeLength,
//       edge attributes, EdgeCount.
// Determinism:
//   - IncidentEdges() and EdgeList() return canonical edges in ascending (A, B) order.
// Concurrency:
//   - Same model as methods_vertices.go: public methods lock, helpers assume the write lock.

package weir

import (
	"github.com/pkg/errors"
)

// AddEdge inserts the canonical edge between u and v and updates both incidence sets.
//
// Errors:
//   - ErrInvalidEdge: u == v.
//   - ErrUnknownVertex: u or v is absent.
//   - ErrDuplicateEdge: the canonical pair is already present.
//   - ErrScopeViolation: a scope owns the graph.
//
// Steps:
//  1. Take the write lock; refuse while a scope is open.
//  2. Canonicalize (u, v) with NewEdge and reject self-loops.
//  3. Look up both endpoints and reject a pair already in the edge table.
//  4. Store the edge record (no attributes) and add the edge to both incidence sets.
//
// Callers that want idempotent insertion should test EdgeExists first.
// Complexity: O(log V + log E).
// Concurrency:
//   - Runs under the write lock; inside a scope use Scope.AddEdge instead.
func (g *Graph[P]) AddEdge(u, v VertexID) (Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkMutable(); err != nil {
		return Edge{}, err
	}

	return g.addEdge(u, v)
}

// EdgeExists reports whether the edge {u, v} is present. Argument order does not matter.
func (g *Graph[P]) EdgeExists(u, v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges.Get(NewEdge(u, v))

	return ok
}

// IncidentEdges returns the edges touching v, or ErrUnknownVertex.
func (g *Graph[P]) IncidentEdges(v VertexID) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	vx, err := g.vertexAt(v)
	if err != nil {
		return nil, err
	}

	return vx.snapshot(), nil
}

// DeleteEdge removes the edge {u, v} and updates both incidence sets.
// Returns ErrUnknownEdge if the canonical pair is absent.
func (g *Graph[P]) DeleteEdge(u, v VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkMutable(); err != nil {
		return err
	}

	return g.deleteEdge(u, v)
}

// EdgeLength returns the Euclidean distance between the endpoints of {u, v}.
//
// Errors:
//   - ErrUnknownVertex: u or v is absent.
//   - ErrUnknownEdge: both exist but are not joined.
func (g *Graph[P]) EdgeLength(u, v VertexID) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	vu, err := g.vertexAt(u)
	if err != nil {
		return 0, err
	}
	vv, err := g.vertexAt(v)
	if err != nil {
		return 0, err
	}
	if _, err = g.edgeAt(NewEdge(u, v)); err != nil {
		return 0, err
	}

	return vu.pos.Dist(vv.pos), nil
}

// EdgeAttrs returns a copy of the attributes of {u, v} (never nil), or ErrUnknownEdge.
func (g *Graph[P]) EdgeAttrs(u, v VertexID) (Attrs, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec, err := g.edgeAt(NewEdge(u, v))
	if err != nil {
		return nil, err
	}
	out := rec.attrs.Clone()
	if out == nil {
		out = Attrs{}
	}

	return out, nil
}

// SetEdgeAttr sets (or with a KindNone value, removes) one attribute of {u, v}.
func (g *Graph[P]) SetEdgeAttr(u, v VertexID, key string, val Value) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkMutable(); err != nil {
		return err
	}

	return g.setEdgeAttr(u, v, key, val)
}

// EdgeCount returns the number of edges.
func (g *Graph[P]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.Size()
}

//–– internal helpers (caller holds g.mu) ––––––––––––––––––––––––––––––––––––

func (g *Graph[P]) edgeAt(e Edge) (*edgeRecord, error) {
	rec, ok := g.edges.Get(e)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEdge, "edge %s", e)
	}

	return rec.(*edgeRecord), nil
}

func (g *Graph[P]) addEdge(u, v VertexID) (Edge, error) {
	if u == v {
		return Edge{}, errors.Wrapf(ErrInvalidEdge, "self-loop on vertex %d", u)
	}
	vu, err := g.vertexAt(u)
	if err != nil {
		return Edge{}, err
	}
	vv, err := g.vertexAt(v)
	if err != nil {
		return Edge{}, err
	}
	e := NewEdge(u, v)
	if _, ok := g.edges.Get(e); ok {
		return Edge{}, errors.Wrapf(ErrDuplicateEdge, "edge %s", e)
	}
	g.edges.Put(e, &edgeRecord{})
	vu.incident.Add(e)
	vv.incident.Add(e)

	return e, nil
}

func (g *Graph[P]) deleteEdge(u, v VertexID) error {
	e := NewEdge(u, v)
	if _, err := g.edgeAt(e); err != nil {
		return err
	}
	g.edges.Remove(e)
	// Both endpoints exist: invariant 4 holds on entry.
	for _, id := range [2]VertexID{e.A, e.B} {
		if vx, ok := g.verts.Get(id); ok {
			vx.(*vertex[P]).incident.Remove(e)
		}
	}

	return nil
}

func (g *Graph[P]) setEdgeAttr(u, v VertexID, key string, val Value) error {
	rec, err := g.edgeAt(NewEdge(u, v))
	if err != nil {
		return err
	}
	rec.attrs = setAttr(rec.attrs, key, val)

	return nil
}

// snapshot copies the incidence set into a fresh ascending slice.
func (vx *vertex[P]) snapshot() []Edge {
	vals := vx.incident.Values()
	out := make([]Edge, len(vals))
	for i, it := range vals {
		out[i] = it.(Edge)
	}

	return out
}
