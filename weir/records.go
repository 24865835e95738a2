// SPDX-License-Identifier: MIT
//
// File: records.go
// Role: Flat record form of a graph (export/restore), deep Clone and invariant checking.
// Determinism:
//   - Records are emitted in ascending id / canonical order.

package weir

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
)

// VertexRecord is the flat form of one vertex.
type VertexRecord[P vec.Vector[P]] struct {
	ID    VertexID
	Pos   P
	Attrs Attrs
}

// EdgeRecord is the flat form of one edge.
type EdgeRecord struct {
	Edge  Edge
	Attrs Attrs
}

// Records exports the committed state: the id counter, the vertices and the edges.
// Attribute maps are deep copies.
// Complexity: O(V + E).
func (g *Graph[P]) Records() (next VertexID, verts []VertexRecord[P], edges []EdgeRecord) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	verts = make([]VertexRecord[P], 0, g.verts.Size())
	vit := g.verts.Iterator()
	for vit.Next() {
		vx := vit.Value().(*vertex[P])
		verts = append(verts, VertexRecord[P]{ID: vit.Key().(VertexID), Pos: vx.pos, Attrs: vx.attrs.Clone()})
	}
	edges = make([]EdgeRecord, 0, g.edges.Size())
	eit := g.edges.Iterator()
	for eit.Next() {
		rec := eit.Value().(*edgeRecord)
		edges = append(edges, EdgeRecord{Edge: eit.Key().(Edge), Attrs: rec.attrs.Clone()})
	}

	return g.next, verts, edges
}

// Restore rebuilds a graph from records, keeping ids and the id counter.
//
// Every structural invariant is checked; a breach is reported as ErrCorrupt:
// a negative id counter, negative or duplicate ids, ids not below next, non-canonical
// or self-loop edges, duplicate edges, and edges referencing absent vertices.
// KindNone attribute values are dropped, as SetVertexAttr would.
// Complexity: O((V + E)·log(V + E)).
func Restore[P vec.Vector[P]](next VertexID, verts []VertexRecord[P], edges []EdgeRecord) (*Graph[P], error) {
	if next < 0 {
		return nil, errors.Wrapf(ErrCorrupt, "negative id counter %d", next)
	}
	g := New[P]()
	for _, r := range verts {
		if r.ID < 0 || r.ID >= next {
			return nil, errors.Wrapf(ErrCorrupt, "vertex id %d outside [0, %d)", r.ID, next)
		}
		if _, dup := g.verts.Get(r.ID); dup {
			return nil, errors.Wrapf(ErrCorrupt, "duplicate vertex id %d", r.ID)
		}
		g.verts.Put(r.ID, &vertex[P]{pos: r.Pos, attrs: r.Attrs.normalize(), incident: treeset.NewWith(edgeComparator)})
	}
	g.next = next

	for _, r := range edges {
		e := r.Edge
		if e.A >= e.B {
			return nil, errors.Wrapf(ErrCorrupt, "edge %s is not canonical", e)
		}
		if _, dup := g.edges.Get(e); dup {
			return nil, errors.Wrapf(ErrCorrupt, "duplicate edge %s", e)
		}
		va, okA := g.verts.Get(e.A)
		vb, okB := g.verts.Get(e.B)
		if !okA || !okB {
			return nil, errors.Wrapf(ErrCorrupt, "edge %s references an absent vertex", e)
		}
		g.edges.Put(e, &edgeRecord{attrs: r.Attrs.normalize()})
		va.(*vertex[P]).incident.Add(e)
		vb.(*vertex[P]).incident.Add(e)
	}

	return g, nil
}

// Clone returns a deep copy of the committed state. The copy has no open scope.
func (g *Graph[P]) Clone() *Graph[P] {
	next, verts, edges := g.Records()
	out, err := Restore(next, verts, edges)
	if err != nil {
		// Records of a consistent graph always restore.
		panic(err)
	}

	return out
}

// Validate checks the structural invariants and reports the first breach as ErrCorrupt:
//
//  1. every edge is canonical (A < B), hence no self-loops;
//  2. both endpoints of every edge are present;
//  3. both endpoints list the edge in their incidence set;
//  4. every incidence entry is a present edge touching its vertex;
//  5. the id counter is not negative and every vertex id is below it.
//
// Uniqueness of ids and edges is structural (ordered maps keyed by identity).
// Complexity: O((V + E)·log E).
func (g *Graph[P]) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.next < 0 {
		return errors.Wrapf(ErrCorrupt, "negative id counter %d", g.next)
	}
	eit := g.edges.Iterator()
	for eit.Next() {
		e := eit.Key().(Edge)
		if e.A >= e.B {
			return errors.Wrapf(ErrCorrupt, "edge %s is not canonical", e)
		}
		for _, end := range [2]VertexID{e.A, e.B} {
			vx, ok := g.verts.Get(end)
			if !ok {
				return errors.Wrapf(ErrCorrupt, "edge %s references absent vertex %d", e, end)
			}
			if !vx.(*vertex[P]).incident.Contains(e) {
				return errors.Wrapf(ErrCorrupt, "vertex %d does not list edge %s", end, e)
			}
		}
	}

	vit := g.verts.Iterator()
	for vit.Next() {
		id := vit.Key().(VertexID)
		if id < 0 || id >= g.next {
			return errors.Wrapf(ErrCorrupt, "vertex id %d outside [0, %d)", id, g.next)
		}
		for _, it := range vit.Value().(*vertex[P]).incident.Values() {
			e := it.(Edge)
			if !e.Has(id) {
				return errors.Wrapf(ErrCorrupt, "vertex %d lists foreign edge %s", id, e)
			}
			if _, ok := g.edges.Get(e); !ok {
				return errors.Wrapf(ErrCorrupt, "vertex %d lists absent edge %s", id, e)
			}
		}
	}

	return nil
}
