// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries (direct, non-transactional operations).
//
// Determinism:
//   - VertexIDs() returns ids in ascending order.
//
// Concurrency:
//   - Public methods lock g.mu; the lower-case helpers assume the caller holds the write lock
//     and are shared with the commit executor.
//   - Mutators fail with ErrScopeViolation while a scope is open.

package weir

import (
	"slices"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
)

// AddVertex allocates the next id and inserts a vertex at pos with a copy of attrs.
//
// The only possible error is ErrScopeViolation, when a scope currently owns the graph.
// Complexity: O(log V).
func (g *Graph[P]) AddVertex(pos P, attrs Attrs) (VertexID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkMutable(); err != nil {
		return 0, err
	}

	return g.addVertex(pos, attrs), nil
}

// HasVertex reports whether v is present.
// Complexity: O(log V).
func (g *Graph[P]) HasVertex(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.verts.Get(v)

	return ok
}

// Position returns the position of v, or ErrUnknownVertex.
func (g *Graph[P]) Position(v VertexID) (P, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	vx, err := g.vertexAt(v)
	if err != nil {
		var zero P
		return zero, err
	}

	return vx.pos, nil
}

// VertexAttrs returns a copy of the attributes of v (never nil), or ErrUnknownVertex.
func (g *Graph[P]) VertexAttrs(v VertexID) (Attrs, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	vx, err := g.vertexAt(v)
	if err != nil {
		return nil, err
	}
	out := vx.attrs.Clone()
	if out == nil {
		out = Attrs{}
	}

	return out, nil
}

// VertexAttr returns a single attribute of v. The bool is false when v is absent
// or does not carry key.
func (g *Graph[P]) VertexAttr(v VertexID, key string) (Value, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	vx, err := g.vertexAt(v)
	if err != nil {
		return Value{}, false
	}
	val, ok := vx.attrs[key]

	return val.clone(), ok
}

// SetVertexAttr sets (or with a KindNone value, removes) one attribute of v.
func (g *Graph[P]) SetVertexAttr(v VertexID, key string, val Value) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkMutable(); err != nil {
		return err
	}

	return g.setVertexAttr(v, key, val)
}

// MoveVertex moves v by p when relative is true, or to p otherwise.
// Topology is untouched. Returns ErrUnknownVertex if v is absent.
func (g *Graph[P]) MoveVertex(v VertexID, p P, relative bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkMutable(); err != nil {
		return err
	}

	return g.moveVertex(v, p, relative)
}

// DeleteVertex removes v and every edge incident to it, updating the incidence set
// of the opposite endpoint of each removed edge.
//
// Errors:
//   - ErrUnknownVertex: v is absent.
//   - ErrScopeViolation: a scope owns the graph.
//
// Notes:
//   - This is the only operation that can remove more than one edge per call.
//   - The id of v is retired; the counter never hands it out again.
//
// Complexity: O(deg(v)·log E).
func (g *Graph[P]) DeleteVertex(v VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkMutable(); err != nil {
		return err
	}

	return g.deleteVertex(v)
}

// VertexCount returns the number of vertices.
func (g *Graph[P]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.verts.Size()
}

// NextID returns the id the next added vertex will receive.
func (g *Graph[P]) NextID() VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.next
}

// Degree returns the number of edges incident to v.
func (g *Graph[P]) Degree(v VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	vx, err := g.vertexAt(v)
	if err != nil {
		return 0, err
	}

	return vx.incident.Size(), nil
}

// Neighbors returns the vertices adjacent to v in ascending order.
func (g *Graph[P]) Neighbors(v VertexID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	vx, err := g.vertexAt(v)
	if err != nil {
		return nil, err
	}
	out := make([]VertexID, 0, vx.incident.Size())
	for _, it := range vx.incident.Values() {
		other, _ := it.(Edge).Other(v)
		out = append(out, other)
	}
	slices.Sort(out)

	return out, nil
}

// Bounds returns the componentwise minimum and maximum of all positions.
// ok is false for an empty graph.
func (g *Graph[P]) Bounds() (lo, hi P, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.verts.Empty() {
		return lo, hi, false
	}

	var mins, maxs []float64
	it := g.verts.Iterator()
	for it.Next() {
		c := it.Value().(*vertex[P]).pos.Components()
		if mins == nil {
			mins = append([]float64(nil), c...)
			maxs = append([]float64(nil), c...)
			continue
		}
		for i := range c {
			mins[i] = min(mins[i], c[i])
			maxs[i] = max(maxs[i], c[i])
		}
	}
	lo, _ = vec.FromComponents[P](mins)
	hi, _ = vec.FromComponents[P](maxs)

	return lo, hi, true
}

//–– internal helpers (caller holds g.mu) ––––––––––––––––––––––––––––––––––––

// checkMutable rejects direct mutation while a scope owns the graph.
func (g *Graph[P]) checkMutable() error {
	if g.scope != nil {
		return errors.Wrapf(ErrScopeViolation, "direct mutation while scope %d is open", g.scope.id)
	}

	return nil
}

// vertexAt looks up the record of v.
func (g *Graph[P]) vertexAt(v VertexID) (*vertex[P], error) {
	rec, ok := g.verts.Get(v)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVertex, "vertex %d", v)
	}

	return rec.(*vertex[P]), nil
}

func (g *Graph[P]) addVertex(pos P, attrs Attrs) VertexID {
	id := g.next
	g.next++
	g.verts.Put(id, &vertex[P]{
		pos:      pos,
		attrs:    attrs.normalize(),
		incident: treeset.NewWith(edgeComparator),
	})

	return id
}

func (g *Graph[P]) moveVertex(v VertexID, p P, relative bool) error {
	vx, err := g.vertexAt(v)
	if err != nil {
		return err
	}
	if relative {
		vx.pos = vx.pos.Add(p)
	} else {
		vx.pos = p
	}

	return nil
}

func (g *Graph[P]) deleteVertex(v VertexID) error {
	vx, err := g.vertexAt(v)
	if err != nil {
		return err
	}
	for _, it := range vx.incident.Values() {
		e := it.(Edge)
		other, _ := e.Other(v)
		if ov, ok := g.verts.Get(other); ok {
			ov.(*vertex[P]).incident.Remove(e)
		}
		g.edges.Remove(e)
	}
	g.verts.Remove(v)

	return nil
}

func (g *Graph[P]) setVertexAttr(v VertexID, key string, val Value) error {
	vx, err := g.vertexAt(v)
	if err != nil {
		return err
	}
	vx.attrs = setAttr(vx.attrs, key, val)

	return nil
}

// setAttr stores a copy of val under key, deleting the key for KindNone.
func setAttr(a Attrs, key string, val Value) Attrs {
	if val.kind == KindNone {
		delete(a, key)
		if len(a) == 0 {
			return nil
		}
		return a
	}
	if a == nil {
		a = Attrs{}
	}
	a[key] = val.clone()

	return a
}
