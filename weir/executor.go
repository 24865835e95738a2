// SPDX-License-Identifier: MIT
//
// File: executor.go
// Role: Commit of a scope's alteration log against its graph.
// Policy:
//   - Alterations apply strictly in enqueue order, each against the state left by the
//     previous one.
//   - The first failure stops the commit; earlier effects are kept (no rollback).
//   - The whole commit runs under the graph's write lock, so no observer sees a partial batch
//     while it is in progress.

package weir

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Commit applies the log and closes the scope.
//
// Implementation:
//   - Alterations run in enqueue order under the graph's write lock, each seeing the
//     state left by the ones before it.
//   - Pending refs resolve through the Result being built: a ref to a later slot or
//     another scope fails with ErrScopeViolation, a ref to a slot that produced
//     nothing fails with ErrUnknownVertex.
//   - The scope is released whatever the outcome.
//
// Errors:
//   - *CommitError wrapping the failing alteration's error, with its log index. The
//     returned Result still describes the alterations applied before it; they are not
//     rolled back.
//   - ErrScopeViolation: the scope is already closed.
//
// Determinism: the same graph and log always produce the same ids and the same state.
// Complexity: O(Σ cost of each alteration).
func (s *Scope[P]) Commit() (*Result, error) {
	if s.closed {
		return nil, errors.Wrapf(ErrScopeViolation, "scope %d is closed", s.id)
	}

	g := s.g
	g.mu.Lock()
	defer g.mu.Unlock()
	defer s.release()

	res := &Result{
		scope: s.id,
		ids:   make([]VertexID, len(s.log)),
		made:  make([]bool, len(s.log)),
	}
	for i, a := range s.log {
		id, made, err := g.apply(a, i, res)
		if err != nil {
			klog.V(1).Infof("weir: scope %d stopped at alteration #%d %s: %v", s.id, i, a, err)
			return res, &CommitError{Index: i, Op: a.op, Alteration: a, Err: err}
		}
		res.Applied++
		if made {
			res.ids[i], res.made[i] = id, true
		}
	}
	klog.V(2).Infof("weir: scope %d committed %d alterations", s.id, res.Applied)

	return res, nil
}

// apply executes one alteration at log position at. It returns the produced vertex, if any.
func (g *Graph[P]) apply(a Alteration[P], at int, res *Result) (VertexID, bool, error) {
	switch a.op {
	case OpAddVertex:
		return g.addVertex(a.pos, a.attrs), true, nil

	case OpAddEdge:
		u, v, err := g.resolvePair(a, at, res)
		if err != nil {
			return 0, false, err
		}
		_, err = g.addEdge(u, v)

		return 0, false, err

	case OpMoveVertex:
		v, err := g.resolve(a.u, at, res)
		if err != nil {
			return 0, false, err
		}

		return 0, false, g.moveVertex(v, a.pos, a.relative)

	case OpDeleteVertex:
		v, err := g.resolve(a.u, at, res)
		if err != nil {
			return 0, false, err
		}

		return 0, false, g.deleteVertex(v)

	case OpDeleteEdge:
		u, v, err := g.resolvePair(a, at, res)
		if err != nil {
			return 0, false, err
		}

		return 0, false, g.deleteEdge(u, v)

	case OpSetVertexAttr:
		v, err := g.resolve(a.u, at, res)
		if err != nil {
			return 0, false, err
		}

		return 0, false, g.setVertexAttr(v, a.key, a.val)

	case OpSetEdgeAttr:
		u, v, err := g.resolvePair(a, at, res)
		if err != nil {
			return 0, false, err
		}

		return 0, false, g.setEdgeAttr(u, v, a.key, a.val)

	case OpAppendEdge:
		return g.appendEdge(a, at, res)

	case OpSplitEdge:
		return g.splitEdge(a, at, res)
	}

	return 0, false, errors.Errorf("weir: unsupported alteration %s", a.op)
}

// appendEdge adds a vertex near (or at) a.pos and joins it to a.u.
// Nothing is inserted unless a.u resolves to a present vertex.
func (g *Graph[P]) appendEdge(a Alteration[P], at int, res *Result) (VertexID, bool, error) {
	from, err := g.resolve(a.u, at, res)
	if err != nil {
		return 0, false, err
	}
	vx, err := g.vertexAt(from)
	if err != nil {
		return 0, false, err
	}
	pos := a.pos
	if a.relative {
		pos = vx.pos.Add(pos)
	}
	id := g.addVertex(pos, nil)
	if _, err = g.addEdge(from, id); err != nil {
		// unreachable: id is fresh and differs from from
		return 0, false, err
	}

	return id, true, nil
}

// splitEdge replaces {u, v} by {u, m} and {m, v}; both halves inherit the edge attributes.
// Nothing changes unless the edge exists.
func (g *Graph[P]) splitEdge(a Alteration[P], at int, res *Result) (VertexID, bool, error) {
	u, v, err := g.resolvePair(a, at, res)
	if err != nil {
		return 0, false, err
	}
	vu, err := g.vertexAt(u)
	if err != nil {
		return 0, false, err
	}
	vv, err := g.vertexAt(v)
	if err != nil {
		return 0, false, err
	}
	rec, err := g.edgeAt(NewEdge(u, v))
	if err != nil {
		return 0, false, err
	}
	attrs := rec.attrs

	m := g.addVertex(vu.pos.Lerp(vv.pos, a.t), nil)
	if err = g.deleteEdge(u, v); err != nil {
		return 0, false, err
	}
	for _, end := range [2]VertexID{u, v} {
		e, err := g.addEdge(end, m)
		if err != nil {
			return 0, false, err
		}
		if attrs != nil {
			half, _ := g.edgeAt(e)
			half.attrs = attrs.Clone()
		}
	}

	return m, true, nil
}

// resolve maps a reference to a concrete id as of log position at.
func (g *Graph[P]) resolve(r Ref, at int, res *Result) (VertexID, error) {
	if !r.Pending() {
		return r.id, nil
	}
	if r.scope != res.scope {
		return 0, errors.Wrapf(ErrScopeViolation, "reference %s belongs to scope %d, not %d", r, r.scope, res.scope)
	}
	slot := r.slot - 1
	if slot >= at {
		return 0, errors.Wrapf(ErrScopeViolation, "reference %s is not produced before alteration #%d", r, at)
	}
	if !res.made[slot] {
		return 0, errors.Wrapf(ErrUnknownVertex, "alteration #%d produces no vertex", slot)
	}

	return res.ids[slot], nil
}

func (g *Graph[P]) resolvePair(a Alteration[P], at int, res *Result) (VertexID, VertexID, error) {
	u, err := g.resolve(a.u, at, res)
	if err != nil {
		return 0, 0, err
	}
	v, err := g.resolve(a.v, at, res)
	if err != nil {
		return 0, 0, err
	}

	return u, v, nil
}
