// SPDX-License-Identifier: MIT
//
// File: scope.go
// Role: Scope handle, read-only passthrough, commit result and commit error.
// Policy:
//   - One open scope per graph; it owns the right to mutate until it commits or is discarded.
//   - Enqueue is pure data accumulation and never fails on an open scope.
//   - Reads through a scope see the last committed state only.

package weir

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/weir/vec"
)

// Reader is the read-only surface of a Graph. Traversals take a Reader so they run the
// same way on a bare graph and inside a scope.
type Reader[P vec.Vector[P]] interface {
	Dim() int
	HasVertex(v VertexID) bool
	Position(v VertexID) (P, error)
	VertexAttrs(v VertexID) (Attrs, error)
	VertexAttr(v VertexID, key string) (Value, bool)
	Degree(v VertexID) (int, error)
	Neighbors(v VertexID) ([]VertexID, error)
	VertexCount() int
	NextID() VertexID
	Bounds() (lo, hi P, ok bool)

	EdgeExists(u, v VertexID) bool
	IncidentEdges(v VertexID) ([]Edge, error)
	EdgeLength(u, v VertexID) (float64, error)
	EdgeAttrs(u, v VertexID) (Attrs, error)
	EdgeCount() int

	VertexIDs() []VertexID
	EdgeList() []Edge
	Verts() iter.Seq[VertexID]
	Edges() iter.Seq[Edge]
	Incident(v VertexID) (iter.Seq[Edge], error)

	RandVertex(r Rand) (VertexID, bool)
	RandVertexExcept(v VertexID, r Rand) (VertexID, bool)
	RandEdge(r Rand) (Edge, bool)
	RandIncidentEdge(v VertexID, r Rand) (Edge, error)
}

var (
	_ Reader[vec.V2] = (*Graph[vec.V2])(nil)
	_ Reader[vec.V3] = (*Graph[vec.V3])(nil)
)

// Scope accumulates alterations against one graph and applies them on Commit.
//
// The embedded Reader queries the graph's committed state; pending alterations are never
// visible through it.
type Scope[P vec.Vector[P]] struct {
	Reader[P]

	g      *Graph[P]
	id     uint64
	log    []Alteration[P]
	closed bool
}

// Begin opens a scope on g. It fails with ErrScopeViolation while another scope is open,
// which includes the duration of that scope's commit.
func (g *Graph[P]) Begin() (*Scope[P], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.scope != nil {
		return nil, errors.Wrapf(ErrScopeViolation, "scope %d is already open", g.scope.id)
	}
	g.scopeSeq++
	s := &Scope[P]{Reader: g, g: g, id: g.scopeSeq}
	g.scope = s

	return s, nil
}

// With opens a scope, runs fn and commits the log when fn returns nil.
// When fn returns an error or panics the log is discarded and the scope released;
// a panic is re-raised after that.
func (g *Graph[P]) With(fn func(s *Scope[P]) error) (*Result, error) {
	s, err := g.Begin()
	if err != nil {
		return nil, err
	}
	defer s.Discard() // no-op after Commit

	if err = fn(s); err != nil {
		return nil, err
	}

	return s.Commit()
}

// ID returns the serial of the scope within its graph.
func (s *Scope[P]) ID() uint64 { return s.id }

// Len returns the number of queued alterations.
func (s *Scope[P]) Len() int { return len(s.log) }

// Closed reports whether the scope has been committed or discarded.
func (s *Scope[P]) Closed() bool { return s.closed }

// Log returns a copy of the queued alterations in enqueue order.
func (s *Scope[P]) Log() []Alteration[P] {
	return append([]Alteration[P](nil), s.log...)
}

// Enqueue appends a to the log and returns a reference to the vertex it will produce.
// The reference is only meaningful for producing alterations (see Alteration.Producing);
// using any other one fails the commit with ErrUnknownVertex.
//
// Enqueue never mutates the graph. Calling it on a closed scope is a programming error
// and panics with ErrScopeViolation.
// Complexity: O(1) amortized.
func (s *Scope[P]) Enqueue(a Alteration[P]) Ref {
	if s.closed {
		panic(errors.Wrapf(ErrScopeViolation, "enqueue on closed scope %d", s.id))
	}
	s.log = append(s.log, a)

	return Ref{slot: len(s.log), scope: s.id}
}

// AddVertex queues AlterAddVertex.
func (s *Scope[P]) AddVertex(pos P, attrs Attrs) Ref {
	return s.Enqueue(AlterAddVertex(pos, attrs))
}

// AddEdge queues AlterAddEdge.
func (s *Scope[P]) AddEdge(u, v Ref) Ref {
	return s.Enqueue(AlterAddEdge[P](u, v))
}

// MoveVertex queues AlterMoveVertex.
func (s *Scope[P]) MoveVertex(v Ref, p P, relative bool) Ref {
	return s.Enqueue(AlterMoveVertex(v, p, relative))
}

// DeleteVertex queues AlterDeleteVertex.
func (s *Scope[P]) DeleteVertex(v Ref) Ref {
	return s.Enqueue(AlterDeleteVertex[P](v))
}

// DeleteEdge queues AlterDeleteEdge.
func (s *Scope[P]) DeleteEdge(u, v Ref) Ref {
	return s.Enqueue(AlterDeleteEdge[P](u, v))
}

// SetVertexAttr queues AlterSetVertexAttr.
func (s *Scope[P]) SetVertexAttr(v Ref, key string, val Value) Ref {
	return s.Enqueue(AlterSetVertexAttr[P](v, key, val))
}

// SetEdgeAttr queues AlterSetEdgeAttr.
func (s *Scope[P]) SetEdgeAttr(u, v Ref, key string, val Value) Ref {
	return s.Enqueue(AlterSetEdgeAttr[P](u, v, key, val))
}

// AppendEdge queues AlterAppendEdge.
func (s *Scope[P]) AppendEdge(from Ref, pos P, relative bool) Ref {
	return s.Enqueue(AlterAppendEdge(from, pos, relative))
}

// SplitEdge queues AlterSplitEdge.
func (s *Scope[P]) SplitEdge(u, v Ref, t float64) Ref {
	return s.Enqueue(AlterSplitEdge[P](u, v, t))
}

// Discard closes the scope without applying its log. It is a no-op on a closed scope.
func (s *Scope[P]) Discard() {
	if s.closed {
		return
	}
	s.g.mu.Lock()
	s.release()
	s.g.mu.Unlock()
	klog.V(2).Infof("weir: scope %d discarded", s.id)
}

// release detaches the scope from its graph. Caller holds g.mu.
func (s *Scope[P]) release() {
	s.closed = true
	s.log = nil
	if s.g.scope == s {
		s.g.scope = nil
	}
}

// Result describes a commit: how many alterations were applied and which vertices the
// producing ones created.
type Result struct {
	// Applied counts the alterations that took effect, in log order.
	Applied int

	scope uint64
	ids   []VertexID
	made  []bool
}

// Resolve maps a reference to a concrete vertex id. Committed refs resolve to themselves;
// pending refs resolve when their alteration was applied and produced a vertex.
func (r *Result) Resolve(ref Ref) (VertexID, bool) {
	if !ref.Pending() {
		return ref.id, true
	}
	if r == nil || ref.scope != r.scope || ref.slot > len(r.made) || !r.made[ref.slot-1] {
		return 0, false
	}

	return r.ids[ref.slot-1], true
}

// Created returns the ids of all vertices created by the commit, in log order.
func (r *Result) Created() []VertexID {
	var out []VertexID
	for i, ok := range r.made {
		if ok {
			out = append(out, r.ids[i])
		}
	}

	return out
}

// CommitError reports the first alteration of a batch that failed to apply.
// Alterations before Index remain applied.
type CommitError struct {
	// Index is the 0-based position of the failing alteration in the log.
	Index int
	// Op is the kind of the failing alteration.
	Op Op
	// Alteration is the failing Alteration[P] value.
	Alteration fmt.Stringer
	// Err is the underlying error; match its kind with errors.Is.
	Err error
}

// Error implements error.
func (e *CommitError) Error() string {
	return fmt.Sprintf("weir: alteration #%d %s failed: %v", e.Index, e.Alteration, e.Err)
}

// Unwrap exposes the underlying error kind.
func (e *CommitError) Unwrap() error { return e.Err }
