// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: VertexID, Edge, Graph and the sentinel error kinds, plus the New constructor.
// Concurrency:
//   - mu guards every table; reads take RLock, direct mutations and commits take Lock.
//   - scope is the single open scope (nil when none); it owns the right to mutate.

package weir

import (
	"strconv"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
)

// Sentinel error kinds. Operations wrap them with context; match with errors.Is.
var (
	// ErrUnknownVertex indicates an operation referenced a vertex absent from the committed state.
	ErrUnknownVertex = errors.New("weir: unknown vertex")

	// ErrUnknownEdge indicates an operation referenced an edge absent from the committed state.
	ErrUnknownEdge = errors.New("weir: unknown edge")

	// ErrInvalidEdge indicates an attempted self-loop.
	ErrInvalidEdge = errors.New("weir: invalid edge")

	// ErrDuplicateEdge indicates the canonical pair is already present.
	ErrDuplicateEdge = errors.New("weir: duplicate edge")

	// ErrScopeViolation indicates overlapping or re-entrant scopes, a direct mutation while a
	// scope is open, or a pending reference used outside the scope that produced it.
	ErrScopeViolation = errors.New("weir: scope violation")

	// ErrCorrupt indicates that a graph or a set of records breaks a structural invariant.
	ErrCorrupt = errors.New("weir: invariant violated")
)

// VertexID identifies a vertex. Ids are assigned from 0 upwards and never reused.
type VertexID int

// String renders the id as a decimal.
func (v VertexID) String() string { return strconv.Itoa(int(v)) }

// Edge is an unordered vertex pair in canonical form (A < B).
// The value itself is the identity of the edge.
type Edge struct {
	A, B VertexID
}

// NewEdge canonicalizes (u, v) so that the smaller id comes first.
func NewEdge(u, v VertexID) Edge {
	if v < u {
		u, v = v, u
	}

	return Edge{A: u, B: v}
}

// Has reports whether v is an endpoint of e.
func (e Edge) Has(v VertexID) bool { return e.A == v || e.B == v }

// Other returns the endpoint opposite to v, and false if v is not an endpoint.
func (e Edge) Other(v VertexID) (VertexID, bool) {
	switch v {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	}

	return 0, false
}

// String renders the edge as "(a,b)".
func (e Edge) String() string {
	return "(" + e.A.String() + "," + e.B.String() + ")"
}

// edgeLess orders edges lexicographically by (A, B).
func edgeLess(x, y Edge) bool {
	if x.A != y.A {
		return x.A < y.A
	}

	return x.B < y.B
}

// edgeComparator is the gods comparator for canonical edges.
func edgeComparator(a, b interface{}) int {
	x, y := a.(Edge), b.(Edge)
	switch {
	case edgeLess(x, y):
		return -1
	case edgeLess(y, x):
		return 1
	}

	return 0
}

// vertexComparator is the gods comparator for vertex ids.
func vertexComparator(a, b interface{}) int {
	x, y := a.(VertexID), b.(VertexID)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}

// vertex is the stored record of one vertex.
// incident holds the canonical edges touching it, in ascending order.
type vertex[P vec.Vector[P]] struct {
	pos      P
	attrs    Attrs
	incident *treeset.Set
}

// edgeRecord is the stored record of one edge.
type edgeRecord struct {
	attrs Attrs
}

// Graph is a vertex/edge store with positions of type P and a deferred-alteration protocol.
//
// The vertex table and edge table are ordered (ascending id, ascending canonical pair),
// so every enumeration is deterministic. The incidence index is derived data and is
// maintained as the exact inverse of the edge table.
type Graph[P vec.Vector[P]] struct {
	mu sync.RWMutex

	verts *treemap.Map // VertexID → *vertex[P]
	edges *treemap.Map // Edge → *edgeRecord
	next  VertexID     // next id to allocate

	scope    *Scope[P] // open scope, nil if none
	scopeSeq uint64    // last issued scope serial
}

// New creates an empty graph. The dimensionality is fixed by P.
// Complexity: O(1).
func New[P vec.Vector[P]]() *Graph[P] {
	return &Graph[P]{
		verts: treemap.NewWith(vertexComparator),
		edges: treemap.NewWith(edgeComparator),
	}
}

// Dim reports the dimensionality of stored positions (2 or 3).
func (g *Graph[P]) Dim() int {
	return vec.DimOf[P]()
}
