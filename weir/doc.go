// SPDX-License-Identifier: MIT

// Package weir provides the mutable vertex/edge graph used by the generative-art toolkit,
// together with its deferred-alteration protocol.
//
// A Graph[P] stores vertices (monotonic ids that are never reused, a position of type P
// and attributes) and undirected edges in canonical form (smaller id first). An incidence
// index, kept as the exact inverse of the edge table, answers "which edges touch v".
//
// Direct operations:
//
//	AddVertex(pos, attrs) (VertexID, error)   // O(log V)
//	AddEdge(u, v) (Edge, error)               // ErrInvalidEdge, ErrUnknownVertex, ErrDuplicateEdge
//	EdgeExists(u, v) bool                     // order independent
//	IncidentEdges(v) ([]Edge, error)          // ErrUnknownVertex
//	MoveVertex(v, p, relative) error          // ErrUnknownVertex
//	DeleteVertex(v) error                     // cascades incident edges
//	DeleteEdge(u, v) error                    // ErrUnknownEdge
//	EdgeLength(u, v) (float64, error)         // ErrUnknownVertex, ErrUnknownEdge
//
// Scopes:
//
// Walking a graph while changing it is done through a Scope. Alterations are queued while
// the traversal reads the last committed state, then applied in enqueue order on Commit:
//
//	res, err := g.With(func(s *weir.Scope[vec.V2]) error {
//		for v := range s.Verts() {
//			if rnd.Float64() < 0.1 {
//				s.AppendEdge(weir.V(v), vec.XY(0, 1), true)
//			}
//		}
//		return nil
//	})
//
// Commit is fail-fast with partial effect: the first failing alteration stops the batch
// and is reported as a *CommitError; alterations before it stay applied. Later alterations
// can refer to the vertex produced by an earlier one through the Ref returned by Enqueue.
//
// Only one scope may be open per graph, and direct mutations fail with ErrScopeViolation
// while it is. Reads are always allowed.
//
// Errors:
//
//	ErrUnknownVertex   – vertex absent from the committed state
//	ErrUnknownEdge     – edge absent from the committed state
//	ErrInvalidEdge     – self-loop
//	ErrDuplicateEdge   – canonical pair already present
//	ErrScopeViolation  – overlapping scope, mutation under a scope, foreign reference
//	ErrCorrupt         – invariant breach found by Validate or Restore
package weir
