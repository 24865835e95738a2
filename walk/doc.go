// SPDX-License-Identifier: MIT

// Package walk provides read-only traversals over a weir graph.
//
// Every function takes a weir.Reader, so it runs the same way on a bare *weir.Graph
// and on a *weir.Scope, where it sees the last committed state and ignores pending
// alterations. That makes walk the usual driver of a scope: traverse, enqueue, commit.
//
// What
//
//   - BFS: breadth-first order, depths and parent links from a start vertex, with
//     WithContext, WithMaxDepth, WithFilter and WithOnVisit options.
//   - Components: connected components, sorted.
//   - SpanningTree: the BFS tree of one component.
//   - MinSpanningForest: Kruskal over Euclidean edge lengths, one tree per component.
//   - MinSpanningTree: Prim from a root over a binary heap.
//   - DFS: depth-first pre-order with pre- and post-order hooks.
//   - CycleBasis: the fundamental cycles of a depth-first spanning forest.
//   - Distances, ShortestPath: Dijkstra over Euclidean edge lengths.
//   - Segments: maximal chains through degree-2 vertices (the strokes of a drawing).
//
// Determinism
//
//	Neighbors are expanded in ascending id order and equal edge lengths are broken by
//	canonical edge order, so every result is reproducible.
//
// Usage
//
//	_, err := g.With(func(s *weir.Scope[vec.V2]) error {
//		for _, seg := range walk.Segments[vec.V2](s) {
//			if len(seg) > 8 {
//				s.SplitEdge(weir.V(seg[0]), weir.V(seg[1]), 0.5)
//			}
//		}
//		return nil
//	})
package walk
