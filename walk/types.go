// SPDX-License-Identifier: MIT

// Package walk provides tunable options and error definitions for the read-only
// traversals over a weir graph.
package walk

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/weir"
)

// Sentinel errors for traversals.
var (
	// ErrReaderNil is returned if a nil graph reader is passed.
	ErrReaderNil = errors.New("walk: graph reader is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")

	// ErrNoPath is returned by ShortestPath when the target is unreachable.
	ErrNoPath = errors.New("walk: no path")
)

// Option configures BFS and DFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the walk runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is visited. Returning an error aborts the walk.
	OnVisit func(v weir.VertexID, depth int) error

	// OnExit is called by DFS once every descendant of v is explored. BFS ignores it.
	OnExit func(v weir.VertexID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// Filter can skip an edge curr→next by returning false.
	Filter func(curr, next weir.VertexID) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(weir.VertexID, int) error { return nil },
		OnExit:   func(weir.VertexID, int) error { return nil },
		MaxDepth: 0,
		Filter:   func(_, _ weir.VertexID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visited vertex.
func WithOnVisit(fn func(v weir.VertexID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExit registers a post-order callback for DFS.
func WithOnExit(fn func(v weir.VertexID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilter skips an edge when fn returns false.
func WithFilter(fn func(curr, next weir.VertexID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: vertices in visit (pre-order) sequence.
//   - Depth: distance in tree edges from the start.
//   - Parent: predecessor in the walk tree (absent for the start).
type Result struct {
	Order  []weir.VertexID
	Depth  map[weir.VertexID]int
	Parent map[weir.VertexID]weir.VertexID
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns weir.ErrUnknownVertex if dest was not reached.
func (r *Result) PathTo(dest weir.VertexID) ([]weir.VertexID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Wrapf(weir.ErrUnknownVertex, "walk: no path to %d", dest)
	}
	path := []weir.VertexID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Tree returns the walk tree edges in visit order of their child endpoint.
func (r *Result) Tree() []weir.Edge {
	out := make([]weir.Edge, 0, len(r.Parent))
	for _, v := range r.Order {
		if p, ok := r.Parent[v]; ok {
			out = append(out, weir.NewEdge(p, v))
		}
	}

	return out
}
