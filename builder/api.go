// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

// Constructor enqueues one shape on an open scope.
// It validates its parameters before enqueuing anything.
type Constructor[P vec.Vector[P]] func(s *weir.Scope[P], cfg builderConfig) error

// Build runs every constructor inside one scope on g and commits the result.
// The first constructor error discards the whole scope, leaving g unchanged.
// Returns ErrOptionViolation for a bad option, ErrConstructFailed for a nil constructor,
// or a wrapped constructor or commit error.
func Build[P vec.Vector[P]](g *weir.Graph[P], opts []Option, cons ...Constructor[P]) (*weir.Result, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	return g.With(func(s *weir.Scope[P]) error {
		for i, fn := range cons {
			if fn == nil {
				return errors.Wrapf(ErrConstructFailed, "nil constructor at index %d", i)
			}
			if err := fn(s, cfg); err != nil {
				return errors.Wrapf(err, "constructor %d", i)
			}
		}
		return nil
	})
}

// New builds a fresh graph from the given constructors.
func New[P vec.Vector[P]](opts []Option, cons ...Constructor[P]) (*weir.Graph[P], error) {
	g := weir.New[P]()
	if _, err := Build(g, opts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}
