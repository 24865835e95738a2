// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarLeaves = 1
	minWheelRim   = 3
)

// Star returns a Constructor for a hub at the origin joined to n leaves on the unit
// circle. The hub is enqueued first.
func Star[P vec.Vector[P]](n int) Constructor[P] {
	return func(s *weir.Scope[P], cfg builderConfig) error {
		if n < minStarLeaves {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodStar, n, minStarLeaves)
		}
		hub := s.AddVertex(at[P](cfg, 0, 0), cfg.attrs)
		for _, leaf := range ring(s, cfg, n) {
			s.AddEdge(hub, leaf)
		}

		return nil
	}
}

// Wheel returns a Constructor for a Star whose n leaves are also joined into a cycle.
func Wheel[P vec.Vector[P]](n int) Constructor[P] {
	return func(s *weir.Scope[P], cfg builderConfig) error {
		if n < minWheelRim {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodWheel, n, minWheelRim)
		}
		hub := s.AddVertex(at[P](cfg, 0, 0), cfg.attrs)
		rim := ring(s, cfg, n)
		closeRing(s, rim)
		for _, r := range rim {
			s.AddEdge(hub, r)
		}

		return nil
	}
}
