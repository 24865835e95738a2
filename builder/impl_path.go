// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for n vertices at x = 0..n-1, joined in order.
// Each vertex after the first is appended to its predecessor.
func Path[P vec.Vector[P]](n int) Constructor[P] {
	return func(s *weir.Scope[P], cfg builderConfig) error {
		if n < minPathNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodPath, n, minPathNodes)
		}
		prev := s.AddVertex(at[P](cfg, 0, 0), cfg.attrs)
		for i := 1; i < n; i++ {
			prev = s.AppendEdge(prev, at[P](cfg, float64(i), 0), false)
			for k, v := range cfg.attrs {
				s.SetVertexAttr(prev, k, v)
			}
		}

		return nil
	}
}
