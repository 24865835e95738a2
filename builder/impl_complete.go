// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n laid out on the corners of a regular n-gon.
// Edges are emitted for i < j in ascending (i, j) order.
func Complete[P vec.Vector[P]](n int) Constructor[P] {
	return func(s *weir.Scope[P], cfg builderConfig) error {
		if n < minCompleteNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodComplete, n, minCompleteNodes)
		}
		refs := ring(s, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.AddEdge(refs[i], refs[j])
			}
		}

		return nil
	}
}
