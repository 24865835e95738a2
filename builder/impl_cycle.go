// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for a regular n-gon of unit circumradius around the
// origin. Vertex i sits at angle 2πi/n and edges run i → (i+1) mod n.
func Cycle[P vec.Vector[P]](n int) Constructor[P] {
	return func(s *weir.Scope[P], cfg builderConfig) error {
		if n < minCycleNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodCycle, n, minCycleNodes)
		}
		closeRing(s, ring(s, cfg, n))

		return nil
	}
}

// ring enqueues n vertices evenly spaced on the unit circle.
func ring[P vec.Vector[P]](s *weir.Scope[P], cfg builderConfig, n int) []weir.Ref {
	refs := make([]weir.Ref, n)
	for i := range refs {
		a := 2 * math.Pi * float64(i) / float64(n)
		refs[i] = s.AddVertex(at[P](cfg, math.Cos(a), math.Sin(a)), cfg.attrs)
	}

	return refs
}

// closeRing joins consecutive refs, the last one back to the first.
func closeRing[P vec.Vector[P]](s *weir.Scope[P], refs []weir.Ref) {
	for i := range refs {
		s.AddEdge(refs[i], refs[(i+1)%len(refs)])
	}
}
