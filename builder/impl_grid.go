// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols lattice. Cell (r, c) sits at (c, r) and is
// joined to its right and lower neighbors. Vertices are enqueued row-major.
func Grid[P vec.Vector[P]](rows, cols int) Constructor[P] {
	return func(s *weir.Scope[P], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d (each must be >= %d)",
				methodGrid, rows, cols, minGridDim)
		}
		cells := make([]weir.Ref, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cells[r*cols+c] = s.AddVertex(at[P](cfg, float64(c), float64(r)), cfg.attrs)
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cells[r*cols+c]
				if c+1 < cols {
					s.AddEdge(u, cells[r*cols+c+1])
				}
				if r+1 < rows {
					s.AddEdge(u, cells[(r+1)*cols+c])
				}
			}
		}

		return nil
	}
}
