// SPDX-License-Identifier: MIT
// Package weir_test contains fixtures and assertion helpers shared by the weir tests.

package weir_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

// Common positions used across weir tests.
var (
	Origin = vec.XY(0, 0)
	UnitX  = vec.XY(1, 0)
	UnitY  = vec.XY(0, 1)
)

// Seed fixes every random source in the tests.
const Seed = 20261019

// NewRand returns a deterministic source for the Rand* helpers.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(Seed, Seed))
}

// NewTriangle builds the fixture graph: vertices 0,1,2 at (0,0), (1,0), (0,1), no edges.
func NewTriangle(t *testing.T) *weir.Graph[vec.V2] {
	t.Helper()
	g := weir.New[vec.V2]()
	for _, p := range []vec.V2{Origin, UnitX, UnitY} {
		_, err := g.AddVertex(p, nil)
		require.NoError(t, err)
	}

	return g
}

// NewPath builds a path 0-1-...-(n-1) along the x axis.
func NewPath(t *testing.T, n int) *weir.Graph[vec.V2] {
	t.Helper()
	g := weir.New[vec.V2]()
	for i := 0; i < n; i++ {
		_, err := g.AddVertex(vec.XY(float64(i), 0), nil)
		require.NoError(t, err)
	}
	for i := 1; i < n; i++ {
		_, err := g.AddEdge(weir.VertexID(i-1), weir.VertexID(i))
		require.NoError(t, err)
	}

	return g
}

// RequireConsistent fails the test if any structural invariant is broken, and also checks
// the incidence sets through the public surface.
func RequireConsistent[P vec.Vector[P]](t *testing.T, g *weir.Graph[P]) {
	t.Helper()
	require.NoError(t, g.Validate())

	degreeSum := 0
	for _, v := range g.VertexIDs() {
		inc, err := g.IncidentEdges(v)
		require.NoError(t, err)
		for _, e := range inc {
			require.True(t, e.Has(v), "vertex %d lists %s", v, e)
			require.True(t, g.EdgeExists(e.A, e.B), "vertex %d lists absent %s", v, e)
		}
		degreeSum += len(inc)
	}
	require.Equal(t, 2*g.EdgeCount(), degreeSum, "handshake lemma")
}
