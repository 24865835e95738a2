// SPDX-License-Identifier: MIT

// Package vec is the small vector kernel the graph store is built on.
//
// V2 and V3 are plain value types: every operation returns a new value and
// leaves its operands untouched. The only exceptions are the *In methods
// (AddIn, ScaleIn), which mutate their receiver and return it for chaining;
// use them in hot loops where allocation matters.
//
// The Vector constraint lets generic code (weir.Graph[P], snapshot.Restore[P])
// work over either dimensionality while the dimension stays fixed per instance:
//
//	g := weir.New[vec.V2]()
//	id, _ := g.AddVertex(vec.XY(0, 1), nil)
package vec
