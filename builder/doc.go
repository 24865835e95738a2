// SPDX-License-Identifier: MIT

// Package builder generates classic graph shapes with geometric layouts.
//
// A Constructor enqueues its vertices and edges on an open scope; Build runs any
// number of constructors inside one scope and commits them together, so a failing
// constructor leaves the graph untouched.
//
// Shapes
//
//   - Path(n): n vertices spaced along the x axis.
//   - Cycle(n): a regular n-gon.
//   - Star(n): a hub with n leaves on a circle.
//   - Wheel(n): an n-gon rim joined to a central hub.
//   - Complete(n): every pair of an n-gon's corners joined.
//   - Grid(rows, cols): a lattice, row r at y = r and column c at x = c.
//
// Layout
//
//	Unit lengths are multiplied by WithScale and offset by WithOrigin. In 3D every
//	shape lies in the z = 0 plane. WithAttr tags every generated vertex.
//
// Errors
//
//   - ErrTooFewVertices   a size parameter is below the shape's minimum.
//   - ErrOptionViolation  an option got an unusable value.
//   - ErrConstructFailed  a nil constructor was passed.
//   - ErrBadSpec          Parse could not read a shape spec.
package builder
