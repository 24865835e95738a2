// SPDX-License-Identifier: MIT

package vec

import "math"

// V2 is a 2D vector or point.
type V2 struct {
	X, Y float64
}

// XY is a convenience constructor for V2.
func XY(x, y float64) V2 { return V2{X: x, Y: y} }

// Add returns p+q.
func (p V2) Add(q V2) V2 { return V2{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p V2) Sub(q V2) V2 { return V2{X: p.X - q.X, Y: p.Y - q.Y} }

// Mul returns the elementwise product.
func (p V2) Mul(q V2) V2 { return V2{X: p.X * q.X, Y: p.Y * q.Y} }

// Scale multiplies every component by s.
func (p V2) Scale(s float64) V2 { return V2{X: p.X * s, Y: p.Y * s} }

// Neg returns -p.
func (p V2) Neg() V2 { return V2{X: -p.X, Y: -p.Y} }

// Dot returns the dot product.
func (p V2) Dot(q V2) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the scalar 2D cross product.
func (p V2) Cross(q V2) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the Euclidean length.
func (p V2) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the distance between p and q.
func (p V2) Dist(q V2) float64 { return p.Sub(q).Len() }

// Norm returns the unit vector along p, or the zero vector if p is zero.
func (p V2) Norm() V2 {
	l := p.Len()
	if l == 0 {
		return V2{}
	}

	return V2{X: p.X / l, Y: p.Y / l}
}

// Lerp interpolates linearly: t=0 gives p, t=1 gives q.
func (p V2) Lerp(q V2, t float64) V2 {
	return V2{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Perp returns p rotated a quarter turn counter-clockwise.
func (p V2) Perp() V2 { return V2{X: -p.Y, Y: p.X} }

// Dim returns 2.
func (V2) Dim() int { return 2 }

// Components returns [X, Y].
func (p V2) Components() []float64 { return []float64{p.X, p.Y} }

// AddIn adds q to p in place and returns p for chaining.
// It mutates its receiver.
func (p *V2) AddIn(q V2) *V2 {
	p.X += q.X
	p.Y += q.Y

	return p
}

// ScaleIn scales p in place and returns p for chaining.
// It mutates its receiver.
func (p *V2) ScaleIn(s float64) *V2 {
	p.X *= s
	p.Y *= s

	return p
}
