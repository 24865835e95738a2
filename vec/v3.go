// SPDX-License-Identifier: MIT

package vec

import "math"

// V3 is a 3D vector or point.
type V3 struct {
	X, Y, Z float64
}

// XYZ is a convenience constructor for V3.
func XYZ(x, y, z float64) V3 { return V3{X: x, Y: y, Z: z} }

// Add returns p+q.
func (p V3) Add(q V3) V3 { return V3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z} }

// Sub returns p-q.
func (p V3) Sub(q V3) V3 { return V3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z} }

// Mul returns the elementwise product.
func (p V3) Mul(q V3) V3 { return V3{X: p.X * q.X, Y: p.Y * q.Y, Z: p.Z * q.Z} }

// Scale multiplies every component by s.
func (p V3) Scale(s float64) V3 { return V3{X: p.X * s, Y: p.Y * s, Z: p.Z * s} }

// Neg returns -p.
func (p V3) Neg() V3 { return V3{X: -p.X, Y: -p.Y, Z: -p.Z} }

// Dot returns the dot product.
func (p V3) Dot(q V3) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// Cross returns the 3D cross product p×q.
func (p V3) Cross(q V3) V3 {
	return V3{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Len returns the Euclidean length.
func (p V3) Len() float64 { return math.Sqrt(p.Dot(p)) }

// Dist returns the distance between p and q.
func (p V3) Dist(q V3) float64 { return p.Sub(q).Len() }

// Norm returns the unit vector along p, or the zero vector if p is zero.
func (p V3) Norm() V3 {
	l := p.Len()
	if l == 0 {
		return V3{}
	}

	return V3{X: p.X / l, Y: p.Y / l, Z: p.Z / l}
}

// Lerp interpolates linearly: t=0 gives p, t=1 gives q.
func (p V3) Lerp(q V3, t float64) V3 {
	return V3{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t, Z: p.Z + (q.Z-p.Z)*t}
}

// XY drops the Z component.
func (p V3) XY() V2 { return V2{X: p.X, Y: p.Y} }

// Dim returns 3.
func (V3) Dim() int { return 3 }

// Components returns [X, Y, Z].
func (p V3) Components() []float64 { return []float64{p.X, p.Y, p.Z} }

// AddIn adds q to p in place and returns p for chaining.
// It mutates its receiver.
func (p *V3) AddIn(q V3) *V3 {
	p.X += q.X
	p.Y += q.Y
	p.Z += q.Z

	return p
}

// ScaleIn scales p in place and returns p for chaining.
// It mutates its receiver.
func (p *V3) ScaleIn(s float64) *V3 {
	p.X *= s
	p.Y *= s
	p.Z *= s

	return p
}
