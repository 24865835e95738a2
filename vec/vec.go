// SPDX-License-Identifier: MIT
//
// File: vec.go
// Role: Vector constraint shared by the graph store and the dimension helpers.

package vec

import (
	"math"

	"github.com/pkg/errors"
)

// ErrDimension indicates a component count that does not match the vector type.
var ErrDimension = errors.New("vec: dimension mismatch")

// Vector is the constraint satisfied by V2 and V3.
// A graph is parameterised by one of them, which fixes its dimensionality.
type Vector[T any] interface {
	comparable

	Add(T) T
	Sub(T) T
	Mul(T) T
	Scale(s float64) T
	Neg() T
	Dot(T) float64
	Len() float64
	Dist(T) float64
	Norm() T
	Lerp(q T, t float64) T
	Dim() int
	Components() []float64
}

// FromComponents builds a T from exactly Dim() components.
func FromComponents[T Vector[T]](c []float64) (T, error) {
	var zero T
	if len(c) != zero.Dim() {
		return zero, errors.Wrapf(ErrDimension, "want %d components, got %d", zero.Dim(), len(c))
	}

	var out any
	switch any(zero).(type) {
	case V2:
		out = V2{X: c[0], Y: c[1]}
	case V3:
		out = V3{X: c[0], Y: c[1], Z: c[2]}
	default:
		return zero, errors.Wrapf(ErrDimension, "unsupported vector type %T", zero)
	}

	return out.(T), nil
}

// DimOf reports the dimensionality of T.
func DimOf[T Vector[T]]() int {
	var zero T

	return zero.Dim()
}

// Near reports whether a and b differ by at most eps in every component.
func Near[T Vector[T]](a, b T, eps float64) bool {
	ca, cb := a.Components(), b.Components()
	for i := range ca {
		if math.Abs(ca[i]-cb[i]) > eps {
			return false
		}
	}

	return true
}
