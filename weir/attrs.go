// SPDX-License-Identifier: MIT
//
// File: attrs.go
// Role: Attribute values attached to vertices and edges.

package weir

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/weir/vec"
)

// Kind tags the payload of a Value.
type Kind uint8

// Value kinds.
const (
	KindNone Kind = iota
	KindNumber
	KindVector
	KindBool
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindVector:
		return "vector"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	}

	return "none"
}

// Value is a small tagged union: a number, a vector, a bool or a text.
// The zero Value has KindNone.
type Value struct {
	kind Kind
	num  float64
	vec  []float64
	b    bool
	s    string
}

// Number wraps a float.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Vector wraps vector components. The slice is copied.
func Vector(c ...float64) Value {
	return Value{kind: KindVector, vec: append([]float64(nil), c...)}
}

// VectorOf wraps a vec.V2 or vec.V3.
func VectorOf[T vec.Vector[T]](v T) Value { return Value{kind: KindVector, vec: v.Components()} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Kind reports the payload kind.
func (v Value) Kind() Kind { return v.kind }

// Number returns the number payload.
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Vector returns a copy of the vector payload.
func (v Value) Vector() ([]float64, bool) {
	if v.kind != KindVector {
		return nil, false
	}

	return append([]float64(nil), v.vec...), true
}

// Bool returns the bool payload.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Text returns the text payload.
func (v Value) Text() (string, bool) { return v.s, v.kind == KindText }

// Equal reports whether both values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindText:
		return v.s == o.s
	case KindVector:
		if len(v.vec) != len(o.vec) {
			return false
		}
		for i := range v.vec {
			if v.vec[i] != o.vec[i] {
				return false
			}
		}
	}

	return true
}

// String renders the payload.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindText:
		return strconv.Quote(v.s)
	case KindVector:
		parts := make([]string, len(v.vec))
		for i, c := range v.vec {
			parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
		}

		return "(" + strings.Join(parts, ", ") + ")"
	}

	return "<none>"
}

// clone detaches the vector payload from any shared backing array.
func (v Value) clone() Value {
	if v.kind == KindVector {
		v.vec = append([]float64(nil), v.vec...)
	}

	return v
}

// Attrs maps attribute names to values.
type Attrs map[string]Value

// Clone returns a deep copy. A nil receiver yields nil.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v.clone()
	}

	return out
}

// normalize returns a deep copy without KindNone entries, or nil when nothing is left.
func (a Attrs) normalize() Attrs {
	var out Attrs
	for k, v := range a {
		if v.kind == KindNone {
			continue
		}
		if out == nil {
			out = make(Attrs, len(a))
		}
		out[k] = v.clone()
	}

	return out
}
