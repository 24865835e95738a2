// SPDX-License-Identifier: MIT
//
// File: alteration.go
// Role: Alteration value objects and vertex references.
// Policy:
//   - Constructing an alteration never touches a graph; only the executor applies it.
//   - Fields are unexported so an alteration cannot change after construction.

package weir

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/weir/vec"
)

// Op names the mutation an Alteration describes.
type Op uint8

// Alteration kinds.
const (
	OpAddVertex Op = iota + 1
	OpAddEdge
	OpMoveVertex
	OpDeleteVertex
	OpDeleteEdge
	OpSetVertexAttr
	OpSetEdgeAttr
	OpAppendEdge
	OpSplitEdge
)

var opNames = map[Op]string{
	OpAddVertex:     "add-vertex",
	OpAddEdge:       "add-edge",
	OpMoveVertex:    "move-vertex",
	OpDeleteVertex:  "delete-vertex",
	OpDeleteEdge:    "delete-edge",
	OpSetVertexAttr: "set-vertex-attr",
	OpSetEdgeAttr:   "set-edge-attr",
	OpAppendEdge:    "append-edge",
	OpSplitEdge:     "split-edge",
}

// String returns the dashed op name, e.g. "add-edge".
func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}

	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Ref is a vertex operand. It is either a committed id (see V) or the vertex that an
// earlier alteration of the same scope will produce (returned by Scope.Enqueue).
// The zero Ref refers to committed vertex 0.
type Ref struct {
	id    VertexID
	slot  int    // 1-based log position of the producing alteration; 0 for a committed id
	scope uint64 // serial of the producing scope
}

// V refers to the committed vertex id.
func V(id VertexID) Ref { return Ref{id: id} }

// Pending reports whether r names the result of a not yet committed alteration.
func (r Ref) Pending() bool { return r.slot > 0 }

// ID returns the committed id; ok is false for a pending reference.
func (r Ref) ID() (VertexID, bool) { return r.id, r.slot == 0 }

// String renders "7" for committed ids and "#3" for the result of log entry 3.
func (r Ref) String() string {
	if r.Pending() {
		return "#" + strconv.Itoa(r.slot-1)
	}

	return r.id.String()
}

// Alteration is an immutable description of one intended graph mutation.
type Alteration[P vec.Vector[P]] struct {
	op       Op
	u, v     Ref
	pos      P
	relative bool
	t        float64
	key      string
	val      Value
	attrs    Attrs
}

// AlterAddVertex describes inserting a vertex at pos. Its result is the new vertex.
func AlterAddVertex[P vec.Vector[P]](pos P, attrs Attrs) Alteration[P] {
	return Alteration[P]{op: OpAddVertex, pos: pos, attrs: attrs.normalize()}
}

// AlterAddEdge describes inserting the edge {u, v}.
func AlterAddEdge[P vec.Vector[P]](u, v Ref) Alteration[P] {
	return Alteration[P]{op: OpAddEdge, u: u, v: v}
}

// AlterMoveVertex describes moving v by p (relative) or to p.
func AlterMoveVertex[P vec.Vector[P]](v Ref, p P, relative bool) Alteration[P] {
	return Alteration[P]{op: OpMoveVertex, u: v, pos: p, relative: relative}
}

// AlterDeleteVertex describes deleting v and its incident edges.
func AlterDeleteVertex[P vec.Vector[P]](v Ref) Alteration[P] {
	return Alteration[P]{op: OpDeleteVertex, u: v}
}

// AlterDeleteEdge describes deleting the edge {u, v}.
func AlterDeleteEdge[P vec.Vector[P]](u, v Ref) Alteration[P] {
	return Alteration[P]{op: OpDeleteEdge, u: u, v: v}
}

// AlterSetVertexAttr describes setting one attribute of v. A KindNone value removes it.
func AlterSetVertexAttr[P vec.Vector[P]](v Ref, key string, val Value) Alteration[P] {
	return Alteration[P]{op: OpSetVertexAttr, u: v, key: key, val: val.clone()}
}

// AlterSetEdgeAttr describes setting one attribute of {u, v}. A KindNone value removes it.
func AlterSetEdgeAttr[P vec.Vector[P]](u, v Ref, key string, val Value) Alteration[P] {
	return Alteration[P]{op: OpSetEdgeAttr, u: u, v: v, key: key, val: val.clone()}
}

// AlterAppendEdge describes adding a vertex at pos (offset from the position of from when
// relative) joined to from by a new edge. Its result is the new vertex.
func AlterAppendEdge[P vec.Vector[P]](from Ref, pos P, relative bool) Alteration[P] {
	return Alteration[P]{op: OpAppendEdge, u: from, pos: pos, relative: relative}
}

// AlterSplitEdge describes replacing {u, v} by {u, m} and {m, v}, where m is a new vertex
// at u.Lerp(v, t). Its result is m.
func AlterSplitEdge[P vec.Vector[P]](u, v Ref, t float64) Alteration[P] {
	return Alteration[P]{op: OpSplitEdge, u: u, v: v, t: t}
}

// Op returns the alteration kind.
func (a Alteration[P]) Op() Op { return a.op }

// Operands returns the vertex operands; unused ones are the zero Ref.
func (a Alteration[P]) Operands() (u, v Ref) { return a.u, a.v }

// Position returns the position or displacement operand and whether it is relative.
func (a Alteration[P]) Position() (P, bool) { return a.pos, a.relative }

// Attr returns the attribute operand of OpSetVertexAttr and OpSetEdgeAttr.
func (a Alteration[P]) Attr() (string, Value) { return a.key, a.val.clone() }

// Producing reports whether the alteration yields a new vertex.
func (a Alteration[P]) Producing() bool {
	return a.op == OpAddVertex || a.op == OpAppendEdge || a.op == OpSplitEdge
}

// String renders the alteration for logs and errors, e.g. "add-edge(#0, 4)".
func (a Alteration[P]) String() string {
	switch a.op {
	case OpAddVertex:
		return fmt.Sprintf("%s(%v)", a.op, a.pos)
	case OpAddEdge, OpDeleteEdge:
		return fmt.Sprintf("%s(%s, %s)", a.op, a.u, a.v)
	case OpMoveVertex, OpAppendEdge:
		mode := "abs"
		if a.relative {
			mode = "rel"
		}

		return fmt.Sprintf("%s(%s, %v, %s)", a.op, a.u, a.pos, mode)
	case OpDeleteVertex:
		return fmt.Sprintf("%s(%s)", a.op, a.u)
	case OpSetVertexAttr:
		return fmt.Sprintf("%s(%s, %q=%s)", a.op, a.u, a.key, a.val)
	case OpSetEdgeAttr:
		return fmt.Sprintf("%s(%s, %s, %q=%s)", a.op, a.u, a.v, a.key, a.val)
	case OpSplitEdge:
		return fmt.Sprintf("%s(%s, %s, %g)", a.op, a.u, a.v, a.t)
	}

	return a.op.String()
}
