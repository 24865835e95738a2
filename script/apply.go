// SPDX-License-Identifier: MIT

// Package script compiles a small line-oriented alteration language onto a weir scope.
//
//	vert (0, 0) as a
//	vert (1, 0) with "color" = "red" as b
//	edge a b
//	move a (0.5, 0)          # relative unless abs
//	append a (0, 1) as c
//	split a b at 0.25 as m
//	setv a "w" = 2
//	sete a c "dir" = (0, 1)
//	deledge a c
//	delvert 3                # numbers refer to committed vertex ids
//
// Names bind to the vertex a statement produces and can be used by every later
// statement of the same script, before or after commit.
package script

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

var (
	// ErrSyntax is returned by Parse for malformed input.
	ErrSyntax = errors.New("script: syntax error")

	// ErrUndefined is returned for a name that no earlier statement bound.
	ErrUndefined = errors.New("script: undefined name")

	// ErrRedefined is returned when a name is bound twice.
	ErrRedefined = errors.New("script: name already bound")
)

// Bindings maps script names to the references of the vertices they name.
type Bindings map[string]weir.Ref

// Apply enqueues prog on s, in statement order, and returns the names it bound.
// Nothing is applied to the graph until s commits.
//
// Returns ErrUndefined, ErrRedefined or vec.ErrDimension, prefixed with the statement
// position. Statements before the failing one stay enqueued.
func Apply[P vec.Vector[P]](s *weir.Scope[P], prog *Program) (Bindings, error) {
	c := compiler[P]{s: s, names: Bindings{}}
	for _, st := range prog.Stmts {
		if err := c.stmt(st); err != nil {
			return c.names, errors.Wrapf(err, "%s", st.Pos)
		}
	}

	return c.names, nil
}

// Run parses src, applies it in a fresh scope on g and commits.
// The returned map holds the committed id of every name whose statement was applied.
// A commit failure is returned as *weir.CommitError together with the partial result.
func Run[P vec.Vector[P]](g *weir.Graph[P], src string) (map[string]weir.VertexID, *weir.Result, error) {
	prog, err := Parse(src)
	if err != nil {
		return nil, nil, err
	}

	var names Bindings
	res, err := g.With(func(s *weir.Scope[P]) error {
		var err error
		names, err = Apply(s, prog)
		return err
	})
	klog.V(2).Infof("script: %d statements, commit err=%v", len(prog.Stmts), err)

	ids := make(map[string]weir.VertexID, len(names))
	if res != nil {
		for name, ref := range names {
			if id, ok := res.Resolve(ref); ok {
				ids[name] = id
			}
		}
	}

	return ids, res, err
}

type compiler[P vec.Vector[P]] struct {
	s     *weir.Scope[P]
	names Bindings
}

func (c *compiler[P]) stmt(st *Stmt) error {
	switch {
	case st.Vert != nil:
		pos, err := vector[P](st.Vert.Pos)
		if err != nil {
			return err
		}
		attrs := weir.Attrs{}
		for _, a := range st.Vert.Attrs {
			if attrs[a.Key], err = a.Val.value(); err != nil {
				return err
			}
		}
		if len(attrs) == 0 {
			attrs = nil
		}

		return c.bind(st.Vert.As, func() weir.Ref { return c.s.AddVertex(pos, attrs) })

	case st.Edge != nil:
		u, v, err := c.pair(st.Edge)
		if err != nil {
			return err
		}
		c.s.AddEdge(u, v)

	case st.Move != nil:
		v, err := c.ref(st.Move.V)
		if err != nil {
			return err
		}
		p, err := vector[P](st.Move.By)
		if err != nil {
			return err
		}
		c.s.MoveVertex(v, p, !st.Move.Abs)

	case st.Append != nil:
		from, err := c.ref(st.Append.From)
		if err != nil {
			return err
		}
		p, err := vector[P](st.Append.Pos)
		if err != nil {
			return err
		}

		return c.bind(st.Append.As, func() weir.Ref { return c.s.AppendEdge(from, p, !st.Append.Abs) })

	case st.Split != nil:
		u, v, err := c.pair(&Pair{A: st.Split.A, B: st.Split.B})
		if err != nil {
			return err
		}

		return c.bind(st.Split.As, func() weir.Ref { return c.s.SplitEdge(u, v, st.Split.T) })

	case st.SetV != nil:
		v, err := c.ref(st.SetV.V)
		if err != nil {
			return err
		}
		val, err := st.SetV.Attr.Val.value()
		if err != nil {
			return err
		}
		c.s.SetVertexAttr(v, st.SetV.Attr.Key, val)

	case st.SetE != nil:
		u, v, err := c.pair(&Pair{A: st.SetE.A, B: st.SetE.B})
		if err != nil {
			return err
		}
		val, err := st.SetE.Attr.Val.value()
		if err != nil {
			return err
		}
		c.s.SetEdgeAttr(u, v, st.SetE.Attr.Key, val)

	case st.DelEdge != nil:
		u, v, err := c.pair(st.DelEdge)
		if err != nil {
			return err
		}
		c.s.DeleteEdge(u, v)

	case st.DelVert != nil:
		v, err := c.ref(st.DelVert)
		if err != nil {
			return err
		}
		c.s.DeleteVertex(v)
	}

	return nil
}

// bind checks name before enqueueing, so a rejected statement leaves the log unchanged.
func (c *compiler[P]) bind(name string, enqueue func() weir.Ref) error {
	if name == "" {
		enqueue()
		return nil
	}
	if _, dup := c.names[name]; dup {
		return errors.Wrapf(ErrRedefined, "%q", name)
	}
	c.names[name] = enqueue()

	return nil
}

func (c *compiler[P]) ref(o *Operand) (weir.Ref, error) {
	if o.Name != nil {
		r, ok := c.names[*o.Name]
		if !ok {
			return weir.Ref{}, errors.Wrapf(ErrUndefined, "%q", *o.Name)
		}
		return r, nil
	}
	if *o.ID < 0 {
		return weir.Ref{}, errors.Wrapf(weir.ErrUnknownVertex, "negative id %d", *o.ID)
	}

	return weir.V(weir.VertexID(*o.ID)), nil
}

func (c *compiler[P]) pair(p *Pair) (weir.Ref, weir.Ref, error) {
	u, err := c.ref(p.A)
	if err != nil {
		return weir.Ref{}, weir.Ref{}, err
	}
	v, err := c.ref(p.B)
	if err != nil {
		return weir.Ref{}, weir.Ref{}, err
	}

	return u, v, nil
}

func vector[P vec.Vector[P]](v *Vector) (P, error) {
	p, err := vec.FromComponents[P](v.C)
	if err != nil {
		var zero P
		return zero, errors.Wrapf(err, "vector at %s", v.Pos)
	}

	return p, nil
}

func (l *Literal) value() (weir.Value, error) {
	switch {
	case l.Number != nil:
		return weir.Number(*l.Number), nil
	case l.Str != nil:
		return weir.Text(*l.Str), nil
	case l.Bool != nil:
		return weir.Bool(*l.Bool == "true"), nil
	case l.Vec != nil:
		return weir.Vector(l.Vec.C...), nil
	case l.None:
		return weir.Value{}, nil
	}

	return weir.Value{}, errors.Wrap(ErrSyntax, "empty literal")
}
