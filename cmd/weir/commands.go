// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/builder"
	"github.com/katalvlaran/weir/config"
	"github.com/katalvlaran/weir/script"
	"github.com/katalvlaran/weir/snapshot"
	"github.com/katalvlaran/weir/store"
	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/walk"
	"github.com/katalvlaran/weir/weir"
)

// errUsage marks a malformed command line.
var errUsage = errors.New("bad usage")

type app struct {
	cfg *config.Config
	st  *store.Store
	out io.Writer
	in  io.Reader
}

func (a *app) exec(args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "new":
		return a.newGraph(rest)
	case "apply":
		if len(rest) != 2 {
			return errors.Wrap(errUsage, "apply <name> <file|->")
		}
		return a.apply(rest[0], rest[1])
	case "show":
		if len(rest) != 1 {
			return errors.Wrap(errUsage, "show <name>")
		}
		return a.show(rest[0])
	case "import":
		if len(rest) != 2 {
			return errors.Wrap(errUsage, "import <name> <file|->")
		}
		return a.importGraph(rest[0], rest[1])
	case "list":
		return a.list()
	case "rm":
		if len(rest) != 1 {
			return errors.Wrap(errUsage, "rm <name>")
		}
		return a.st.Delete(rest[0])
	case "stats":
		if len(rest) != 1 {
			return errors.Wrap(errUsage, "stats <name>")
		}
		return a.stats(rest[0])
	case "path":
		if len(rest) != 3 {
			return errors.Wrap(errUsage, "path <name> <from> <to>")
		}
		return a.path(rest[0], rest[1], rest[2])
	}

	return errors.Wrapf(errUsage, "unknown command %q", cmd)
}

func (a *app) newGraph(args []string) error {
	const usage = "new <name> [-dim 2|3] [-shape kind:args] [-scale S]"
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dim := fs.Int("dim", a.cfg.Graph.Dim, "dimensionality: 2 or 3")
	shape := fs.String("shape", "", "initial shape, e.g. cycle:6 or grid:3x4")
	scale := fs.Float64("scale", 1, "shape unit length")
	// the name comes first: new <name> [flags]
	if len(args) == 0 {
		return errors.Wrap(errUsage, usage)
	}
	name := args[0]
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
		return errors.Wrap(errUsage, usage)
	}
	if _, err := a.st.Info(name); err == nil {
		return errors.Errorf("graph %q already exists", name)
	}

	opts := []builder.Option{builder.WithScale(*scale)}
	var (
		rev fmt.Stringer
		err error
	)
	switch *dim {
	case 2:
		rev, err = createGraph[vec.V2](a.st, name, *shape, opts)
	case 3:
		rev, err = createGraph[vec.V3](a.st, name, *shape, opts)
	default:
		return errors.Wrapf(vec.ErrDimension, "dim %d", *dim)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created %s (%dD) revision %s\n", name, *dim, rev)

	return nil
}

// createGraph stores a new graph, empty or holding the given shape.
func createGraph[P vec.Vector[P]](st *store.Store, name, shape string, opts []builder.Option) (fmt.Stringer, error) {
	g := weir.New[P]()
	if shape != "" {
		con, err := builder.Parse[P](shape)
		if err != nil {
			return nil, err
		}
		if _, err := builder.Build(g, opts, con); err != nil {
			return nil, err
		}
	}

	return store.Save(st, name, g)
}

func (a *app) apply(name, file string) error {
	src, err := a.read(file)
	if err != nil {
		return err
	}
	info, err := a.st.Info(name)
	if err != nil {
		return err
	}
	switch info.Dim {
	case 2:
		return applyScript[vec.V2](a, name, string(src))
	case 3:
		return applyScript[vec.V3](a, name, string(src))
	}

	return errors.Wrapf(vec.ErrDimension, "graph %q has dim %d", name, info.Dim)
}

// applyScript runs src on the stored graph. The graph is saved only when the whole
// script commits; a partial commit is reported and discarded.
func applyScript[P vec.Vector[P]](a *app, name, src string) error {
	g, _, err := store.Load[P](a.st, name)
	if err != nil {
		return err
	}
	ids, res, err := script.Run(g, src)
	if err != nil {
		return errors.Wrapf(err, "%s not saved", name)
	}
	rev, err := store.Save(a.st, name, g)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "applied %d alterations to %s, %d named vertices, revision %s\n", res.Applied, name, len(ids), rev)

	return nil
}

func (a *app) show(name string) error {
	doc, _, err := a.st.Get(name)
	if err != nil {
		return err
	}
	data, err := snapshot.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)

	return err
}

func (a *app) importGraph(name, file string) error {
	data, err := a.read(file)
	if err != nil {
		return err
	}
	dim, err := snapshot.PeekDim(data)
	if err != nil {
		return err
	}
	var rev fmt.Stringer
	switch dim {
	case 2:
		rev, err = importAs[vec.V2](a.st, name, data)
	case 3:
		rev, err = importAs[vec.V3](a.st, name, data)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "imported %s (%dD) revision %s\n", name, dim, rev)

	return nil
}

// importAs restores data before storing it, so only valid graphs reach the store.
func importAs[P vec.Vector[P]](st *store.Store, name string, data []byte) (fmt.Stringer, error) {
	g, err := snapshot.Unmarshal[P](data)
	if err != nil {
		return nil, err
	}

	return store.Save(st, name, g)
}

func (a *app) list() error {
	infos, err := a.st.List()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIM\tVERTICES\tEDGES\tSAVED\tREVISION")
	for _, in := range infos {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\n", in.Name, in.Dim, in.Vertices, in.Edges, in.Saved.Format(time.RFC3339), in.Revision)
	}

	return tw.Flush()
}

func (a *app) stats(name string) error {
	info, err := a.st.Info(name)
	if err != nil {
		return err
	}
	switch info.Dim {
	case 2:
		return printStats[vec.V2](a, name)
	case 3:
		return printStats[vec.V3](a, name)
	}

	return errors.Wrapf(vec.ErrDimension, "graph %q has dim %d", name, info.Dim)
}

func printStats[P vec.Vector[P]](a *app, name string) error {
	g, info, err := store.Load[P](a.st, name)
	if err != nil {
		return err
	}
	_, length := walk.MinSpanningForest[P](g)
	cycles, err := walk.CycleBasis[P](g)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "name:        %s\n", name)
	fmt.Fprintf(a.out, "revision:    %s\n", info.Revision)
	fmt.Fprintf(a.out, "dim:         %d\n", g.Dim())
	fmt.Fprintf(a.out, "vertices:    %d\n", g.VertexCount())
	fmt.Fprintf(a.out, "edges:       %d\n", g.EdgeCount())
	fmt.Fprintf(a.out, "components:  %d\n", len(walk.Components[P](g)))
	fmt.Fprintf(a.out, "segments:    %d\n", len(walk.Segments[P](g)))
	fmt.Fprintf(a.out, "cycles:      %d\n", len(cycles))
	fmt.Fprintf(a.out, "msf length:  %g\n", length)
	if lo, hi, ok := g.Bounds(); ok {
		fmt.Fprintf(a.out, "bounds:      %v .. %v\n", lo, hi)
	}

	return nil
}

func (a *app) path(name, from, to string) error {
	var ends [2]weir.VertexID
	for i, s := range []string{from, to} {
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.Wrapf(errUsage, "vertex id %q", s)
		}
		ends[i] = weir.VertexID(n)
	}
	info, err := a.st.Info(name)
	if err != nil {
		return err
	}
	switch info.Dim {
	case 2:
		return printPath[vec.V2](a, name, ends[0], ends[1])
	case 3:
		return printPath[vec.V3](a, name, ends[0], ends[1])
	}

	return errors.Wrapf(vec.ErrDimension, "graph %q has dim %d", name, info.Dim)
}

func printPath[P vec.Vector[P]](a *app, name string, from, to weir.VertexID) error {
	g, _, err := store.Load[P](a.st, name)
	if err != nil {
		return err
	}
	path, length, err := walk.ShortestPath[P](g, from, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%v length %g\n", path, length)

	return nil
}

func (a *app) read(file string) ([]byte, error) {
	if file == "-" {
		data, err := io.ReadAll(a.in)
		return data, errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(file)

	return data, errors.Wrapf(err, "read %s", file)
}
