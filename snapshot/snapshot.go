// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: YAML document form of a graph.
// Determinism:
//   - Vertices are written by ascending id and edges in canonical order; attribute
//     keys are sorted by the encoder. Equal graphs marshal to equal bytes.

// Package snapshot converts a weir graph to and from a YAML document that keeps vertex
// ids, the id counter, positions and attributes.
package snapshot

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

// Format tags every document written by this package.
const Format = "weir/v1"

// Document is the serialisable form of a graph.
type Document struct {
	Format   string        `yaml:"format"`
	Dim      int           `yaml:"dim"`
	Next     weir.VertexID `yaml:"next"`
	Vertices []VertexDoc   `yaml:"vertices"`
	Edges    []EdgeDoc     `yaml:"edges"`
}

// VertexDoc is one vertex of a Document.
type VertexDoc struct {
	ID    weir.VertexID       `yaml:"id"`
	Pos   []float64           `yaml:"pos,flow"`
	Attrs map[string]ValueDoc `yaml:"attrs,omitempty"`
}

// EdgeDoc is one edge of a Document.
type EdgeDoc struct {
	A     weir.VertexID       `yaml:"a"`
	B     weir.VertexID       `yaml:"b"`
	Attrs map[string]ValueDoc `yaml:"attrs,omitempty"`
}

// Export captures the committed state of g.
func Export[P vec.Vector[P]](g *weir.Graph[P]) Document {
	next, verts, edges := g.Records()
	doc := Document{
		Format:   Format,
		Dim:      g.Dim(),
		Next:     next,
		Vertices: make([]VertexDoc, len(verts)),
		Edges:    make([]EdgeDoc, len(edges)),
	}
	for i, r := range verts {
		doc.Vertices[i] = VertexDoc{ID: r.ID, Pos: r.Pos.Components(), Attrs: fromAttrs(r.Attrs)}
	}
	for i, r := range edges {
		doc.Edges[i] = EdgeDoc{A: r.Edge.A, B: r.Edge.B, Attrs: fromAttrs(r.Attrs)}
	}

	return doc
}

// Restore rebuilds a graph from doc. Ids and the id counter are kept.
//
// Returns vec.ErrDimension when doc.Dim or a position does not match P, and
// weir.ErrCorrupt for an unknown format or any broken structural invariant.
func Restore[P vec.Vector[P]](doc Document) (*weir.Graph[P], error) {
	if doc.Format != Format {
		return nil, errors.Wrapf(weir.ErrCorrupt, "snapshot: unknown format %q", doc.Format)
	}
	if want := vec.DimOf[P](); doc.Dim != want {
		return nil, errors.Wrapf(vec.ErrDimension, "snapshot: document is %dD, graph is %dD", doc.Dim, want)
	}

	verts := make([]weir.VertexRecord[P], len(doc.Vertices))
	for i, v := range doc.Vertices {
		pos, err := vec.FromComponents[P](v.Pos)
		if err != nil {
			return nil, errors.Wrapf(err, "snapshot: vertex %d", v.ID)
		}
		verts[i] = weir.VertexRecord[P]{ID: v.ID, Pos: pos, Attrs: toAttrs(v.Attrs)}
	}
	edges := make([]weir.EdgeRecord, len(doc.Edges))
	for i, e := range doc.Edges {
		edges[i] = weir.EdgeRecord{Edge: weir.Edge{A: e.A, B: e.B}, Attrs: toAttrs(e.Attrs)}
	}

	g, err := weir.Restore(doc.Next, verts, edges)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot")
	}

	return g, nil
}

// Marshal encodes doc as YAML.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "snapshot: encode")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "snapshot: encode")
	}

	return buf.Bytes(), nil
}

// Decode parses YAML into a Document without building a graph.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrapf(weir.ErrCorrupt, "snapshot: decode: %v", err)
	}

	return doc, nil
}

// Unmarshal parses YAML and restores the graph it describes.
func Unmarshal[P vec.Vector[P]](data []byte) (*weir.Graph[P], error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return Restore[P](doc)
}

// PeekDim reports the dimensionality recorded in a document, so a caller can pick
// the graph type before calling Unmarshal.
func PeekDim(data []byte) (int, error) {
	var head struct {
		Dim int `yaml:"dim"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return 0, errors.Wrapf(weir.ErrCorrupt, "snapshot: decode: %v", err)
	}
	if head.Dim != 2 && head.Dim != 3 {
		return 0, errors.Wrapf(vec.ErrDimension, "snapshot: unsupported dim %d", head.Dim)
	}

	return head.Dim, nil
}

// MarshalGraph is Export followed by Marshal.
func MarshalGraph[P vec.Vector[P]](g *weir.Graph[P]) ([]byte, error) {
	return Marshal(Export(g))
}
