// SPDX-License-Identifier: MIT

package graphfile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/core"
)

// Document is a weighted undirected graph in YAML form.
type Document struct {
	Vertices []string   `yaml:"vertices,omitempty" validate:"dive,required"`
	Edges    []EdgeSpec `yaml:"edges" validate:"dive"`
}

// EdgeSpec is one undirected edge. A nil Weight means a plain entry with
// core.DefaultWeight.
type EdgeSpec struct {
	From   string   `yaml:"from" validate:"required"`
	To     string   `yaml:"to" validate:"required,nefield=From"`
	Weight *float64 `yaml:"weight,omitempty" validate:"omitempty,gte=0"`
}

// Entry returns the tagged neighbor entry for e.To.
func (e EdgeSpec) Entry() core.Entry[string] {
	if e.Weight == nil {
		return core.Plain(e.To)
	}

	return core.Weighted(e.To, *e.Weight)
}

// Decode reads one graph document from r and validates it.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return &doc, nil
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := check(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load decodes the graph document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Graph builds the undirected graph described by d. Isolated vertices come
// first, then edge endpoints in order of first mention.
//
// Errors: core construction errors (e.g. core.ErrBadWeight for an infinite
// weight), wrapped with the edge index.
func (d *Document) Graph() (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	for _, v := range d.Vertices {
		g.AddVertex(v)
	}
	for i, e := range d.Edges {
		nb, err := e.Entry().Neighbor()
		if err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
		if err = g.AddEdge(e.From, nb.To, nb.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph describes g as a document. Each undirected edge is listed once,
// in core.Graph.Edges order; vertices without neighbors are listed under
// Vertices. Unit weights are written out explicitly.
func FromGraph(g *core.Graph[string]) *Document {
	doc := &Document{Edges: []EdgeSpec{}}
	for _, v := range g.Vertices() {
		if nbs, _ := g.Neighbors(v); len(nbs) == 0 {
			doc.Vertices = append(doc.Vertices, v)
		}
	}
	for _, e := range g.Edges() {
		w := e.Weight
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To, Weight: &w})
	}

	return doc
}

// Encode writes d as YAML with two-space indentation.
func Encode(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}
