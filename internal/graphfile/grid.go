// SPDX-License-Identifier: MIT

package graphfile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/gridgraph"
)

// GridDocument is an open grid with walls, in YAML form:
//
//	width: 8
//	height: 6
//	walls: ["3,0", "3,1", "3,2"]
//	from: "0,0"
//	to: "7,5"
//	diagonal: false
type GridDocument struct {
	Width    int      `yaml:"width" validate:"required,min=1"`
	Height   int      `yaml:"height" validate:"required,min=1"`
	Walls    []string `yaml:"walls,omitempty" validate:"dive,required"`
	From     string   `yaml:"from,omitempty"`
	To       string   `yaml:"to,omitempty"`
	Diagonal bool     `yaml:"diagonal,omitempty"`
}

// DecodeGrid reads one grid document from r and validates it.
func DecodeGrid(r io.Reader) (*GridDocument, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc GridDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := check(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadGrid decodes the grid document stored at path.
func LoadGrid(path string) (*GridDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	doc, err := DecodeGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Connectivity maps the diagonal flag to a gridgraph connectivity.
func (d *GridDocument) Connectivity() gridgraph.Connectivity {
	if d.Diagonal {
		return gridgraph.Conn8
	}

	return gridgraph.Conn4
}

// Grid parses the walls and builds the grid.
// Errors: gridgraph.ErrBadPoint, gridgraph.ErrOutOfBounds.
func (d *GridDocument) Grid() (*gridgraph.GridGraph, error) {
	walls := make([]gridgraph.Point, 0, len(d.Walls))
	for i, s := range d.Walls {
		p, err := gridgraph.ParsePoint(s)
		if err != nil {
			return nil, fmt.Errorf("walls[%d]: %w", i, err)
		}
		walls = append(walls, p)
	}

	return gridgraph.NewWalledGrid(d.Width, d.Height, walls, d.Connectivity())
}

// Endpoints parses From and To. Both must be set.
func (d *GridDocument) Endpoints() (from, to gridgraph.Point, err error) {
	if d.From == "" || d.To == "" {
		return from, to, fmt.Errorf("%w: from and to are required", ErrInvalidDocument)
	}
	if from, err = gridgraph.ParsePoint(d.From); err != nil {
		return from, to, fmt.Errorf("from: %w", err)
	}
	if to, err = gridgraph.ParsePoint(d.To); err != nil {
		return from, to, fmt.Errorf("to: %w", err)
	}

	return from, to, nil
}
