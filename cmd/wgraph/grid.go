// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/astar"
	"github.com/katalvlaran/wgraph/gridgraph"
	"github.com/katalvlaran/wgraph/internal/graphfile"
)

type gridFlags struct {
	file      string
	width     int
	height    int
	walls     []string
	from      string
	to        string
	heuristic string
	diagonal  bool
}

func newGridCmd(a *app) *cobra.Command {
	var f gridFlags
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Find a shortest path across an obstacle grid with A*",
		Long: "Cells are addressed as x,y with y growing downwards. Orthogonal steps cost 1, " +
			"diagonal steps (with --diagonal) cost √2. The grid comes from --file or from flags; " +
			"flags given explicitly override the document.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGrid(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "grid document (YAML)")
	cmd.Flags().IntVar(&f.width, "width", 0, "grid width")
	cmd.Flags().IntVar(&f.height, "height", 0, "grid height")
	cmd.Flags().StringArrayVar(&f.walls, "wall", nil, "wall cell x,y (repeatable)")
	cmd.Flags().StringVar(&f.from, "from", "", "start cell x,y")
	cmd.Flags().StringVar(&f.to, "to", "", "goal cell x,y")
	cmd.Flags().StringVar(&f.heuristic, "heuristic", "auto", "auto|manhattan|euclidean|octile|chebyshev|zero")
	cmd.Flags().BoolVar(&f.diagonal, "diagonal", false, "allow diagonal moves")

	return cmd
}

// gridDocument merges the optional document with explicitly set flags.
func (a *app) gridDocument(cmd *cobra.Command, f gridFlags) (*graphfile.GridDocument, error) {
	doc := &graphfile.GridDocument{}
	if f.file != "" {
		loaded, err := graphfile.LoadGrid(f.file)
		if err != nil {
			return nil, err
		}
		doc = loaded
	}
	set := cmd.Flags().Changed
	if set("width") {
		doc.Width = f.width
	}
	if set("height") {
		doc.Height = f.height
	}
	if set("wall") {
		doc.Walls = append(doc.Walls, f.walls...)
	}
	if set("from") {
		doc.From = f.from
	}
	if set("to") {
		doc.To = f.to
	}
	if set("diagonal") {
		doc.Diagonal = f.diagonal
	}

	return doc, nil
}

// pickHeuristic resolves the --heuristic flag for the given connectivity.
func (a *app) pickHeuristic(name string, conn gridgraph.Connectivity) (astar.Heuristic[gridgraph.Point], error) {
	if name == "auto" {
		name = "manhattan"
		if conn == gridgraph.Conn8 {
			name = "octile"
		}
	}
	switch name {
	case "manhattan":
		if conn == gridgraph.Conn8 {
			a.logger.Warn("manhattan overestimates diagonal moves; the path may not be optimal")
		}

		return gridgraph.Manhattan, nil
	case "euclidean":
		return gridgraph.Euclidean, nil
	case "octile":
		return gridgraph.Octile, nil
	case "chebyshev":
		return gridgraph.Chebyshev, nil
	case "zero":
		return astar.Zero[gridgraph.Point], nil
	default:
		return nil, fmt.Errorf("%w: --heuristic %q", errBadFlag, name)
	}
}

func (a *app) runGrid(cmd *cobra.Command, f gridFlags) error {
	doc, err := a.gridDocument(cmd, f)
	if err != nil {
		return err
	}
	gg, err := doc.Grid()
	if err != nil {
		return err
	}
	from, to, err := doc.Endpoints()
	if err != nil {
		return err
	}
	for _, p := range []gridgraph.Point{from, to} {
		if !gg.Passable(p) {
			return fmt.Errorf("%w: cell %s is a wall or outside the %dx%d grid", errBadFlag, p, gg.Width, gg.Height)
		}
	}
	h, err := a.pickHeuristic(f.heuristic, gg.Conn)
	if err != nil {
		return err
	}

	g := gg.ToCoreGraph()
	a.logger.Info("grid built", "width", gg.Width, "height", gg.Height, "open", g.Order(), "walls", len(doc.Walls))

	res, err := astar.Search(g, from, to, h,
		astar.WithOnExpand(func(p gridgraph.Point, cost float64) {
			a.logger.Debug("expand", "cell", p.String(), "cost", cost)
		}),
	)
	if err != nil {
		return err
	}
	a.logger.Info("search finished", "expanded", res.Expanded, "pushed", res.Pushed)

	out := cmd.OutOrStdout()
	if !res.Found() {
		fmt.Fprintf(out, "no path from %s to %s\n", from, to)
		renderGrid(out, gg, nil, from, to)

		return nil
	}
	cells := make([]string, len(res.Path))
	for i, p := range res.Path {
		cells[i] = p.String()
	}
	fmt.Fprintf(out, "path: %s\n", strings.Join(cells, " "))
	fmt.Fprintf(out, "cost: %g\n", res.Cost)
	renderGrid(out, gg, res.Path, from, to)

	return nil
}

// renderGrid draws the grid row by row: '#' wall, '.' open, '*' path,
// 'S' start, 'G' goal.
func renderGrid(w io.Writer, gg *gridgraph.GridGraph, path []gridgraph.Point, from, to gridgraph.Point) {
	onPath := make(map[gridgraph.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	var b strings.Builder
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := gridgraph.Point{X: x, Y: y}
			switch {
			case p == from:
				b.WriteByte('S')
			case p == to:
				b.WriteByte('G')
			case !gg.Passable(p):
				b.WriteByte('#')
			case onPath[p]:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}
