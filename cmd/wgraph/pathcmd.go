// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/astar"
	"github.com/katalvlaran/wgraph/dijkstra"
)

type pathFlags struct {
	file   string
	from   string
	to     string
	verify bool
}

func newPathCmd(a *app) *cobra.Command {
	var f pathFlags
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find a cheapest path between two vertices of a graph document",
		Long: "Runs A* with the zero heuristic: graph documents carry no coordinates, " +
			"so the search is equivalent to Dijkstra stopped at the goal.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPath(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "graph document (YAML)")
	cmd.Flags().StringVar(&f.from, "from", "", "start vertex")
	cmd.Flags().StringVar(&f.to, "to", "", "goal vertex")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "cross-check the cost with a full Dijkstra run")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (a *app) runPath(cmd *cobra.Command, f pathFlags) error {
	g, err := a.loadGraph(f.file)
	if err != nil {
		return err
	}

	res, err := astar.Search(g, f.from, f.to, astar.Zero[string],
		astar.WithOnExpand(func(v string, cost float64) {
			a.logger.Debug("expand", "vertex", v, "cost", cost)
		}),
	)
	if err != nil {
		return err
	}
	a.logger.Info("search finished", "expanded", res.Expanded, "pushed", res.Pushed)

	out := cmd.OutOrStdout()
	if !res.Found() {
		fmt.Fprintf(out, "no path from %s to %s\n", f.from, f.to)
	} else {
		fmt.Fprintf(out, "path: %s\n", strings.Join(res.Path, " -> "))
		fmt.Fprintf(out, "cost: %g\n", res.Cost)
	}

	if !f.verify {
		return nil
	}
	dist, _, err := dijkstra.Dijkstra(g, f.from)
	if err != nil {
		return err
	}
	want := dist[f.to]
	if !sameCost(want, res.Cost) {
		return fmt.Errorf("verification failed: cost %g, dijkstra %g", res.Cost, want)
	}
	a.logger.Info("verified against dijkstra", "cost", want)

	return nil
}
