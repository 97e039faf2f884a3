// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/internal/graphfile"
)

type genFlags struct {
	kind      string
	n         int
	p         float64
	seed      int64
	minWeight int
	maxWeight int
	symbols   bool
}

func newGenCmd(a *app) *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a graph document on stdout",
		Long: fmt.Sprintf("Kinds: %v. Grid and bipartite use --n for both dimensions. "+
			"Weights are integers drawn uniformly from [--min-weight, --max-weight].", builder.Kinds()),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGen(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.kind, "kind", builder.MethodRandomSparse, "topology kind")
	cmd.Flags().IntVar(&f.n, "n", 10, "number of vertices")
	cmd.Flags().Float64Var(&f.p, "p", 0.3, "edge probability (random only)")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&f.minWeight, "min-weight", 1, "minimum edge weight")
	cmd.Flags().IntVar(&f.maxWeight, "max-weight", 10, "maximum edge weight")
	cmd.Flags().BoolVar(&f.symbols, "letters", false, "name vertices A, B, ... (n ≤ 26)")

	return cmd
}

func (a *app) runGen(cmd *cobra.Command, f genFlags) error {
	if f.minWeight < 0 || f.maxWeight < f.minWeight {
		return fmt.Errorf("%w: need 0 ≤ --min-weight ≤ --max-weight, got %d and %d", errBadFlag, f.minWeight, f.maxWeight)
	}
	if f.symbols && f.n > 26 {
		return fmt.Errorf("%w: --letters supports at most 26 vertices, got %d", errBadFlag, f.n)
	}
	ctor, err := builder.ForKind(f.kind, f.n, f.p)
	if err != nil {
		return err
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithIntWeight(f.minWeight, f.maxWeight),
	}
	if f.symbols {
		opts = append(opts, builder.WithSymbolIDs())
	}
	g, err := builder.BuildGraph(opts, ctor)
	if err != nil {
		return err
	}
	a.logger.Info("graph generated", "kind", f.kind, "vertices", g.Order(), "edges", len(g.Edges()), "seed", f.seed)

	return graphfile.Encode(cmd.OutOrStdout(), graphfile.FromGraph(g))
}
