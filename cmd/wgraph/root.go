// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/internal/graphfile"
)

var errBadFlag = errors.New("invalid flag value")

// app carries the state shared by all subcommands.
type app struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:           "wgraph",
		Short:         "Minimum spanning trees and shortest paths on weighted graphs",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.logger = logger

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text|json")

	root.AddCommand(newMSTCmd(a), newPathCmd(a), newGridCmd(a), newGenCmd(a))

	return root
}

// newLogger builds the stderr logger selected by the global flags.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%w: --log-level %q", errBadFlag, level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: --log-format %q", errBadFlag, format)
	}
}

// loadGraph reads and builds the graph document at path.
func (a *app) loadGraph(path string) (*core.Graph[string], error) {
	doc, err := graphfile.Load(path)
	if err != nil {
		return nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Info("graph loaded", "file", path, "vertices", g.Order(), "edges", len(g.Edges()))

	return g, nil
}

// sameCost compares two totals up to summation-order rounding. Two
// infinities (both unreachable) are equal.
func sameCost(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}

	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(a))
}
