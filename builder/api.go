// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters first and return
// wrapped sentinel errors; they never panic on parameter values.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates an empty undirected graph, resolves bopts once and
// applies cons in order. The first constructor error is returned wrapped
// as "BuildGraph: %w"; the partial graph is discarded.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// ForKind returns the constructor registered under a Method name.
// n is the vertex count (the side length for MethodGrid, the left side for
// MethodCompleteBipartite, which uses n for both sides); p is only read by
// MethodRandomSparse. Parameter validation is left to the constructor.
//
// Errors: ErrUnknownKind.
func ForKind(kind string, n int, p float64) (Constructor, error) {
	switch kind {
	case MethodPath:
		return Path(n), nil
	case MethodCycle:
		return Cycle(n), nil
	case MethodStar:
		return Star(n), nil
	case MethodWheel:
		return Wheel(n), nil
	case MethodComplete:
		return Complete(n), nil
	case MethodCompleteBipartite:
		return CompleteBipartite(n, n), nil
	case MethodGrid:
		return Grid(n, n), nil
	case MethodRandomSparse:
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Kinds lists the names ForKind accepts, in a stable order.
func Kinds() []string {
	return []string{
		MethodPath, MethodCycle, MethodStar, MethodWheel,
		MethodComplete, MethodCompleteBipartite, MethodGrid, MethodRandomSparse,
	}
}
