// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
)

// BenchmarkDFS_Chain measures a single tree on a long directed chain.
func BenchmarkDFS_Chain(b *testing.B) {
	g := buildChain(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkHasCycle_Grid measures cycle detection on a 100×100 lattice.
func BenchmarkHasCycle_Grid(b *testing.B) {
	const side = 100
	g := core.NewGraph[int]()
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			v := y*side + x
			if x+1 < side {
				_ = g.AddEdge(v, v+1, 1)
			}
			if y+1 < side {
				_ = g.AddEdge(v, v+side, 1)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.HasCycle(g)
	}
}
