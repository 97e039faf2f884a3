// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/prim_kruskal"
)

const benchN = 2000

func BenchmarkKruskalGraph(b *testing.B) {
	g := randomGraph(benchN, 42, true)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.KruskalGraph(g)
	}
}

func BenchmarkPrim(b *testing.B) {
	g := randomGraph(benchN, 42, true)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, 0)
	}
}

func BenchmarkPrimForest(b *testing.B) {
	g := randomGraph(benchN, 42, false)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.PrimForest(g)
	}
}
