// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/builder"
)

// ExampleBuildGraph assembles a lettered cycle with constant weights.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(3)},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices())
	fmt.Println(g.Edges())
	// Output:
	// [A B C D]
	// [{A B 3} {A D 3} {B C 3} {C D 3}]
}
