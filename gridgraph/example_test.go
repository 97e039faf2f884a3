// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/gridgraph"
)

// ExampleGridGraph_ConnectedComponents lists the open regions of a grid.
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.From2D([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, gridgraph.Conn4)

	for i, comp := range gg.ConnectedComponents() {
		fmt.Println(i, comp)
	}

	// Output:
	// 0 [1,0 2,0 1,1 0,1]
	// 1 [2,2 3,2]
}

// ExampleGridGraph_ExpandIsland clears the fewest walls between two regions.
func ExampleGridGraph_ExpandIsland() {
	gg, _ := gridgraph.From2D([][]int{{1, 0, 0, 1}}, gridgraph.Conn4)

	path, cost, _ := gg.ExpandIsland(0, 1)
	fmt.Println(cost, path)

	// Output:
	// 2 [0,0 1,0 2,0 3,0]
}
