// SPDX-License-Identifier: MIT

// Command wgraph runs the weighted-graph algorithms on YAML graph documents
// and obstacle grids.
//
//	wgraph mst  -f graph.yaml --method prim --root A
//	wgraph path -f graph.yaml --from A --to F
//	wgraph grid --width 8 --height 6 --wall 3,0 --wall 3,1 --from 0,0 --to 7,5
//	wgraph gen  --kind random --n 20 --p 0.2 --seed 7 > graph.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
