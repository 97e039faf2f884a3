// SPDX-License-Identifier: MIT

package builder

// Method names, used both as error context and as ForKind keys.
const (
	MethodCycle             = "cycle"
	MethodPath              = "path"
	MethodStar              = "star"
	MethodWheel             = "wheel"
	MethodComplete          = "complete"
	MethodCompleteBipartite = "bipartite"
	MethodRandomSparse      = "random"
	MethodGrid              = "grid"
)

// CenterVertexID is the fixed hub of Star and Wheel.
const CenterVertexID = "Center"

// Size minima per topology.
const (
	MinCycleNodes = 3
	MinPathNodes  = 2
	MinStarNodes  = 2
	MinWheelNodes = 4
	MinGridDim    = 1
	MinPartition  = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
