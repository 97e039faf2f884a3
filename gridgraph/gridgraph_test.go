// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

func TestNewWalledGrid(t *testing.T) {
	gg, err := gridgraph.NewWalledGrid(3, 2, []gridgraph.Point{{X: 1, Y: 0}, {X: 1, Y: 0}}, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 3, gg.Width)
	assert.Equal(t, 2, gg.Height)
	assert.False(t, gg.Passable(gridgraph.Point{X: 1, Y: 0}))
	assert.True(t, gg.Passable(gridgraph.Point{X: 1, Y: 1}))
	assert.False(t, gg.Passable(gridgraph.Point{X: 3, Y: 0}))

	_, err = gridgraph.NewWalledGrid(3, 2, []gridgraph.Point{{X: 5, Y: 0}}, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	_, err = gridgraph.NewWalledGrid(0, 2, nil, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 1, 0}, {1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

func TestParsePoint(t *testing.T) {
	p, err := gridgraph.ParsePoint("3, 4")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Point{X: 3, Y: 4}, p)
	assert.Equal(t, "3,4", p.String())

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err = gridgraph.ParsePoint(bad)
		assert.ErrorIs(t, err, gridgraph.ErrBadPoint, bad)
	}
}

//----------------------------------------------------------------------------//
// ToCoreGraph
//----------------------------------------------------------------------------//

func neighborsOf(t *testing.T, g *core.Graph[gridgraph.Point], p gridgraph.Point) []core.Neighbor[gridgraph.Point] {
	t.Helper()
	nbs, err := g.Neighbors(p)
	require.NoError(t, err)

	return nbs
}

// TestToCoreGraph_Conn4 verifies that walls are dropped and only orthogonal
// unit edges exist.
func TestToCoreGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0}, {1, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	cg := gg.ToCoreGraph()

	assert.Equal(t, []gridgraph.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, cg.Vertices())
	assert.True(t, cg.Symmetric())
	assert.Equal(t,
		[]core.Neighbor[gridgraph.Point]{{To: gridgraph.Point{X: 0, Y: 1}, Weight: 1}},
		neighborsOf(t, cg, gridgraph.Point{X: 0, Y: 0}))
	assert.Len(t, cg.Edges(), 2)
}

// TestToCoreGraph_Conn8 verifies diagonal connectivity with √2 cost.
func TestToCoreGraph_Conn8(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0}, {0, 1}}, gridgraph.Conn8)
	require.NoError(t, err)
	cg := gg.ToCoreGraph()

	nbs := neighborsOf(t, cg, gridgraph.Point{X: 0, Y: 0})
	require.Len(t, nbs, 1)
	assert.Equal(t, gridgraph.Point{X: 1, Y: 1}, nbs[0].To)
	assert.Equal(t, math.Sqrt2, nbs[0].Weight)
}

//----------------------------------------------------------------------------//
// Heuristics
//----------------------------------------------------------------------------//

func TestHeuristics(t *testing.T) {
	a, b := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 3, Y: 4}
	assert.Equal(t, 7.0, gridgraph.Manhattan(a, b))
	assert.Equal(t, 5.0, gridgraph.Euclidean(a, b))
	assert.Equal(t, 4.0, gridgraph.Chebyshev(a, b))
	assert.InDelta(t, 3*math.Sqrt2+1, gridgraph.Octile(a, b), 1e-12)

	for _, h := range []func(a, b gridgraph.Point) float64{
		gridgraph.Manhattan, gridgraph.Euclidean, gridgraph.Octile, gridgraph.Chebyshev,
	} {
		assert.Zero(t, h(b, b))
		assert.Equal(t, h(a, b), h(b, a))
	}
}

func TestNeighborOffsets_Copy(t *testing.T) {
	values := [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	a, err := gridgraph.From2D(values, gridgraph.Conn4)
	require.NoError(t, err)
	b, err := gridgraph.From2D(values, gridgraph.Conn4)
	require.NoError(t, err)

	want := b.NeighborOffsets()
	a.NeighborOffsets()[1] = [2]int{2, 0}

	assert.Equal(t, want, a.NeighborOffsets())
	assert.Equal(t, want, b.NeighborOffsets())
	g := b.ToCoreGraph()
	assert.Equal(t, 24, g.Size())
	assert.True(t, g.Symmetric())
}
