package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aislenav/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"NoWalkableCodes", [][]int{{0}}, gridgraph.GridOptions{}, gridgraph.ErrNoWalkableCodes},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later edits of the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{0, 0}, {0, 0}}
	gg, err := gridgraph.From2D(grid)
	require.NoError(t, err)

	grid[0][1] = gridgraph.CodeShelf
	require.True(t, gg.IsWalkable(gridgraph.Cell{Row: 0, Col: 1}))
	code, ok := gg.Value(gridgraph.Cell{Row: 0, Col: 1})
	require.True(t, ok)
	require.Equal(t, gridgraph.CodeWalkway, code)
}

//----------------------------------------------------------------------------//
// Walkability Tests
//----------------------------------------------------------------------------//

// TestIsWalkable checks codes 0 and 9 are walkable, everything else and
// every out-of-bounds cell is not.
func TestIsWalkable(t *testing.T) {
	grid := [][]int{
		{0, 1, 9},
		{3, 4, 0},
	}
	gg, err := gridgraph.From2D(grid)
	require.NoError(t, err)

	cases := []struct {
		cell gridgraph.Cell
		want bool
	}{
		{gridgraph.Cell{Row: 0, Col: 0}, true},
		{gridgraph.Cell{Row: 0, Col: 1}, false},
		{gridgraph.Cell{Row: 0, Col: 2}, true},
		{gridgraph.Cell{Row: 1, Col: 0}, false},
		{gridgraph.Cell{Row: 1, Col: 1}, false},
		{gridgraph.Cell{Row: 1, Col: 2}, true},
		{gridgraph.Cell{Row: -1, Col: 0}, false},
		{gridgraph.Cell{Row: 0, Col: 3}, false},
		{gridgraph.Cell{Row: 2, Col: 0}, false},
		{gridgraph.Cell{Row: 0, Col: -1}, false},
	}
	for _, tc := range cases {
		if got := gg.IsWalkable(tc.cell); got != tc.want {
			t.Errorf("IsWalkable(%v) = %v; want %v", tc.cell, got, tc.want)
		}
	}
}

// TestIsWalkable_CustomCodes verifies the traversable set is configurable.
func TestIsWalkable_CustomCodes(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{0, 7}}, gridgraph.GridOptions{Walkable: []int{7}})
	require.NoError(t, err)
	require.False(t, gg.IsWalkable(gridgraph.Cell{Row: 0, Col: 0}))
	require.True(t, gg.IsWalkable(gridgraph.Cell{Row: 0, Col: 1}))
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)
	require.Equal(t, 2, gg.Rows())
	require.Equal(t, 3, gg.Cols())

	for _, c := range []gridgraph.Cell{{0, 0}, {1, 2}, {1, 1}} {
		if !gg.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	for _, c := range []gridgraph.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		if gg.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
		if _, ok := gg.Value(c); ok {
			t.Errorf("Value(%v) ok=true; want false", c)
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the right, down, left, up enumeration.
func TestNeighbors_Order(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	got := gg.Neighbors(gridgraph.Cell{Row: 1, Col: 1})
	want := []gridgraph.Cell{{1, 2}, {2, 1}, {1, 0}, {0, 1}}
	require.Equal(t, want, got)
}

// TestNeighbors_FiltersObstaclesAndBorders drops shelves and off-grid cells.
func TestNeighbors_FiltersObstaclesAndBorders(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1},
		{9, 0},
	})
	require.NoError(t, err)

	require.Equal(t, []gridgraph.Cell{{1, 0}}, gg.Neighbors(gridgraph.Cell{Row: 0, Col: 0}))
	require.Equal(t, []gridgraph.Cell{{1, 1}, {0, 0}}, gg.Neighbors(gridgraph.Cell{Row: 1, Col: 0}))
	// An obstacle still reports its walkable neighbors.
	require.Equal(t, []gridgraph.Cell{{1, 1}, {0, 0}}, gg.Neighbors(gridgraph.Cell{Row: 0, Col: 1}))
}

// TestCell_Adjacent covers 4-adjacency without diagonals.
func TestCell_Adjacent(t *testing.T) {
	c := gridgraph.Cell{Row: 2, Col: 2}
	require.True(t, c.Adjacent(gridgraph.Cell{Row: 2, Col: 3}))
	require.True(t, c.Adjacent(gridgraph.Cell{Row: 1, Col: 2}))
	require.False(t, c.Adjacent(c))
	require.False(t, c.Adjacent(gridgraph.Cell{Row: 3, Col: 3}))
	require.False(t, c.Adjacent(gridgraph.Cell{Row: 2, Col: 4}))
	require.Equal(t, "(2,2)", c.String())
	require.Equal(t, 4, gridgraph.ManhattanDistance(c, gridgraph.Cell{Row: 0, Col: 0}))
}

// TestIndexRoundTrip checks Index and CellAt are inverse.
func TestIndexRoundTrip(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	for i := 0; i < gg.Rows()*gg.Cols(); i++ {
		require.Equal(t, i, gg.Index(gg.CellAt(i)))
	}
	require.Equal(t, 5, gg.Index(gridgraph.Cell{Row: 1, Col: 2}))
	require.Equal(t, 6, gg.WalkableCount())
}
