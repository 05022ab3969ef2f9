package gridgraph

import "fmt"

// Well-known cell codes of a store layout.
const (
	// CodeWalkway marks an open walkway cell.
	CodeWalkway = 0
	// CodeShelf marks a product shelf cell.
	CodeShelf = 1
	// CodeEntrance marks an entrance/exit cell.
	CodeEntrance = 9
)

// Unreachable is the DistanceField value of a cell no source can reach.
const Unreachable = -1

// Cell is a (Row, Col) coordinate pair on the grid.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether c and o differ by exactly one unit on exactly one axis.
func (c Cell) Adjacent(o Cell) bool {
	return ManhattanDistance(c, o) == 1
}

// Add returns c shifted by o.
func (c Cell) Add(o Cell) Cell {
	return Cell{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// ManhattanDistance returns |r1-r2| + |c1-c2|.
func ManhattanDistance(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cardinal offsets.
var (
	Right = Cell{Row: 0, Col: 1}
	Down  = Cell{Row: 1, Col: 0}
	Left  = Cell{Row: 0, Col: -1}
	Up    = Cell{Row: -1, Col: 0}
)

// neighborOffsets is the enumeration order of Neighbors: right, down, left, up.
var neighborOffsets = [4]Cell{Right, Down, Left, Up}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Walkable lists the cell codes an agent may stand on.
	Walkable []int
}

// DefaultGridOptions returns a GridOptions with default settings:
// walkway (0) and entrance/exit (9) are walkable.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Walkable: []int{CodeWalkway, CodeEntrance},
	}
}

// GridGraph treats a 2D integer grid as a graph of walkable cells.
// It is immutable once built; cells[r][c] holds the original input code.
type GridGraph struct {
	rows, cols int
	cells      [][]int
	walkable   map[int]struct{}
}
