package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNoWalkableCodes if
// opts.Walkable is empty.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if len(opts.Walkable) == 0 {
		return nil, ErrNoWalkableCodes
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		copy(cells[r], values[r])
	}
	walkable := make(map[int]struct{}, len(opts.Walkable))
	for _, code := range opts.Walkable {
		walkable[code] = struct{}{}
	}

	return &GridGraph{
		rows:     rows,
		cols:     cols,
		cells:    cells,
		walkable: walkable,
	}, nil
}

// From2D builds a GridGraph with DefaultGridOptions.
func From2D(values [][]int) (*GridGraph, error) {
	return NewGridGraph(values, DefaultGridOptions())
}

// Rows returns the number of grid rows.
func (gg *GridGraph) Rows() int { return gg.rows }

// Cols returns the number of grid columns.
func (gg *GridGraph) Cols() int { return gg.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.rows && c.Col >= 0 && c.Col < gg.cols
}

// Value returns the cell code at c; ok is false when c is out of bounds.
func (gg *GridGraph) Value(c Cell) (code int, ok bool) {
	if !gg.InBounds(c) {
		return 0, false
	}

	return gg.cells[c.Row][c.Col], true
}

// IsWalkable reports whether c is in bounds and its code is traversable.
// Out-of-bounds cells are never walkable.
// Complexity: O(1).
func (gg *GridGraph) IsWalkable(c Cell) bool {
	if !gg.InBounds(c) {
		return false
	}
	_, ok := gg.walkable[gg.cells[c.Row][c.Col]]

	return ok
}

// Neighbors returns the walkable cardinal neighbors of c in the order
// right, down, left, up. Neighbors does not require c itself to be walkable.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if n := c.Add(d); gg.IsWalkable(n) {
			out = append(out, n)
		}
	}

	return out
}

// WalkableCount returns how many cells of the grid are walkable.
func (gg *GridGraph) WalkableCount() int {
	n := 0
	for r := 0; r < gg.rows; r++ {
		for c := 0; c < gg.cols; c++ {
			if gg.IsWalkable(Cell{Row: r, Col: c}) {
				n++
			}
		}
	}

	return n
}

// Index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (gg *GridGraph) Index(c Cell) int {
	return c.Row*gg.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) CellAt(idx int) Cell {
	return Cell{Row: idx / gg.cols, Col: idx % gg.cols}
}
