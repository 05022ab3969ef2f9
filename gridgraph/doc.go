// Package gridgraph treats a 2D occupancy grid of integer cell codes as an
// unweighted, 4-connected graph of walkable cells.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; it is immutable once built.
//   - A cell is walkable when it lies in bounds and its code belongs to the
//     traversable set (GridOptions.Walkable, default {0, 9}: walkway and
//     entrance/exit). Every other code (shelf, wall, border) is an obstacle.
//   - Neighbors enumerates walkable cardinal neighbors in a fixed order:
//     right, down, left, up. Searches built on top rely on that order for
//     deterministic tie-breaking.
//   - ConnectedComponents groups walkable cells into 4-connected regions.
//   - DistanceField runs a multi-source BFS and returns step counts.
//
// Why:
//
//   - Store floors, warehouses, game maps: anything where an agent moves
//     one cell at a time between obstacles.
//
// Complexity:
//
//   - IsWalkable, InBounds, Value: O(1).
//   - Neighbors:                   O(1) (at most 4 cells).
//   - ConnectedComponents:         O(R×C), Memory: O(R×C).
//   - DistanceField:               O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoWalkableCodes: GridOptions.Walkable is empty.
//
// Concurrency: every method is read-only, so a single *GridGraph may be
// shared by any number of goroutines.
package gridgraph
