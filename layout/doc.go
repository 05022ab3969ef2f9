// Package layout loads store floor plans: an occupancy grid, the named target
// areas (shelves) on it and an optional starting cell.
//
// Layouts are YAML documents:
//
//	name: corner-store
//	walkable: [0, 9]        # optional, defaults to walkway and entrance
//	start: [3, 1]           # optional
//	grid:
//	  - [3, 3, 3, 3]
//	  - [3, 0, 1, 3]
//	  - [3, 0, 0, 3]
//	  - [3, 9, 9, 3]
//	areas:
//	  - name: dairy
//	    key: "1"
//	    cells: [[1, 2]]
//
// Every structural problem (ragged grid, duplicate area, cell off the grid)
// is reported at load time as an error wrapping ErrInvalidLayout, so a
// search never meets a malformed grid.
//
// Default returns the built-in 28×35 supermarket with twenty shelves.
package layout
