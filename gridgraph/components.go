package gridgraph

// ConnectedComponents finds all 4-connected regions of walkable cells.
// Components are returned in row-major order of their first cell; cells
// within a component appear in BFS discovery order.
//
// Two walkable cells are mutually reachable iff they share a component.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	seen := make([]bool, gg.rows*gg.cols)
	var comps [][]Cell

	for r := 0; r < gg.rows; r++ {
		for c := 0; c < gg.cols; c++ {
			root := Cell{Row: r, Col: c}
			if !gg.IsWalkable(root) || seen[gg.Index(root)] {
				continue
			}
			// BFS to collect component
			queue := []Cell{root}
			seen[gg.Index(root)] = true

			for qi := 0; qi < len(queue); qi++ {
				for _, n := range gg.Neighbors(queue[qi]) {
					if i := gg.Index(n); !seen[i] {
						seen[i] = true
						queue = append(queue, n)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
