package astar

import "github.com/katalvlaran/aislenav/gridgraph"

// accessOffsets is the order in which the cells around a target are proposed:
// up, down, left, right.
var accessOffsets = [4]gridgraph.Cell{gridgraph.Up, gridgraph.Down, gridgraph.Left, gridgraph.Right}

// AccessCandidates lists the walkable cells adjacent to targets, target by
// target in the given order and, per target, up, down, left, right. A cell
// adjacent to several targets appears once per target.
func (e *Engine) AccessCandidates(targets []gridgraph.Cell) []gridgraph.Cell {
	out := make([]gridgraph.Cell, 0, len(targets)*len(accessOffsets))
	for _, t := range targets {
		for _, d := range accessOffsets {
			if c := t.Add(d); e.grid.IsWalkable(c) {
				out = append(out, c)
			}
		}
	}

	return out
}

// FindNearestAccess returns the reachable access cell of targets with the
// fewest steps from start, its route and its step distance.
//
// Behavior:
//  1. Enumerate candidates with AccessCandidates.
//  2. Run FindShortestPath(start, candidate) for each one.
//  3. Keep a candidate only if its step count is strictly smaller than the
//     best so far, so the first-evaluated candidate wins ties.
//
// ok is false when no candidate yields a route.
//
// Complexity: O(|targets| × search cost). Intended for target sets of tens
// of cells on grids of tens by tens; see FindNearestAccessMultiSource for
// larger inputs.
func (e *Engine) FindNearestAccess(start gridgraph.Cell, targets []gridgraph.Cell) (Access, bool) {
	var (
		best  Access
		found bool
	)
	for _, c := range e.AccessCandidates(targets) {
		route, ok := e.FindShortestPath(start, c)
		if !ok {
			continue
		}
		if !found || route.Steps() < best.Distance {
			best = Access{Cell: c, Route: route, Distance: route.Steps()}
			found = true
		}
	}

	return best, found
}

// FindNearestAccessMultiSource answers the same query as FindNearestAccess
// with one breadth-first distance field from start instead of one A* per
// candidate, then materialises the winning route with a single A*.
//
// Candidates are visited in the same order and ties resolve the same way,
// so both methods select the same access cell.
//
// Complexity: O(R×C) for the distance field plus one A*.
func (e *Engine) FindNearestAccessMultiSource(start gridgraph.Cell, targets []gridgraph.Cell) (Access, bool) {
	if !e.grid.IsWalkable(start) {
		return Access{}, false
	}
	dist := e.grid.DistanceField(start)

	var (
		bestCell gridgraph.Cell
		bestDist = gridgraph.Unreachable
	)
	for _, c := range e.AccessCandidates(targets) {
		d := dist[e.grid.Index(c)]
		if d == gridgraph.Unreachable {
			continue
		}
		if bestDist == gridgraph.Unreachable || d < bestDist {
			bestCell, bestDist = c, d
		}
	}
	if bestDist == gridgraph.Unreachable {
		return Access{}, false
	}

	route, ok := e.FindShortestPath(start, bestCell)
	if !ok {
		return Access{}, false
	}

	return Access{Cell: bestCell, Route: route, Distance: route.Steps()}, true
}
