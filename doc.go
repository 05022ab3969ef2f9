// Package aislenav finds shortest walking routes on a store floor plan.
//
// The floor is a rectangular grid of integer codes; walkway and entrance
// cells can be walked, every other code blocks movement. Movement is
// 4-connected with unit cost.
//
// Subpackages:
//
//	gridgraph/    — the grid, walkability, neighbors, BFS distance fields
//	astar/        — A* engine, nearest access to a target area, survey
//	searchlog/    — in-memory log of successful searches
//	directions/   — turn-by-turn instructions from a route
//	layout/       — YAML floor plans and the built-in supermarket
//	routemetrics/ — Prometheus metrics for searches
//	cmd/aislenav/ — command-line front end
//
// Quick start:
//
//	l := layout.Default()
//	gg, _ := l.GridGraph()
//	eng, _ := astar.NewEngine(gg, astar.WithRecorder(searchlog.New()))
//	start, _ := l.StartCell()
//	dairy, _ := l.Area("dairy")
//	acc, ok := eng.FindNearestAccess(start, dairy.Targets())
//	if ok {
//		ins, _ := directions.Render(acc.Route)
//		for _, line := range directions.Strings(ins) {
//			fmt.Println(line)
//		}
//	}
package aislenav
