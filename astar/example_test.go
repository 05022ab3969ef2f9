// Package astar_test provides runnable examples of the route search engine.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/aislenav/astar"
	"github.com/katalvlaran/aislenav/gridgraph"
	"github.com/katalvlaran/aislenav/searchlog"
)

// ExampleEngine_FindShortestPath routes around a shelf row through its only gap.
func ExampleEngine_FindShortestPath() {
	grid := [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 0, 1},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}
	gg, _ := gridgraph.From2D(grid)
	log := searchlog.New()
	engine, _ := astar.NewEngine(gg, astar.WithRecorder(log))

	route, ok := engine.FindShortestPath(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 4, Col: 4})
	fmt.Println(ok, route.Steps())
	fmt.Println(route)
	fmt.Println("records:", log.Len())
	// Output:
	// true 8
	// [(0,0) (0,1) (0,2) (0,3) (1,3) (2,3) (3,3) (3,4) (4,4)]
	// records: 1
}

// ExampleEngine_FindNearestAccess finds where to stand next to a shelf.
func ExampleEngine_FindNearestAccess() {
	grid := [][]int{
		{3, 3, 3, 3, 3},
		{3, 1, 1, 1, 3},
		{3, 3, 0, 3, 3},
		{0, 0, 0, 0, 0},
		{9, 0, 0, 0, 0},
	}
	gg, _ := gridgraph.From2D(grid)
	engine, _ := astar.NewEngine(gg)

	shelf := []gridgraph.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}}
	acc, ok := engine.FindNearestAccess(gridgraph.Cell{Row: 4, Col: 0}, shelf)
	fmt.Println(ok, acc.Cell, acc.Distance)
	// Output: true (2,2) 4
}
