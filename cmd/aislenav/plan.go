package main

import (
	"bufio"
	"io"

	"github.com/katalvlaran/aislenav/astar"
	"github.com/katalvlaran/aislenav/gridgraph"
)

// Plan glyphs.
const (
	glyphWalkway  = '.'
	glyphEntrance = 'E'
	glyphObstacle = '#'
	glyphTarget   = 'T'
	glyphRoute    = '*'
	glyphStart    = 'S'
	glyphGoal     = 'G'
)

// drawPlan writes one line per grid row. Later layers win: obstacles and
// walkways, then targets, then the route, then its start and goal.
func drawPlan(w io.Writer, gg *gridgraph.GridGraph, start gridgraph.Cell, targets []gridgraph.Cell, route astar.Route) error {
	canvas := make([][]byte, gg.Rows())
	for r := range canvas {
		canvas[r] = make([]byte, gg.Cols())
		for c := range canvas[r] {
			cell := gridgraph.Cell{Row: r, Col: c}
			code, _ := gg.Value(cell)
			switch {
			case !gg.IsWalkable(cell):
				canvas[r][c] = glyphObstacle
			case code == gridgraph.CodeEntrance:
				canvas[r][c] = glyphEntrance
			default:
				canvas[r][c] = glyphWalkway
			}
		}
	}
	put := func(c gridgraph.Cell, g byte) {
		if gg.InBounds(c) {
			canvas[c.Row][c.Col] = g
		}
	}
	for _, t := range targets {
		put(t, glyphTarget)
	}
	for _, c := range route {
		put(c, glyphRoute)
	}
	put(start, glyphStart)
	if goal, ok := route.Goal(); ok && goal != start {
		put(goal, glyphGoal)
	}

	bw := bufio.NewWriter(w)
	for _, line := range canvas {
		bw.Write(line)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
