package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aislenav/gridgraph"
	"github.com/katalvlaran/aislenav/layout"
)

// errNoStart is returned when neither --from nor a layout start is given.
var errNoStart = errors.New("no start cell: pass --from or set start in the layout")

// parseCell parses "row,col".
func parseCell(s string) (gridgraph.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: col: %w", s, err)
	}

	return gridgraph.Cell{Row: row, Col: col}, nil
}

// startCell resolves --from, falling back to the layout's start.
func startCell(from string, l *layout.Layout) (gridgraph.Cell, error) {
	if from != "" {
		return parseCell(from)
	}
	if c, ok := l.StartCell(); ok {
		return c, nil
	}

	return gridgraph.Cell{}, errNoStart
}

// pickArea resolves --area or --key.
func pickArea(l *layout.Layout, name, key string) (layout.Area, error) {
	switch {
	case name != "" && key != "":
		return layout.Area{}, errors.New("pass either --area or --key, not both")
	case name != "":
		if a, ok := l.Area(name); ok {
			return a, nil
		}
		return layout.Area{}, fmt.Errorf("unknown area %q", name)
	case key != "":
		if a, ok := l.AreaByKey(key); ok {
			return a, nil
		}
		return layout.Area{}, fmt.Errorf("no area bound to key %q", key)
	default:
		return layout.Area{}, errors.New("pass --area or --key")
	}
}
