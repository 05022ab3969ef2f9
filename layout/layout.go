package layout

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aislenav/gridgraph"
)

// ErrInvalidLayout wraps every validation failure.
var ErrInvalidLayout = errors.New("layout: invalid layout")

// Point is a grid cell written as a two-element [row, col] YAML sequence.
type Point gridgraph.Cell

// UnmarshalYAML decodes "[row, col]".
func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	var pair []int
	if err := n.Decode(&pair); err != nil {
		return fmt.Errorf("line %d: point: %w", n.Line, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: point must have 2 coordinates, got %d", n.Line, len(pair))
	}
	*p = Point{Row: pair[0], Col: pair[1]}

	return nil
}

// MarshalYAML encodes the point as a flow sequence "[row, col]".
func (p Point) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{p.Row, p.Col} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}

	return n, nil
}

// Cell converts p to a gridgraph.Cell.
func (p Point) Cell() gridgraph.Cell { return gridgraph.Cell(p) }

// Area is a named target area, e.g. the cells of one shelf.
type Area struct {
	Name        string  `yaml:"name"`
	Key         string  `yaml:"key,omitempty"`
	Description string  `yaml:"description,omitempty"`
	Cells       []Point `yaml:"cells"`
}

// Targets returns the area cells as gridgraph cells, in file order.
func (a Area) Targets() []gridgraph.Cell {
	out := make([]gridgraph.Cell, len(a.Cells))
	for i, p := range a.Cells {
		out[i] = p.Cell()
	}

	return out
}

// Layout is a decoded floor plan.
type Layout struct {
	Name     string  `yaml:"name"`
	Walkable []int   `yaml:"walkable,omitempty"`
	Start    *Point  `yaml:"start,omitempty"`
	Grid     [][]int `yaml:"grid"`
	Areas    []Area  `yaml:"areas"`
}

// Load decodes and validates a YAML layout. Unknown fields are rejected.
func Load(r io.Reader) (*Layout, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var l Layout
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidLayout)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	return &l, nil
}

// LoadFile reads and validates the layout at path.
func LoadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: open %s: %w", path, err)
	}
	defer f.Close()

	l, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return l, nil
}

// Validate checks the grid is rectangular and non-empty, area names and keys
// are unique, and every area cell and the start lie on the grid.
func (l *Layout) Validate() error {
	if _, err := l.GridGraph(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	rows, cols := len(l.Grid), len(l.Grid[0])
	onGrid := func(p Point) bool {
		return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
	}

	if l.Start != nil && !onGrid(*l.Start) {
		return fmt.Errorf("%w: start %v outside %d×%d grid", ErrInvalidLayout, l.Start.Cell(), rows, cols)
	}
	names := make(map[string]struct{}, len(l.Areas))
	keys := make(map[string]string, len(l.Areas))
	for _, a := range l.Areas {
		if a.Name == "" {
			return fmt.Errorf("%w: area without a name", ErrInvalidLayout)
		}
		if _, dup := names[a.Name]; dup {
			return fmt.Errorf("%w: duplicate area %q", ErrInvalidLayout, a.Name)
		}
		names[a.Name] = struct{}{}
		if a.Key != "" {
			if other, dup := keys[a.Key]; dup {
				return fmt.Errorf("%w: key %q used by %q and %q", ErrInvalidLayout, a.Key, other, a.Name)
			}
			keys[a.Key] = a.Name
		}
		if len(a.Cells) == 0 {
			return fmt.Errorf("%w: area %q has no cells", ErrInvalidLayout, a.Name)
		}
		for _, p := range a.Cells {
			if !onGrid(p) {
				return fmt.Errorf("%w: area %q cell %v outside %d×%d grid", ErrInvalidLayout, a.Name, p.Cell(), rows, cols)
			}
		}
	}

	return nil
}

// GridGraph builds the immutable grid of the layout.
func (l *Layout) GridGraph() (*gridgraph.GridGraph, error) {
	opts := gridgraph.DefaultGridOptions()
	if len(l.Walkable) > 0 {
		opts.Walkable = l.Walkable
	}

	return gridgraph.NewGridGraph(l.Grid, opts)
}

// StartCell returns the configured start; ok is false when none is set.
func (l *Layout) StartCell() (gridgraph.Cell, bool) {
	if l.Start == nil {
		return gridgraph.Cell{}, false
	}

	return l.Start.Cell(), true
}

// Area looks an area up by name.
func (l *Layout) Area(name string) (Area, bool) {
	for _, a := range l.Areas {
		if a.Name == name {
			return a, true
		}
	}

	return Area{}, false
}

// AreaByKey looks an area up by its shortcut key.
func (l *Layout) AreaByKey(key string) (Area, bool) {
	for _, a := range l.Areas {
		if a.Key != "" && a.Key == key {
			return a, true
		}
	}

	return Area{}, false
}

// Targets maps every area name to its cells, ready for astar.Engine.Survey.
func (l *Layout) Targets() map[string][]gridgraph.Cell {
	out := make(map[string][]gridgraph.Cell, len(l.Areas))
	for _, a := range l.Areas {
		out[a.Name] = a.Targets()
	}

	return out
}

// WriteYAML encodes l to w.
func (l *Layout) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("layout: encode: %w", err)
	}

	return enc.Close()
}
