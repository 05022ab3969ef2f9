// Package directions turns a route into short, human-readable walking
// instructions.
//
// Each step of a route gets a Heading on the floor plan (right, left, down,
// up). Consecutive steps sharing a heading are grouped into one leg, and each
// leg becomes one Instruction:
//
//   - the first leg reads "go straight" when it runs up or down the plan and
//     "turn left"/"turn right" when it runs sideways;
//   - every later leg is a change of heading and reads "turn left"/"turn
//     right" sideways or "go up"/"go down" vertically;
//   - an Arrived instruction closes every non-empty route.
//
// Headings are absolute (as seen on the floor plan), not relative to the
// walker's facing.
package directions

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aislenav/gridgraph"
)

// ErrNotAdjacent indicates two consecutive route cells are not 4-adjacent.
var ErrNotAdjacent = errors.New("directions: consecutive cells are not adjacent")

// Heading is the direction of a single step on the floor plan.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

var headingNames = [...]string{"right", "down", "left", "up"}

func (h Heading) String() string {
	if h < 0 || int(h) >= len(headingNames) {
		return fmt.Sprintf("Heading(%d)", int(h))
	}

	return headingNames[h]
}

// Action is what an Instruction asks the walker to do.
type Action int

const (
	GoStraight Action = iota
	TurnLeft
	TurnRight
	GoUp
	GoDown
	Arrived
)

var actionNames = [...]string{"go straight", "turn left", "turn right", "go up", "go down", "arrived"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}

	return actionNames[a]
}

// Instruction is one leg of a walk.
type Instruction struct {
	Action  Action
	Heading Heading // heading of the leg; meaningless for Arrived
	Steps   int     // cells walked; 0 for Arrived
}

// String renders e.g. "turn left 3 steps" or "arrived".
func (in Instruction) String() string {
	switch {
	case in.Action == Arrived:
		return in.Action.String()
	case in.Steps == 1:
		return fmt.Sprintf("%s 1 step", in.Action)
	default:
		return fmt.Sprintf("%s %d steps", in.Action, in.Steps)
	}
}

// HeadingOf returns the heading of the step from a to b.
func HeadingOf(a, b gridgraph.Cell) (Heading, error) {
	switch (gridgraph.Cell{Row: b.Row - a.Row, Col: b.Col - a.Col}) {
	case gridgraph.Right:
		return HeadingRight, nil
	case gridgraph.Down:
		return HeadingDown, nil
	case gridgraph.Left:
		return HeadingLeft, nil
	case gridgraph.Up:
		return HeadingUp, nil
	}

	return 0, fmt.Errorf("%w: %v → %v", ErrNotAdjacent, a, b)
}

// Headings returns one Heading per step of route.
func Headings(route []gridgraph.Cell) ([]Heading, error) {
	if len(route) < 2 {
		return nil, nil
	}
	out := make([]Heading, 0, len(route)-1)
	for i := 1; i < len(route); i++ {
		h, err := HeadingOf(route[i-1], route[i])
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}

	return out, nil
}

// Render converts route into instructions. A nil or empty route yields no
// instructions; a single-cell route yields only Arrived.
func Render(route []gridgraph.Cell) ([]Instruction, error) {
	if len(route) == 0 {
		return nil, nil
	}
	headings, err := Headings(route)
	if err != nil {
		return nil, err
	}

	var out []Instruction
	for i := 0; i < len(headings); {
		h := headings[i]
		n := 1
		for i+n < len(headings) && headings[i+n] == h {
			n++
		}
		out = append(out, Instruction{Action: actionFor(h, i == 0), Heading: h, Steps: n})
		i += n
	}

	return append(out, Instruction{Action: Arrived}), nil
}

// actionFor maps a leg heading to its action; first marks the opening leg.
func actionFor(h Heading, first bool) Action {
	switch h {
	case HeadingLeft:
		return TurnLeft
	case HeadingRight:
		return TurnRight
	case HeadingUp:
		if first {
			return GoStraight
		}
		return GoUp
	default:
		if first {
			return GoStraight
		}
		return GoDown
	}
}

// Strings renders every instruction, numbered from 1.
func Strings(ins []Instruction) []string {
	out := make([]string, len(ins))
	for i, in := range ins {
		out[i] = fmt.Sprintf("%d. %s", i+1, in)
	}

	return out
}
