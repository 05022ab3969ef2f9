package astar

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/aislenav/gridgraph"
)

// Sentinel errors returned by the route search engine.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed to NewEngine.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrEndpointBlocked indicates that the start or goal cell is out of bounds
	// or not walkable; no search was attempted.
	ErrEndpointBlocked = errors.New("astar: endpoint is not walkable")

	// ErrNoRoute indicates that the frontier was exhausted without reaching the goal.
	ErrNoRoute = errors.New("astar: no route between endpoints")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Route is an ordered, non-empty sequence of 4-adjacent cells from a start
// to a goal. A single-cell Route represents zero movement.
type Route []gridgraph.Cell

// Steps returns the number of moves along the route: len(r)-1.
// An empty route has zero steps.
func (r Route) Steps() int {
	if len(r) == 0 {
		return 0
	}

	return len(r) - 1
}

// Start returns the first cell of the route; ok is false for an empty route.
func (r Route) Start() (gridgraph.Cell, bool) {
	if len(r) == 0 {
		return gridgraph.Cell{}, false
	}

	return r[0], true
}

// Goal returns the last cell of the route; ok is false for an empty route.
func (r Route) Goal() (gridgraph.Cell, bool) {
	if len(r) == 0 {
		return gridgraph.Cell{}, false
	}

	return r[len(r)-1], true
}

// IsValid reports whether r is non-empty, every cell is walkable on gg and
// every consecutive pair is 4-adjacent.
func (r Route) IsValid(gg *gridgraph.GridGraph) bool {
	if len(r) == 0 || gg == nil {
		return false
	}
	for i, c := range r {
		if !gg.IsWalkable(c) {
			return false
		}
		if i > 0 && !r[i-1].Adjacent(c) {
			return false
		}
	}

	return true
}

// Result is the outcome of a single-pair search.
type Result struct {
	Route    Route // start..goal inclusive
	Expanded int   // nodes popped and expanded by A*; 0 for the trivial case
}

// Access is the outcome of a nearest-access query.
type Access struct {
	Cell     gridgraph.Cell // walkable cell adjacent to the target set
	Route    Route          // start..Cell inclusive
	Distance int            // Route.Steps()
}

// AreaAccess is one row of a Survey.
type AreaAccess struct {
	Name  string
	Found bool
	Access
}

// Outcome classifies a finished search for observers.
type Outcome string

const (
	// OutcomeFound means A* reached the goal.
	OutcomeFound Outcome = "found"
	// OutcomeTrivial means start == goal; no search ran.
	OutcomeTrivial Outcome = "trivial"
	// OutcomeBlocked means an endpoint failed the walkability check.
	OutcomeBlocked Outcome = "blocked"
	// OutcomeNoRoute means the frontier was exhausted.
	OutcomeNoRoute Outcome = "no_route"
)

// SearchStats is reported to an Observer after every single-pair search.
type SearchStats struct {
	Outcome  Outcome
	Expanded int
	Steps    int
	Duration time.Duration
}

// Recorder receives every successful non-trivial search. *searchlog.Log
// satisfies it. Implementations must be safe for concurrent use when the
// engine is shared between goroutines.
type Recorder interface {
	Append(start, goal gridgraph.Cell, route []gridgraph.Cell)
}

// Observer receives statistics of every search, whatever its outcome.
type Observer interface {
	ObserveSearch(SearchStats)
}

// Options configures the behavior of the Engine.
type Options struct {
	// Recorder, if set, is handed every successful search.
	Recorder Recorder

	// Observer, if set, receives SearchStats for every search.
	Observer Observer

	// Logger receives debug events; defaults to a discarding logger.
	Logger *slog.Logger

	// OnExpand is called each time A* expands a cell, with its cost from start.
	OnExpand func(c gridgraph.Cell, g int)

	// SurveyWorkers bounds the goroutines Survey uses. Zero means one per area.
	SurveyWorkers int

	// internal error recorded during option parsing
	err error
}

// Option configures the Engine via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation by NewEngine.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - no recorder, no observer
//   - a logger that discards everything
//   - no-op OnExpand hook
//   - unbounded Survey concurrency.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExpand: func(gridgraph.Cell, int) {},
	}
}

// WithRecorder appends every successful search to rec.
func WithRecorder(rec Recorder) Option {
	return func(o *Options) {
		if rec != nil {
			o.Recorder = rec
		}
	}
}

// WithObserver reports SearchStats of every search to obs.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run on every A* expansion.
// The callback must be safe for concurrent use if Survey is used.
func WithOnExpand(fn func(c gridgraph.Cell, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithSurveyWorkers bounds Survey concurrency.
//
//	n > 0: at most n areas are searched at once
//	n == 0: one goroutine per area
//	n < 0: invalid option → ErrOptionViolation
func WithSurveyWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: SurveyWorkers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.SurveyWorkers = n
	}
}
