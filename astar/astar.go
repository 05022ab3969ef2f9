// Package astar implements shortest-route search on a gridgraph.GridGraph.
//
// A* runs with unit step cost and the Manhattan-distance heuristic, which is
// admissible and consistent on a 4-connected unit-cost grid: the first time
// the goal is popped from the frontier its cost is optimal, and a cell never
// needs to be re-expanded once closed.
//
// Frontier tie-breaking is deterministic: lower f = g + h first, then lower h
// (the entry closer to the goal), then insertion order. Together with the
// fixed neighbor order of gridgraph (right, down, left, up) this makes exact
// routes, not only their lengths, reproducible.
//
// Complexity:
//
//   - Time:  O(N log N) per search, N = rows × cols.
//   - Space: O(N) for cost, predecessor and closed arrays plus the heap.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries of already-closed cells when popped.
//   - Per-search state lives in a runner; the Engine itself holds only the
//     read-only grid and options.
package astar

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/aislenav/gridgraph"
)

// Engine answers route queries against a single immutable grid.
// An Engine is safe for concurrent use as long as its Recorder, Observer
// and OnExpand hook are.
type Engine struct {
	grid *gridgraph.GridGraph
	opts Options
}

// NewEngine builds an Engine over g.
// Returns ErrNilGrid for a nil grid and ErrOptionViolation for a bad option.
func NewEngine(g *gridgraph.GridGraph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Engine{grid: g, opts: cfg}, nil
}

// Grid returns the grid the engine searches.
func (e *Engine) Grid() *gridgraph.GridGraph { return e.grid }

// IsWalkable reports whether c is in bounds and traversable.
func (e *Engine) IsWalkable(c gridgraph.Cell) bool { return e.grid.IsWalkable(c) }

// FindShortestPath returns an optimal route from start to goal.
// ok is false when either endpoint is not walkable or no route exists;
// absence of a route is a normal outcome, never a panic.
func (e *Engine) FindShortestPath(start, goal gridgraph.Cell) (Route, bool) {
	res, err := e.Search(start, goal)
	if err != nil {
		return nil, false
	}

	return res.Route, true
}

// Search is FindShortestPath with diagnostics. It returns ErrEndpointBlocked
// (no search attempted) or ErrNoRoute (frontier exhausted) on failure.
//
// Steps:
//  1. Reject non-walkable endpoints.
//  2. Return [start] when start == goal, without searching or recording.
//  3. Run A* and reconstruct the predecessor chain.
//  4. Hand the route to the Recorder, if any.
func (e *Engine) Search(start, goal gridgraph.Cell) (Result, error) {
	began := time.Now()

	if !e.grid.IsWalkable(start) || !e.grid.IsWalkable(goal) {
		e.observe(SearchStats{Outcome: OutcomeBlocked, Duration: time.Since(began)})
		e.opts.Logger.Debug("route search rejected", "start", start, "goal", goal, "reason", "endpoint not walkable")

		return Result{}, fmt.Errorf("%w: start %v goal %v", ErrEndpointBlocked, start, goal)
	}

	if start == goal {
		e.observe(SearchStats{Outcome: OutcomeTrivial, Duration: time.Since(began)})

		return Result{Route: Route{start}}, nil
	}

	r := newRunner(e.grid, start, goal, e.opts.OnExpand)
	route, found := r.run()
	if !found {
		e.observe(SearchStats{Outcome: OutcomeNoRoute, Expanded: r.expanded, Duration: time.Since(began)})
		e.opts.Logger.Debug("no route", "start", start, "goal", goal, "expanded", r.expanded)

		return Result{Expanded: r.expanded}, fmt.Errorf("%w: %v → %v", ErrNoRoute, start, goal)
	}

	if e.opts.Recorder != nil {
		e.opts.Recorder.Append(start, goal, route)
	}
	e.observe(SearchStats{
		Outcome:  OutcomeFound,
		Expanded: r.expanded,
		Steps:    route.Steps(),
		Duration: time.Since(began),
	})
	e.opts.Logger.Debug("route found", "start", start, "goal", goal, "steps", route.Steps(), "expanded", r.expanded)

	return Result{Route: route, Expanded: r.expanded}, nil
}

func (e *Engine) observe(s SearchStats) {
	if e.opts.Observer != nil {
		e.opts.Observer.ObserveSearch(s)
	}
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid     *gridgraph.GridGraph
	start    gridgraph.Cell
	goal     gridgraph.Cell
	g        []int  // best-known cost from start per row-major index; -1 if unseen
	prev     []int  // predecessor index on the best-known route; -1 if none
	closed   []bool // cells whose cost is final
	pq       nodePQ
	seq      int // insertion counter for FIFO tie-breaking
	expanded int
	onExpand func(gridgraph.Cell, int)
}

func newRunner(gg *gridgraph.GridGraph, start, goal gridgraph.Cell, onExpand func(gridgraph.Cell, int)) *runner {
	n := gg.Rows() * gg.Cols()
	r := &runner{
		grid:     gg,
		start:    start,
		goal:     goal,
		g:        make([]int, n),
		prev:     make([]int, n),
		closed:   make([]bool, n),
		pq:       make(nodePQ, 0, 64),
		onExpand: onExpand,
	}
	for i := range r.g {
		r.g[i] = -1
		r.prev[i] = -1
	}

	return r
}

// run is the core loop: pop the best frontier entry, stop at the goal,
// otherwise relax its walkable neighbors.
func (r *runner) run() (Route, bool) {
	si := r.grid.Index(r.start)
	r.g[si] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		ui := r.grid.Index(item.cell)
		if r.closed[ui] {
			continue // stale entry
		}
		r.closed[ui] = true
		r.expanded++
		r.onExpand(item.cell, item.g)

		if item.cell == r.goal {
			return r.reconstruct(ui), true
		}
		r.relax(item.cell, item.g)
	}

	return nil, false
}

// relax examines each walkable neighbor of u and records a strictly
// shorter route to it when one is found.
func (r *runner) relax(u gridgraph.Cell, gu int) {
	ui := r.grid.Index(u)
	for _, v := range r.grid.Neighbors(u) {
		vi := r.grid.Index(v)
		if r.closed[vi] {
			continue
		}
		tentative := gu + 1
		if r.g[vi] >= 0 && tentative >= r.g[vi] {
			continue
		}
		r.g[vi] = tentative
		r.prev[vi] = ui
		r.push(v, tentative)
	}
}

func (r *runner) push(c gridgraph.Cell, g int) {
	h := gridgraph.ManhattanDistance(c, r.goal)
	heap.Push(&r.pq, &nodeItem{cell: c, g: g, f: g + h, h: h, seq: r.seq})
	r.seq++
}

// reconstruct walks the predecessor chain from the goal back to the start
// and reverses it into start-to-goal order.
func (r *runner) reconstruct(goalIdx int) Route {
	var route Route
	for at := goalIdx; at >= 0; at = r.prev[at] {
		route = append(route, r.grid.CellAt(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}

// nodeItem is a frontier entry.
type nodeItem struct {
	cell gridgraph.Cell
	g    int // cost from start
	f    int // g + h
	h    int // Manhattan distance to goal
	seq  int // insertion order
}

// nodePQ is a min-heap of *nodeItem ordered by (f, h, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f, then h, then insertion sequence.
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
