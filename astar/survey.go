package astar

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aislenav/gridgraph"
)

// Survey runs FindNearestAccess from start to every named area concurrently.
// The grid is read-only, so areas are searched in parallel, bounded by
// Options.SurveyWorkers.
//
// Every area appears in the result. Reachable areas come first ordered by
// distance, then by name; unreachable areas follow (Found=false) ordered by
// name. The only error is ctx's, when it is done before all areas finish.
func (e *Engine) Survey(ctx context.Context, start gridgraph.Cell, areas map[string][]gridgraph.Cell) ([]AreaAccess, error) {
	names := make([]string, 0, len(areas))
	for name := range areas {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]AreaAccess, len(names))
	g, gctx := errgroup.WithContext(ctx)
	if e.opts.SurveyWorkers > 0 {
		g.SetLimit(e.opts.SurveyWorkers)
	}
	for i, name := range names {
		i, name := i, name // per-iteration copies (go.mod targets go1.21)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			acc, ok := e.FindNearestAccess(start, areas[name])
			out[i] = AreaAccess{Name: name, Found: ok, Access: acc}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Found != b.Found {
			return a.Found
		}
		if a.Found && a.Distance != b.Distance {
			return a.Distance < b.Distance
		}

		return a.Name < b.Name
	})
	e.opts.Logger.Debug("survey complete", "start", start, "areas", len(out))

	return out, nil
}
