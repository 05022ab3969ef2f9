package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aislenav/astar"
	"github.com/katalvlaran/aislenav/directions"
	"github.com/katalvlaran/aislenav/gridgraph"
)

func newAreasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "List the target areas of the layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tCELLS\tDESCRIPTION")
			for _, area := range a.layout.Areas {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", area.Key, area.Name, len(area.Cells), area.Description)
			}
			return tw.Flush()
		},
	}
}

func newRouteCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Shortest route between two cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := startCell(from, a.layout)
			if err != nil {
				return err
			}
			goal, err := parseCell(to)
			if err != nil {
				return err
			}
			res, err := a.engine.Search(start, goal)
			if err != nil {
				a.logger.Info("route search failed", "start", start, "goal", goal, "err", err)
				fmt.Fprintf(cmd.OutOrStdout(), "no route found from %v to %v\n", start, goal)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "route %v → %v: %d steps (%d cells expanded)\n", start, goal, res.Route.Steps(), res.Expanded)
			return printRoute(cmd.OutOrStdout(), res.Route)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start cell row,col (default: layout start)")
	cmd.Flags().StringVar(&to, "to", "", "goal cell row,col")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newNearestCmd(a *app) *cobra.Command {
	var from, area, key string
	var multiSource bool
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Route to the nearest cell next to an area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := startCell(from, a.layout)
			if err != nil {
				return err
			}
			target, err := pickArea(a.layout, area, key)
			if err != nil {
				return err
			}
			find := a.engine.FindNearestAccess
			if multiSource {
				find = a.engine.FindNearestAccessMultiSource
			}
			acc, ok := find(start, target.Targets())
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "no route found to %s\n", target.Name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: stand at %v, %d steps\n", target.Name, acc.Cell, acc.Distance)
			return printRoute(cmd.OutOrStdout(), acc.Route)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start cell row,col (default: layout start)")
	cmd.Flags().StringVar(&area, "area", "", "area name")
	cmd.Flags().StringVar(&key, "key", "", "area shortcut key")
	cmd.Flags().BoolVar(&multiSource, "multi-source", false, "pick the access cell with one distance field instead of one search per candidate")

	return cmd
}

func newSurveyCmd(a *app) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Distance to every area, nearest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := startCell(from, a.layout)
			if err != nil {
				return err
			}
			rows, err := a.engine.Survey(cmd.Context(), start, a.layout.Targets())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "AREA\tACCESS\tSTEPS")
			for _, r := range rows {
				if !r.Found {
					fmt.Fprintf(tw, "%s\t-\tunreachable\n", r.Name)
					continue
				}
				fmt.Fprintf(tw, "%s\t%v\t%d\n", r.Name, r.Cell, r.Distance)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start cell row,col (default: layout start)")

	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	var from, area, key string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the floor plan with the route to an area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := startCell(from, a.layout)
			if err != nil {
				return err
			}
			var route astar.Route
			var targets []gridgraph.Cell
			if area != "" || key != "" {
				target, err := pickArea(a.layout, area, key)
				if err != nil {
					return err
				}
				targets = target.Targets()
				if acc, ok := a.engine.FindNearestAccess(start, targets); ok {
					route = acc.Route
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "no route found to %s\n", target.Name)
				}
			}
			return drawPlan(cmd.OutOrStdout(), a.engine.Grid(), start, targets, route)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start cell row,col (default: layout start)")
	cmd.Flags().StringVar(&area, "area", "", "area name")
	cmd.Flags().StringVar(&key, "key", "", "area shortcut key")

	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the active layout as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.layout.WriteYAML(cmd.OutOrStdout())
		},
	}
}

// printRoute writes the cell sequence followed by numbered directions.
func printRoute(w io.Writer, route astar.Route) error {
	cells := make([]string, len(route))
	for i, c := range route {
		cells[i] = c.String()
	}
	fmt.Fprintf(w, "path: %s\n", strings.Join(cells, " "))

	ins, err := directions.Render(route)
	if err != nil {
		return err
	}
	for _, line := range directions.Strings(ins) {
		fmt.Fprintln(w, line)
	}

	return nil
}
