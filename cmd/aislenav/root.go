package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aislenav/astar"
	"github.com/katalvlaran/aislenav/layout"
	"github.com/katalvlaran/aislenav/routemetrics"
	"github.com/katalvlaran/aislenav/searchlog"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	layoutPath  string
	logLevel    string
	logFormat   string
	workers     int
	history     bool
	dumpMetrics bool
}

// app is the state built once per invocation from globalFlags.
type app struct {
	layout   *layout.Layout
	engine   *astar.Engine
	history  *searchlog.Log
	registry *prometheus.Registry
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		flags globalFlags
		a     app
	)
	root := &cobra.Command{
		Use:           "aislenav",
		Short:         "Shortest walking routes on a store floor plan",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			built, err := buildApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a = *built
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.report(cmd.OutOrStdout(), flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.layoutPath, "layout", "", "YAML floor plan (default: built-in supermarket)")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "text", "log format: text or json")
	pf.IntVar(&flags.workers, "workers", 0, "max concurrent area searches for survey (0 = one per area)")
	pf.BoolVar(&flags.history, "history", false, "print the search log after the command")
	pf.BoolVar(&flags.dumpMetrics, "metrics", false, "print search metrics in Prometheus text format after the command")

	root.AddCommand(
		newAreasCmd(&a),
		newRouteCmd(&a),
		newNearestCmd(&a),
		newSurveyCmd(&a),
		newRenderCmd(&a),
		newExportCmd(&a),
	)

	return root
}

// buildApp loads the layout and wires the engine with its log, metrics and logger.
func buildApp(flags globalFlags, logOut io.Writer) (*app, error) {
	logger, err := newLogger(logOut, flags.logLevel, flags.logFormat)
	if err != nil {
		return nil, err
	}

	l := layout.Default()
	if flags.layoutPath != "" {
		if l, err = layout.LoadFile(flags.layoutPath); err != nil {
			return nil, err
		}
	}
	gg, err := l.GridGraph()
	if err != nil {
		return nil, err
	}

	history := searchlog.New()
	registry := prometheus.NewRegistry()
	engine, err := astar.NewEngine(gg,
		astar.WithRecorder(history),
		astar.WithObserver(routemetrics.New(registry)),
		astar.WithLogger(logger),
		astar.WithSurveyWorkers(flags.workers),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("layout loaded", "name", l.Name, "rows", gg.Rows(), "cols", gg.Cols(), "areas", len(l.Areas))

	return &app{layout: l, engine: engine, history: history, registry: registry, logger: logger}, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", format)
	}
}

// report prints the optional search history and metrics.
func (a *app) report(w io.Writer, flags globalFlags) error {
	if flags.history {
		fmt.Fprintf(w, "\nsearch log (%d):\n", a.history.Len())
		for i, rec := range a.history.Records() {
			fmt.Fprintf(w, "  %3d  %v → %v  %d steps\n", i+1, rec.Start, rec.Goal, rec.Steps())
		}
	}
	if flags.dumpMetrics {
		families, err := a.registry.Gather()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		fmt.Fprintln(w)
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
		}
	}

	return nil
}
