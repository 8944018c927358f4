package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bestfirst/core"
	"github.com/katalvlaran/bestfirst/internal/graphfile"
	"github.com/katalvlaran/bestfirst/repr"
)

// version is set at build time via -ldflags.
var version = "dev"

var errBadFormat = errors.New("unknown output format")

type rootFlags struct {
	format   string
	logLevel string
	metrics  bool
}

// app carries what every subcommand shares once flags are parsed.
type app struct {
	flags    rootFlags
	logger   *slog.Logger
	meter    metric.MeterProvider
	shutdown func(context.Context) error
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "bestfirst",
		Short: "Best-first traversals over weighted graphs",
		Long: "bestfirst loads a graph from YAML and walks it in best-first order:\n" +
			"shortest distance, A* estimate or widest bottleneck.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.format, "format", "text", "Output format: text, json or yaml")
	pf.StringVar(&a.flags.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	pf.BoolVar(&a.flags.metrics, "metrics", false, "Print traversal counters to stderr on exit")

	root.AddCommand(newWalkCmd(a))
	root.AddCommand(newPathCmd(a))
	root.AddCommand(newGridCmd(a))
	root.Version = version
	return root
}

// execute runs the command tree once and flushes metrics, even on failure.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.shutdown != nil {
		if serr := a.shutdown(context.WithoutCancel(ctx)); serr != nil && err == nil {
			err = fmt.Errorf("flush metrics: %w", serr)
		}
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	switch a.flags.format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w %q", errBadFormat, a.flags.format)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.flags.logLevel)); err != nil {
		return fmt.Errorf("parse --log-level: %w", err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if !a.flags.metrics {
		a.meter = noop.NewMeterProvider()
		return nil
	}
	exporter, err := stdoutmetric.New(stdoutmetric.WithPrettyPrint(), stdoutmetric.WithWriter(cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("create stdout metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)))
	a.meter = mp
	a.shutdown = mp.Shutdown
	return nil
}

// loadGraph reads --graph and builds it.
func (a *app) loadGraph(path string) (*graphfile.File, *core.Graph, error) {
	f, err := graphfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := f.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("graph loaded", slog.String("path", path),
		slog.Int("vertices", g.VertexCount()), slog.Int("edges", g.EdgeCount()))
	return f, g, nil
}

// emit writes r in the selected format. Text lists print one item per line.
func (a *app) emit(w io.Writer, r repr.Representation) error {
	switch a.flags.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	if r.Type != repr.TypeList {
		_, err := fmt.Fprintln(w, r)
		return err
	}
	for _, it := range r.Items {
		if _, err := fmt.Fprintln(w, it); err != nil {
			return err
		}
	}
	return nil
}
