package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bestfirst/gridgraph"
	"github.com/katalvlaran/bestfirst/internal/graphfile"
	"github.com/katalvlaran/bestfirst/repr"
)

func newGridCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Search a grid of land and water cells",
		Long: "grid loads a YAML cell grid and searches it directly with the best-first\n" +
			"kernel. Cells are addressed as x,y with x the column.",
	}
	cmd.PersistentFlags().StringVar(&file, "grid", "", "Grid file (YAML, required)")
	_ = cmd.MarkPersistentFlagRequired("grid")

	load := func() (*gridgraph.GridGraph, error) { return a.loadGrid(file) }
	cmd.AddCommand(newGridIslandsCmd(a, load), newGridPathCmd(a, load), newGridBridgeCmd(a, load))
	return cmd
}

type gridLoader func() (*gridgraph.GridGraph, error)

func newGridIslandsCmd(a *app, load gridLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "islands",
		Short: "List connected components of land cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gg, err := load()
			if err != nil {
				return err
			}
			comps, err := gg.ConnectedComponents()
			if err != nil {
				return err
			}
			out := make([]repr.Representation, len(comps))
			for i, c := range comps {
				out[i] = repr.Convert(map[string]any{
					"component": i,
					"size":      len(c),
					"cells":     cells(c),
				})
			}
			return a.emit(cmd.OutOrStdout(), repr.List(out))
		},
	}
}

func newGridPathCmd(a *app, load gridLoader) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Fewest land steps between two cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gg, err := load()
			if err != nil {
				return err
			}
			src, err := gridgraph.ParsePoint(from)
			if err != nil {
				return err
			}
			dst, err := gridgraph.ParsePoint(to)
			if err != nil {
				return err
			}
			path, n, err := gg.ShortestPath(src, dst)
			out := map[string]any{
				"from":      repr.NodeID(src.String()),
				"to":        repr.NodeID(dst.String()),
				"reachable": err == nil,
			}
			switch {
			case errors.Is(err, gridgraph.ErrNoPath):
			case err != nil:
				return err
			default:
				out["steps"] = n
				out["path"] = cells(path)
			}
			return a.emit(cmd.OutOrStdout(), repr.Convert(out))
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Start cell x,y (required)")
	cmd.Flags().StringVar(&to, "to", "", "Target cell x,y (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newGridBridgeCmd(a *app, load gridLoader) *cobra.Command {
	var src, dst int
	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Fewest water cells to convert so two islands touch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gg, err := load()
			if err != nil {
				return err
			}
			path, cost, err := gg.ExpandIsland(src, dst)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), repr.Convert(map[string]any{
				"src":         src,
				"dst":         dst,
				"conversions": cost,
				"path":        cells(path),
			}))
		},
	}
	cmd.Flags().IntVar(&src, "src", 0, "Source component index")
	cmd.Flags().IntVar(&dst, "dst", 1, "Target component index")
	return cmd
}

func cells(ps []gridgraph.Point) []repr.Representation {
	out := make([]repr.Representation, len(ps))
	for i, p := range ps {
		out[i] = repr.Node(p.String())
	}
	return out
}

// loadGrid reads --grid and builds it.
func (a *app) loadGrid(path string) (*gridgraph.GridGraph, error) {
	f, err := graphfile.LoadGrid(path)
	if err != nil {
		return nil, err
	}
	gg, err := f.GridGraph()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("grid loaded", slog.String("path", path),
		slog.Int("width", gg.Width), slog.Int("height", gg.Height))
	return gg, nil
}
