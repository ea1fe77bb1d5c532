package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/cloud/place"
	"github.com/kulturkompass/wortwolke/pkg/cloud/validate"
	"github.com/kulturkompass/wortwolke/pkg/pipeline"
	"github.com/kulturkompass/wortwolke/pkg/render/dot"
	"github.com/kulturkompass/wortwolke/pkg/render/svg"
)

// layoutCommand creates the layout command for computing word-cloud layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output   string
		svgOut   string
		dotOut   string
		strategy string
		noCache  bool
		width    float64
		height   float64
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "layout [items.json]",
		Short: "Compute a word-cloud layout from an item list",
		Long: `Compute a word-cloud layout from an item list.

The layout command reads a JSON file of items (id, text, value), places them
inside the given container without overlaps, and writes the resulting layout
JSON. Optionally also renders an interactive SVG and a collision diagnostics
graph.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := place.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			cfg := cloud.DefaultConfig()
			cfg.Seed = seed
			opts := pipeline.Options{Strategy: st, Config: cfg, NoCache: noCache}
			container := cloud.Container{Width: width, Height: height}
			return c.runLayout(cmd.Context(), args[0], container, opts, output, svgOut, dotOut)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&svgOut, "svg", "", "also render an interactive SVG to this file")
	cmd.Flags().StringVar(&dotOut, "dot", "", "also write a collision diagnostics graph to this file (.dot, .svg, or .png by extension)")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", string(place.StrategyAuto), "placement strategy: auto (default), spiral, force, hybrid")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Float64Var(&width, "width", 800, "container width")
	cmd.Flags().Float64Var(&height, "height", 500, "container height")
	cmd.Flags().Uint64Var(&seed, "seed", cloud.DefaultSeed, "random seed for the force strategy")

	return cmd
}

// runLayout loads the items, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, container cloud.Container, opts pipeline.Options, output, svgOut, dotOut string) error {
	items, err := cloud.ReadItemsFile(input)
	if err != nil {
		return fmt.Errorf("load items %s: %w", input, err)
	}

	prog := newProgress(c.Logger)
	runner := c.newRunner(opts.NoCache)

	layout, err := runner.Compute(ctx, items, container, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Placed %d of %d words via %s",
		layout.Diagnostics.PlacedCount, layout.Diagnostics.TotalCount, layout.Diagnostics.Algorithm))

	if layout.Diagnostics.Degraded() {
		printWarning("%d words could not be placed", layout.Diagnostics.TotalCount-layout.Diagnostics.PlacedCount)
	}
	if layout.Diagnostics.HasOverlaps {
		printWarning("%d overlapping pairs remain", len(layout.Diagnostics.OverlappingPairs))
	}

	if output == "" {
		output = strings.TrimSuffix(input, ".json") + ".layout.json"
	}
	if err := cloud.WriteLayoutFile(layout, output); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	printSuccess("Layout written")
	printFile(output)

	if svgOut != "" {
		if err := os.WriteFile(svgOut, svg.Render(layout), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		printFile(svgOut)
	}

	if dotOut != "" {
		report := validate.NoOverlaps(layout.Placed, opts.Config.Normalize().MinSpacing)
		data, err := collisionGraph(ctx, layout, report, dotOut)
		if err != nil {
			return fmt.Errorf("render collision graph: %w", err)
		}
		if err := os.WriteFile(dotOut, data, 0644); err != nil {
			return fmt.Errorf("write collision graph: %w", err)
		}
		printFile(dotOut)
	}

	return nil
}

// collisionGraph renders the overlap diagnostics graph, picking the output
// format from the target file's extension: .svg and .png go through
// Graphviz, anything else gets the raw DOT text.
func collisionGraph(ctx context.Context, layout cloud.Layout, report validate.Report, path string) ([]byte, error) {
	graph := dot.ToDOT(layout, report)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return dot.RenderSVG(ctx, graph)
	case ".png":
		return dot.RenderPNG(ctx, graph)
	default:
		return []byte(graph), nil
	}
}
