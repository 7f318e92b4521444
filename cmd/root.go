// Package cmd implements the algoviz command line.
package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/config"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	if err := createRootCommand(ctx, input, version).Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "algoviz",
		Short:        "Step through BFS, DFS, Dijkstra, Prim and Kruskal on a graph",
		Long:         "Records graph algorithms step by step and replays them in the terminal, as SVG or over HTTP.",
		Args:         cobra.NoArgs,
		RunE:         newInteractiveCommand(ctx, input),
		Version:      version,
		SilenceUsage: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&input.configPath, "config", "c", "", "path to a YAML config file")
	pf.BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&input.start, "start", "", "start vertex (default: first vertex of the graph)")
	pf.StringVar(&input.graph, "graph", builder.GraphSample, "builtin graph: "+strings.Join(builder.Names(), ", "))
	pf.DurationVar(&input.delay, "delay", config.DefaultDelay, "auto-advance interval")

	rootCmd.AddCommand(
		newListCommand(input),
		newStepsCommand(input),
		newRenderCommand(input),
		newServeCommand(ctx, input),
	)

	return rootCmd
}
