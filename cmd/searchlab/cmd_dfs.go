package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abelikov/searchlab/builder"
	"github.com/abelikov/searchlab/core"
	"github.com/abelikov/searchlab/dfs"
)

// loadGraph resolves the graph the search subcommands operate on: a YAML
// document when --graph is given, otherwise the classroom fixture
// (severed or intact).
func loadGraph() (*core.Graph, error) {
	if graphPath != "" {
		f, err := os.Open(graphPath)
		if err != nil {
			return nil, fmt.Errorf("open graph document: %w", err)
		}
		defer f.Close()

		return builder.LoadYAML(f)
	}

	fixture := builder.Demo()
	if severed {
		fixture = builder.DemoSevered()
	}

	return builder.Build([]core.GraphOption{core.WithWeighted()}, fixture)
}

// runDFS executes the depth-first exercise and prints its trace.
func runDFS(cmd *cobra.Command, _ []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	var opts []dfs.Option
	if legacy {
		opts = append(opts, dfs.WithDiscoveryFoundOnly())
	}
	if !quiet {
		step := 0
		opts = append(opts, dfs.WithOnStep(func(s dfs.Step) {
			step++
			fmt.Fprintln(cmd.OutOrStdout(), renderDFSStep(step, s))
		}))
	}

	slog.Debug("starting depth-first search",
		slog.String("start", startID), slog.String("dest", destID))

	if destID == "" {
		res, err := dfs.Traverse(g, startID, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderWalk("Traversal", res.Path))

		return nil
	}

	res, err := dfs.Search(g, startID, destID, opts...)
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintln(cmd.OutOrStdout(), renderNotFound(destID))

		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderWalk("Path", res.Path))

	return nil
}
