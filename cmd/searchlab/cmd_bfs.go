package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abelikov/searchlab/bfs"
)

// runBFS executes the breadth-first counterpart and prints its trace
// plus the reconstructed shortest route.
func runBFS(cmd *cobra.Command, _ []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	var opts []bfs.Option
	if !quiet {
		step := 0
		opts = append(opts, bfs.WithOnStep(func(s bfs.Step) {
			step++
			fmt.Fprintln(cmd.OutOrStdout(), renderBFSStep(step, s))
		}))
	}

	slog.Debug("starting breadth-first search",
		slog.String("start", startID), slog.String("dest", destID))

	if destID == "" {
		res, err := bfs.Traverse(g, startID, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderWalk("Order", res.Order))

		return nil
	}

	res, err := bfs.Search(g, startID, destID, opts...)
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintln(cmd.OutOrStdout(), renderNotFound(destID))

		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderWalk("Order", res.Order))
	route, err := res.PathTo(destID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderWalk("Shortest route", route))

	return nil
}
