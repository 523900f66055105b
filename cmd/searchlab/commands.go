package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Persistent flags.
	verbose bool

	// dfs / bfs flags.
	startID   string
	destID    string
	severed   bool
	graphPath string
	legacy    bool
	quiet     bool

	// vacuum flags.
	agentName string
	location  string
	dirtSpec  string
	steps     int
	seed      int64

	rootCmd = &cobra.Command{
		Use:   "searchlab",
		Short: "Run the course search practicals: DFS/BFS traces and the vacuum world",
		Long: `searchlab runs the course practicals from the terminal.

The dfs and bfs subcommands search the classroom graph (or a YAML graph
of your own) and print the frontier, visited set, and walk at every
iteration, exactly as the exercise sheets present them. The vacuum
subcommand scores an agent in the two-square vacuum world.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	dfsCmd = &cobra.Command{
		Use:   "dfs",
		Short: "Depth-first search with a step-by-step trace",
		RunE:  runDFS,
	}

	bfsCmd = &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first search with a step-by-step trace",
		RunE:  runBFS,
	}

	vacuumCmd = &cobra.Command{
		Use:   "vacuum",
		Short: "Score an agent in the two-square vacuum world",
		RunE:  runVacuum,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	for _, cmd := range []*cobra.Command{dfsCmd, bfsCmd} {
		cmd.Flags().StringVar(&startID, "start", "A", "start vertex")
		cmd.Flags().StringVar(&destID, "dest", "J", "destination vertex; empty for a full traversal")
		cmd.Flags().BoolVar(&severed, "severed", false, "use the fixture with the I-J edge removed")
		cmd.Flags().StringVar(&graphPath, "graph", "", "YAML graph document instead of the classroom fixture")
		cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the per-iteration trace")
	}
	dfsCmd.Flags().BoolVar(&legacy, "legacy", false,
		"replicate the hand-out's destination check (found only at first discovery)")

	vacuumCmd.Flags().StringVar(&agentName, "agent", "sucky", "agent: sucky, random, or reflex")
	vacuumCmd.Flags().StringVar(&location, "location", "A", "starting location (A or B)")
	vacuumCmd.Flags().StringVar(&dirtSpec, "dirt", "dirty,dirty", "dirt status for squares A,B")
	vacuumCmd.Flags().IntVar(&steps, "steps", 1000, "number of simulation steps")
	vacuumCmd.Flags().Int64Var(&seed, "seed", 1, "seed for the random agent")

	rootCmd.AddCommand(dfsCmd, bfsCmd, vacuumCmd)
}
