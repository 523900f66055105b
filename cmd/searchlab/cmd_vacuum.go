package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abelikov/searchlab/vacuum"
)

// parseDirtSpec parses the --dirt flag: two comma-separated dirt-status
// strings for squares A and B.
func parseDirtSpec(spec string) (dirtyA, dirtyB bool, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return false, false, fmt.Errorf("--dirt wants two comma-separated values, got %q", spec)
	}
	if dirtyA, err = vacuum.ParseDirt(strings.TrimSpace(parts[0])); err != nil {
		return false, false, err
	}
	if dirtyB, err = vacuum.ParseDirt(strings.TrimSpace(parts[1])); err != nil {
		return false, false, err
	}

	return dirtyA, dirtyB, nil
}

// selectAgent maps the --agent flag to an implementation.
func selectAgent(name string) (vacuum.Agent, error) {
	switch name {
	case "sucky":
		return vacuum.SuckyAgent{}, nil
	case "random":
		return vacuum.NewRandomAgent(seed), nil
	case "reflex":
		return vacuum.ReflexAgent{}, nil
	default:
		return nil, fmt.Errorf("unknown agent %q (want sucky, random, or reflex)", name)
	}
}

// runVacuum simulates the chosen agent and reports its score.
func runVacuum(cmd *cobra.Command, _ []string) error {
	dirtyA, dirtyB, err := parseDirtSpec(dirtSpec)
	if err != nil {
		return err
	}
	agent, err := selectAgent(agentName)
	if err != nil {
		return err
	}
	world, err := vacuum.NewWorld(location, dirtyA, dirtyB)
	if err != nil {
		return err
	}

	slog.Info("vacuum world simulator",
		slog.String("agent", agentName), slog.Int("steps", steps))

	var eval vacuum.CleanFloorEvaluator
	opts := []vacuum.ExperimentOption{vacuum.WithSteps(steps)}
	if verbose {
		// Decision-by-decision log, as the original simulator prints.
		opts = append(opts, vacuum.WithLogger(slog.Default()))
	}
	if err = vacuum.RunExperiment(cmd.Context(), world, agent, &eval, opts...); err != nil {
		return err
	}

	slog.Info("simulation complete")
	fmt.Fprintln(cmd.OutOrStdout(), renderScore(eval.Score()))

	return nil
}
