package vacuum

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// DefaultSteps is the experiment length from the exercise sheet.
const DefaultSteps = 1000

// ExperimentOption configures RunExperiment.
type ExperimentOption func(*experimentConfig)

type experimentConfig struct {
	steps  int
	logger *slog.Logger
}

// WithSteps overrides the number of simulation steps. Values below 1 are
// ignored and the default is kept.
func WithSteps(n int) ExperimentOption {
	return func(c *experimentConfig) {
		if n >= 1 {
			c.steps = n
		}
	}
}

// WithLogger installs a logger for per-step decision records. Without
// one the experiment runs silently.
func WithLogger(l *slog.Logger) ExperimentOption {
	return func(c *experimentConfig) {
		c.logger = l
	}
}

// RunExperiment simulates agent in w for a fixed number of steps
// (DefaultSteps unless overridden), feeding every post-action state to
// eval.
//
// Failures are attributed to the component that caused them: an error
// from Decide, or an illegal action applied to the world, wraps
// ErrAgentFault; any other environment failure wraps ErrEnvironmentFault.
// Cancellation of ctx is checked before every step.
func RunExperiment(ctx context.Context, w *World, agent Agent, eval Evaluator, opts ...ExperimentOption) error {
	cfg := experimentConfig{steps: DefaultSteps}
	for _, opt := range opts {
		opt(&cfg)
	}

	for t := 1; t <= cfg.steps; t++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		action, err := agent.Decide(w.Percept())
		if err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrAgentFault, t, err)
		}
		if cfg.logger != nil {
			cfg.logger.Info("agent decision", slog.Int("t", t), slog.String("action", string(action)))
		}

		if err = w.Update(action); err != nil {
			// An unknown action is the agent's doing; anything else is
			// the environment failing to apply a legal action.
			if errors.Is(err, ErrUnknownAction) {
				return fmt.Errorf("%w: step %d: %v", ErrAgentFault, t, err)
			}

			return fmt.Errorf("%w: step %d: %v", ErrEnvironmentFault, t, err)
		}

		eval.Update(w.State())
	}

	return nil
}
