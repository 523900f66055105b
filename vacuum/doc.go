// Package vacuum implements the two-square vacuum-world exercise from
// the course practicals (the agent/environment model of AIMA, page 38,
// Figure 2.2).
//
// There are two locations, A and B, and one agent. Either location may
// contain dirt. The agent perceives only its current location and
// whether that location is dirty, then acts: move left, move right, or
// suck. Sucking cleans the current square; clean squares stay clean.
//
// The pieces mirror the exercise sheet:
//
//   - World: the environment, with full and observable state
//   - Agent: anything that can Decide an Action from a Percept
//   - CleanFloorEvaluator: scores one point per clean square per step
//   - RunExperiment: drives agent and world for a fixed number of steps
//     (1000 by default) and attributes any failure to the component that
//     caused it
//
// Three reference agents are provided: SuckyAgent (always sucks),
// RandomAgent (uniformly random, seedable), and ReflexAgent (sucks when
// dirty, otherwise moves to the other square - the rational agent for
// this performance measure).
package vacuum
