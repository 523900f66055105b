package vacuum

import "math/rand"

// SuckyAgent only ever chooses SUCK. It is the exercise's baseline: it
// keeps its own square clean and never discovers the other one.
type SuckyAgent struct{}

// Decide sucks up the dirt, if there is any.
func (SuckyAgent) Decide(Percept) (Action, error) {
	return ActionSuck, nil
}

// RandomAgent chooses uniformly among the three actions. Seed it for
// reproducible experiments.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a RandomAgent with its own deterministic source.
func NewRandomAgent(seed int64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

// Decide selects a random action; the percept is ignored.
func (a *RandomAgent) Decide(Percept) (Action, error) {
	actions := [...]Action{ActionLeft, ActionRight, ActionSuck}

	return actions[a.rng.Intn(len(actions))], nil
}

// ReflexAgent is the rational agent for the clean-floor measure: suck
// when the current square is dirty, otherwise move to the other square.
type ReflexAgent struct{}

// Decide implements the simple reflex rule.
func (ReflexAgent) Decide(p Percept) (Action, error) {
	if p.Dirty {
		return ActionSuck, nil
	}
	if p.Location == LocationA {
		return ActionRight, nil
	}

	return ActionLeft, nil
}
