package vacuum

import "errors"

// Locations of the two-square world.
const (
	LocationA = "A"
	LocationB = "B"
)

// Action is one of the agent's three possible moves.
type Action string

// The complete action vocabulary.
const (
	ActionLeft  Action = "LEFT"
	ActionRight Action = "RIGHT"
	ActionSuck  Action = "SUCK"
)

// Sentinel errors for the vacuum world.
var (
	// ErrUnknownLocation indicates an agent location outside {A, B}.
	ErrUnknownLocation = errors.New("vacuum: unknown location")

	// ErrUnknownAction indicates an action outside the vocabulary.
	ErrUnknownAction = errors.New("vacuum: unknown action")

	// ErrBadDirtStatus indicates a dirt-status string that parses to
	// neither dirty nor clean.
	ErrBadDirtStatus = errors.New("vacuum: invalid dirt status string")

	// ErrAgentFault marks an experiment failure caused by the agent:
	// its Decide returned an error, or it produced an illegal action.
	ErrAgentFault = errors.New("vacuum: agent fault")

	// ErrEnvironmentFault marks an experiment failure caused by the
	// environment while applying a legal action.
	ErrEnvironmentFault = errors.New("vacuum: environment fault")
)

// Percept is everything the agent's sensors can observe: where it is and
// whether there is dirt there.
type Percept struct {
	Location string
	Dirty    bool
}

// State is the full environment state, observable or not.
type State struct {
	// AgentLocation is the agent's present square.
	AgentLocation string

	// Dirt maps each location to whether it currently holds dirt.
	Dirt map[string]bool
}

// Agent decides an action from a percept. Implementations must not
// assume anything beyond the percept; that is the point of the exercise.
type Agent interface {
	Decide(p Percept) (Action, error)
}

// Evaluator scores the environment against a performance measure after
// every step.
type Evaluator interface {
	Update(s State)
}
