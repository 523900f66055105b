package vacuum

import (
	"fmt"
	"strings"
)

// Dirt-status vocabularies accepted by ParseDirt, matching the original
// exercise sheet.
var (
	dirtyValues = []string{"y", "yes", "t", "true", "dirty"}
	cleanValues = []string{"n", "no", "f", "false", "clean"}
)

// ParseDirt converts a dirt-status string to a boolean (true = dirty).
// Matching is case-insensitive. Returns ErrBadDirtStatus for anything
// outside the two vocabularies.
func ParseDirt(s string) (bool, error) {
	lowered := strings.ToLower(s)
	for _, v := range dirtyValues {
		if lowered == v {
			return true, nil
		}
	}
	for _, v := range cleanValues {
		if lowered == v {
			return false, nil
		}
	}

	return false, fmt.Errorf("%w: %q", ErrBadDirtStatus, s)
}

// World is the basic two-square vacuum environment.
type World struct {
	agentLocation string
	dirt          map[string]bool
}

// NewWorld creates a world with the agent at loc and the given dirt
// status for squares A and B. Returns ErrUnknownLocation if loc is
// neither A nor B.
func NewWorld(loc string, dirtyA, dirtyB bool) (*World, error) {
	if loc != LocationA && loc != LocationB {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, loc)
	}

	return &World{
		agentLocation: loc,
		dirt: map[string]bool{
			LocationA: dirtyA,
			LocationB: dirtyB,
		},
	}, nil
}

// Percept returns what the agent's sensors observe: its location and
// whether that square is dirty.
func (w *World) Percept() Percept {
	return Percept{
		Location: w.agentLocation,
		Dirty:    w.dirt[w.agentLocation],
	}
}

// State returns the full environment state. The dirt map is a copy; the
// caller cannot mutate the world through it.
func (w *World) State() State {
	dirt := make(map[string]bool, len(w.dirt))
	for loc, d := range w.dirt {
		dirt[loc] = d
	}

	return State{AgentLocation: w.agentLocation, Dirt: dirt}
}

// Update applies the result of an agent action to the environment.
// Sucking cleans the current square; clean squares stay clean. Returns
// ErrUnknownAction for anything outside the vocabulary.
func (w *World) Update(a Action) error {
	switch a {
	case ActionSuck:
		w.dirt[w.agentLocation] = false
	case ActionRight:
		w.agentLocation = LocationB
	case ActionLeft:
		w.agentLocation = LocationA
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}

	return nil
}
