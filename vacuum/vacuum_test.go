package vacuum_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelikov/searchlab/vacuum"
)

func TestParseDirt(t *testing.T) {
	for _, s := range []string{"y", "YES", "t", "True", "dirty"} {
		got, err := vacuum.ParseDirt(s)
		require.NoErrorf(t, err, "ParseDirt(%q)", s)
		assert.Truef(t, got, "ParseDirt(%q)", s)
	}
	for _, s := range []string{"n", "NO", "f", "False", "clean"} {
		got, err := vacuum.ParseDirt(s)
		require.NoErrorf(t, err, "ParseDirt(%q)", s)
		assert.Falsef(t, got, "ParseDirt(%q)", s)
	}

	_, err := vacuum.ParseDirt("maybe")
	assert.ErrorIs(t, err, vacuum.ErrBadDirtStatus)
}

func TestNewWorld_BadLocation(t *testing.T) {
	_, err := vacuum.NewWorld("C", true, true)
	assert.ErrorIs(t, err, vacuum.ErrUnknownLocation)
}

func TestWorld_UpdateSemantics(t *testing.T) {
	w, err := vacuum.NewWorld(vacuum.LocationA, true, true)
	require.NoError(t, err)

	// Suck cleans the current square only.
	require.NoError(t, w.Update(vacuum.ActionSuck))
	s := w.State()
	assert.False(t, s.Dirt[vacuum.LocationA])
	assert.True(t, s.Dirt[vacuum.LocationB])

	// Moves are absolute: RIGHT is B, LEFT is A, even if already there.
	require.NoError(t, w.Update(vacuum.ActionRight))
	assert.Equal(t, vacuum.LocationB, w.Percept().Location)
	require.NoError(t, w.Update(vacuum.ActionRight))
	assert.Equal(t, vacuum.LocationB, w.Percept().Location)
	require.NoError(t, w.Update(vacuum.ActionLeft))
	assert.Equal(t, vacuum.LocationA, w.Percept().Location)

	// Clean squares stay clean when sucked again.
	require.NoError(t, w.Update(vacuum.ActionSuck))
	assert.False(t, w.State().Dirt[vacuum.LocationA])

	assert.ErrorIs(t, w.Update(vacuum.Action("JUMP")), vacuum.ErrUnknownAction)
}

func TestWorld_PerceptIsPartial(t *testing.T) {
	w, err := vacuum.NewWorld(vacuum.LocationA, false, true)
	require.NoError(t, err)

	p := w.Percept()
	assert.Equal(t, vacuum.LocationA, p.Location)
	assert.False(t, p.Dirty, "percept reports only the current square")
}

func TestWorld_StateIsACopy(t *testing.T) {
	w, err := vacuum.NewWorld(vacuum.LocationA, true, true)
	require.NoError(t, err)

	s := w.State()
	s.Dirt[vacuum.LocationA] = false
	assert.True(t, w.State().Dirt[vacuum.LocationA], "mutating the copy must not touch the world")
}

func TestCleanFloorEvaluator(t *testing.T) {
	var e vacuum.CleanFloorEvaluator
	e.Update(vacuum.State{Dirt: map[string]bool{"A": true, "B": true}})
	assert.EqualValues(t, 0, e.Score())
	e.Update(vacuum.State{Dirt: map[string]bool{"A": false, "B": true}})
	assert.EqualValues(t, 1, e.Score())
	e.Update(vacuum.State{Dirt: map[string]bool{"A": false, "B": false}})
	assert.EqualValues(t, 3, e.Score())
}

// TestRunExperiment_SuckyAgent pins the baseline score: the agent cleans
// A at t=1 and never visits B, earning one point per step.
func TestRunExperiment_SuckyAgent(t *testing.T) {
	w, err := vacuum.NewWorld(vacuum.LocationA, true, true)
	require.NoError(t, err)

	var eval vacuum.CleanFloorEvaluator
	require.NoError(t, vacuum.RunExperiment(context.Background(), w, vacuum.SuckyAgent{}, &eval))
	assert.EqualValues(t, 1000, eval.Score())
}

// TestRunExperiment_ReflexAgent pins the rational agent's score: A clean
// from t=1, both squares clean from t=3 on (1 + 1 + 998*2).
func TestRunExperiment_ReflexAgent(t *testing.T) {
	w, err := vacuum.NewWorld(vacuum.LocationA, true, true)
	require.NoError(t, err)

	var eval vacuum.CleanFloorEvaluator
	require.NoError(t, vacuum.RunExperiment(context.Background(), w, vacuum.ReflexAgent{}, &eval))
	assert.EqualValues(t, 1998, eval.Score())
}

func TestRunExperiment_WithSteps(t *testing.T) {
	w, err := vacuum.NewWorld(vacuum.LocationA, true, true)
	require.NoError(t, err)

	var eval vacuum.CleanFloorEvaluator
	require.NoError(t, vacuum.RunExperiment(context.Background(), w, vacuum.SuckyAgent{}, &eval,
		vacuum.WithSteps(3)))
	assert.EqualValues(t, 3, eval.Score())
}

// TestRunExperiment_RandomAgentDeterministic: a seeded RandomAgent replays
// the same decisions, so two identical experiments score identically.
func TestRunExperiment_RandomAgentDeterministic(t *testing.T) {
	run := func() int64 {
		w, err := vacuum.NewWorld(vacuum.LocationA, true, true)
		require.NoError(t, err)
		var eval vacuum.CleanFloorEvaluator
		require.NoError(t, vacuum.RunExperiment(context.Background(), w, vacuum.NewRandomAgent(42), &eval))

		return eval.Score()
	}

	first, second := run(), run()
	assert.Equal(t, first, second)
	// Bounds: never negative, never better than a perfect 2 points/step.
	assert.GreaterOrEqual(t, first, int64(0))
	assert.LessOrEqual(t, first, int64(2000))
}

type faultyAgent struct{}

func (faultyAgent) Decide(vacuum.Percept) (vacuum.Action, error) {
	return "", errors.New("sensor failure")
}

type rogueAgent struct{}

func (rogueAgent) Decide(vacuum.Percept) (vacuum.Action, error) {
	return vacuum.Action("JUMP"), nil
}

func TestRunExperiment_FaultAttribution(t *testing.T) {
	w, err := vacuum.NewWorld(vacuum.LocationA, true, true)
	require.NoError(t, err)
	var eval vacuum.CleanFloorEvaluator

	err = vacuum.RunExperiment(context.Background(), w, faultyAgent{}, &eval)
	assert.ErrorIs(t, err, vacuum.ErrAgentFault)

	err = vacuum.RunExperiment(context.Background(), w, rogueAgent{}, &eval)
	assert.ErrorIs(t, err, vacuum.ErrAgentFault)
}

func TestRunExperiment_ContextCancelled(t *testing.T) {
	w, err := vacuum.NewWorld(vacuum.LocationA, true, true)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var eval vacuum.CleanFloorEvaluator
	err = vacuum.RunExperiment(ctx, w, vacuum.SuckyAgent{}, &eval)
	assert.ErrorIs(t, err, context.Canceled)
}
