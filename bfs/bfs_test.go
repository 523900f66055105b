package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelikov/searchlab/bfs"
	"github.com/abelikov/searchlab/builder"
	"github.com/abelikov/searchlab/core"
)

func demoGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.Build(nil, builder.Demo())
	require.NoError(t, err)

	return g
}

func TestSearch_NilGraph(t *testing.T) {
	res, err := bfs.Search(nil, "A", "J")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestSearch_StartNotFound(t *testing.T) {
	res, err := bfs.Search(demoGraph(t), "X", "J")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestSearch_DestNotFound(t *testing.T) {
	res, err := bfs.Search(demoGraph(t), "A", "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrDestVertexNotFound)
}

// TestSearch_Demo pins the breadth-first run on the classroom fixture:
// level order A | B C D | E F | J, and the reconstructed shortest route.
func TestSearch_Demo(t *testing.T) {
	res, err := bfs.Search(demoGraph(t), "A", "J")
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "J"}, res.Order)
	assert.Equal(t, 3, res.Depth["J"])
	assert.Equal(t, "E", res.Parent["J"])

	path, err := res.PathTo("J")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "E", "J"}, path)
}

// TestSearch_SeveredSameRoute: removing I–J does not disturb the
// breadth-first route, which never used that edge, a useful contrast
// with the DFS walk, which changes completely.
func TestSearch_SeveredSameRoute(t *testing.T) {
	g, err := builder.Build(nil, builder.DemoSevered())
	require.NoError(t, err)

	res, err := bfs.Search(g, "A", "J")
	require.NoError(t, err)
	assert.True(t, res.Found)

	path, err := res.PathTo("J")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "E", "J"}, path)
}

func TestSearch_StartEqualsDest(t *testing.T) {
	res, err := bfs.Search(demoGraph(t), "A", "A")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A"}, res.Order)

	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestSearch_Unreachable(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("C", "D", 0))

	res, err := bfs.Search(g, "A", "D")
	require.NoError(t, err)
	assert.False(t, res.Found)

	_, err = res.PathTo("D")
	assert.Error(t, err)
}

func TestTraverse_Demo(t *testing.T) {
	res, err := bfs.Traverse(demoGraph(t), "A")
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "J", "G", "I", "K"}, res.Order)
	assert.Equal(t, 5, res.Depth["K"])
}

func TestSearch_StepTrace(t *testing.T) {
	var steps []bfs.Step
	_, err := bfs.Search(demoGraph(t), "A", "J",
		bfs.WithOnStep(func(s bfs.Step) { steps = append(steps, s) }))
	require.NoError(t, err)

	// One snapshot per dequeue: A B C D E F J.
	require.Len(t, steps, 7)
	assert.Equal(t, []string{"A"}, steps[0].Queue)
	assert.Equal(t, []string{"B", "C", "D"}, steps[1].Queue)
	assert.Equal(t, []string{"A"}, steps[1].Order)
}

func TestSearch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Search(demoGraph(t), "A", "J", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_OnVisitError(t *testing.T) {
	halt := errors.New("halt at D")
	_, err := bfs.Search(demoGraph(t), "A", "J", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "D" {
			return halt
		}
		return nil
	}))
	assert.ErrorIs(t, err, halt)
}

func TestSearch_Deterministic(t *testing.T) {
	g := demoGraph(t)

	r1, err := bfs.Search(g, "A", "J")
	require.NoError(t, err)
	r2, err := bfs.Search(g, "A", "J")
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}
